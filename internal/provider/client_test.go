package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestGroqClientComplete(t *testing.T) {
	// Create test server emulating the OpenAI-compatible completion API
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk_test", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "test-model", req.Model)
		assert.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "What is AI?", req.Messages[0].Content)
		assert.InDelta(t, 0.7, req.Temperature, 0.001)
		assert.Equal(t, 256, req.MaxTokens)

		resp := openai.ChatCompletionResponse{
			Model: "test-model",
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: "AI is artificial intelligence.",
					},
					FinishReason: openai.FinishReasonStop,
				},
			},
			Usage: openai.Usage{TotalTokens: 42},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewGroqClient(ClientConfig{
		APIKey:  "gsk_test",
		BaseURL: server.URL,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})

	completion, err := client.Complete(context.Background(), "What is AI?", 0.7, 256)
	assert.NoError(t, err)
	assert.Equal(t, "AI is artificial intelligence.", completion.Reply)
	assert.Equal(t, "test-model", completion.Model)
	assert.Equal(t, 42, completion.TokensUsed)
}

func TestGroqClientCompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "boom", "type": "server_error"},
		})
	}))
	defer server.Close()

	client := NewGroqClient(ClientConfig{
		APIKey:  "gsk_test",
		BaseURL: server.URL,
		Model:   "test-model",
	})

	_, err := client.Complete(context.Background(), "hi", 0.7, 64)
	assert.Error(t, err)
}

func TestGroqClientCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{Model: "test-model"})
	}))
	defer server.Close()

	client := NewGroqClient(ClientConfig{
		APIKey:  "gsk_test",
		BaseURL: server.URL,
		Model:   "test-model",
	})

	_, err := client.Complete(context.Background(), "hi", 0.7, 64)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGroqClientCompleteTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
	}))
	defer server.Close()

	client := NewGroqClient(ClientConfig{
		APIKey:  "gsk_test",
		BaseURL: server.URL,
		Model:   "test-model",
		Timeout: 20 * time.Millisecond,
	})

	_, err := client.Complete(context.Background(), "hi", 0.7, 64)
	assert.Error(t, err)
}

func TestNewGroqClientSchemePrefix(t *testing.T) {
	// Bare hosts get a scheme prepended rather than failing later.
	client := NewGroqClient(ClientConfig{
		APIKey:  "gsk_test",
		BaseURL: "api.groq.com/openai/v1",
		Model:   "test-model",
	})
	assert.NotNil(t, client)
}
