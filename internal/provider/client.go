package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Completion is the provider's answer to a single chat message.
type Completion struct {
	Reply      string
	Model      string
	TokensUsed int
}

// CompletionClient is the interface the gateway uses to reach the
// upstream model.
type CompletionClient interface {
	Complete(ctx context.Context, message string, temperature float64, maxTokens int) (*Completion, error)
}

// ClientConfig contains configuration for the upstream client.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// GroqClient implements CompletionClient against Groq's
// OpenAI-compatible completion API.
type GroqClient struct {
	config ClientConfig
	client *openai.Client
}

// NewGroqClient creates a new upstream client.
func NewGroqClient(cfg ClientConfig) *GroqClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if !strings.HasPrefix(clientConfig.BaseURL, "http://") && !strings.HasPrefix(clientConfig.BaseURL, "https://") {
		clientConfig.BaseURL = "https://" + clientConfig.BaseURL
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &GroqClient{
		config: cfg,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (c *GroqClient) Complete(ctx context.Context, message string, temperature float64, maxTokens int) (*Completion, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	model := resp.Model
	if model == "" {
		model = c.config.Model
	}

	return &Completion{
		Reply:      resp.Choices[0].Message.Content,
		Model:      model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
