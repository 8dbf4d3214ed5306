package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
)

// mockprovider is an OpenAI-compatible upstream stub so the gateway and
// the load driver can be exercised without a real API key.
func main() {
	port := flag.String("port", "8001", "Port to run the server on")
	model := flag.String("model", "openai/gpt-oss-120b", "Model identifier to report")
	delay := flag.Duration("delay", 50*time.Millisecond, "Artificial completion latency")
	flag.Parse()

	r := gin.Default()

	// Chat completions endpoint
	r.POST("/v1/chat/completions", func(c *gin.Context) {
		var req openai.ChatCompletionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		time.Sleep(*delay)

		var prompt string
		if len(req.Messages) > 0 {
			prompt = req.Messages[len(req.Messages)-1].Content
		}

		resp := openai.ChatCompletionResponse{
			ID:      fmt.Sprintf("chatcmpl-%d", time.Now().UnixNano()),
			Object:  "chat.completion",
			Created: time.Now().Unix(),
			Model:   *model,
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Role:    openai.ChatMessageRoleAssistant,
						Content: "Mock answer to: " + prompt,
					},
					FinishReason: openai.FinishReasonStop,
				},
			},
			Usage: openai.Usage{
				PromptTokens:     len(prompt) / 4,
				CompletionTokens: 32,
				TotalTokens:      len(prompt)/4 + 32,
			},
		}

		c.JSON(http.StatusOK, resp)
	})

	// Models catalog endpoint
	r.GET("/v1/models", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"object": "list",
			"data": []gin.H{
				{"id": *model, "object": "model", "owned_by": "mock"},
			},
		})
	})

	// Start server
	if err := r.Run(":" + *port); err != nil {
		log.Fatal(err)
	}
}
