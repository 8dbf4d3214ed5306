package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ChatRequest represents an incoming chat request. Temperature and
// MaxTokens are pointers so that an absent field can fall back to the
// configured defaults.
type ChatRequest struct {
	Message     string   `json:"message"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// ErrEmptyMessage is returned when the message field is missing or blank.
var ErrEmptyMessage = errors.New("message must not be empty")

// Validate checks the request fields against the allowed bounds.
// maxTokensCeiling is the largest completion size the gateway accepts.
func (r *ChatRequest) Validate(maxTokensCeiling int) error {
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage
	}
	if r.Temperature != nil && (*r.Temperature < 0 || *r.Temperature > 1) {
		return fmt.Errorf("temperature must be in [0,1], got %v", *r.Temperature)
	}
	if r.MaxTokens != nil {
		if *r.MaxTokens <= 0 {
			return fmt.Errorf("max_tokens must be positive, got %d", *r.MaxTokens)
		}
		if *r.MaxTokens > maxTokensCeiling {
			return fmt.Errorf("max_tokens must not exceed %d, got %d", maxTokensCeiling, *r.MaxTokens)
		}
	}
	return nil
}

// ChatResponse is the gateway's reply to a chat request.
type ChatResponse struct {
	Reply          string    `json:"reply"`
	Model          string    `json:"model"`
	TokensUsed     int       `json:"tokens_used"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	Timestamp      time.Time `json:"timestamp"`
}

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	UptimeS   float64   `json:"uptime_s"`
	Timestamp time.Time `json:"timestamp"`
}

// ModelsResponse lists the models the gateway is configured to serve.
type ModelsResponse struct {
	Models       []string `json:"models"`
	CurrentModel string   `json:"current_model"`
}

// ErrorDetail carries a machine-readable error type and a human message.
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON shape of every non-2xx gateway response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
