package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestChatRequestValidate(t *testing.T) {
	const ceiling = 1024

	testCases := []struct {
		name    string
		req     ChatRequest
		wantErr bool
	}{
		{
			name: "valid with defaults",
			req:  ChatRequest{Message: "What is AI?"},
		},
		{
			name: "valid with explicit params",
			req:  ChatRequest{Message: "What is AI?", Temperature: floatPtr(0.7), MaxTokens: intPtr(1024)},
		},
		{
			name:    "empty message",
			req:     ChatRequest{Message: ""},
			wantErr: true,
		},
		{
			name:    "whitespace message",
			req:     ChatRequest{Message: "   "},
			wantErr: true,
		},
		{
			name:    "temperature too high",
			req:     ChatRequest{Message: "hi", Temperature: floatPtr(1.5)},
			wantErr: true,
		},
		{
			name:    "temperature negative",
			req:     ChatRequest{Message: "hi", Temperature: floatPtr(-0.1)},
			wantErr: true,
		},
		{
			name: "temperature boundary values",
			req:  ChatRequest{Message: "hi", Temperature: floatPtr(0)},
		},
		{
			name:    "max_tokens zero",
			req:     ChatRequest{Message: "hi", MaxTokens: intPtr(0)},
			wantErr: true,
		},
		{
			name:    "max_tokens negative",
			req:     ChatRequest{Message: "hi", MaxTokens: intPtr(-5)},
			wantErr: true,
		},
		{
			name:    "max_tokens above ceiling",
			req:     ChatRequest{Message: "hi", MaxTokens: intPtr(ceiling + 1)},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate(ceiling)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChatRequestValidateEmptyMessageError(t *testing.T) {
	req := ChatRequest{Message: ""}
	assert.ErrorIs(t, req.Validate(1024), ErrEmptyMessage)
}
