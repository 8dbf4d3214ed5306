package mocks

import (
	"context"
	"sync/atomic"

	"github.com/sleepstars/groqgate/internal/provider"
)

// MockCompletionClient implements CompletionClient interface for testing
type MockCompletionClient struct {
	CompleteFunc func(ctx context.Context, message string, temperature float64, maxTokens int) (*provider.Completion, error)

	calls int64
}

func (m *MockCompletionClient) Complete(ctx context.Context, message string, temperature float64, maxTokens int) (*provider.Completion, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, message, temperature, maxTokens)
	}
	return &provider.Completion{Reply: "mock reply", Model: "mock-model"}, nil
}

// Calls reports how many times Complete has been invoked.
func (m *MockCompletionClient) Calls() int64 {
	return atomic.LoadInt64(&m.calls)
}
