package mock

import (
	"context"
	"fmt"

	"github.com/m2comLLM/llmtest/ai"
)

// MockGenerator is a test double for ai.Generator.
type MockGenerator struct {
	// GenerateAnswerFunc is called by GenerateAnswer if set.
	// If nil, echoes the match counts and the query.
	GenerateAnswerFunc func(ctx context.Context, req ai.AnswerRequest) (string, error)

	// LastRequest holds the most recent request for assertions.
	LastRequest ai.AnswerRequest

	callCount int
}

// NewMockGenerator creates a mock generator with default echo behavior.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateAnswer records req and returns a deterministic answer.
func (m *MockGenerator) GenerateAnswer(ctx context.Context, req ai.AnswerRequest) (string, error) {
	m.callCount++
	m.LastRequest = req

	if m.GenerateAnswerFunc != nil {
		return m.GenerateAnswerFunc(ctx, req)
	}
	return fmt.Sprintf("%d/%d: %s", req.Shown, req.Total, req.Query), nil
}

// CallCount returns the number of times GenerateAnswer was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count, the recorded request and any injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.LastRequest = ai.AnswerRequest{}
	m.GenerateAnswerFunc = nil
}
