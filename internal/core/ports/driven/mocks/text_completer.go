package mocks

import (
	"context"
	"errors"
)

// MockTextCompleter is a scriptable TextCompleter for testing. With no
// CompleteFn set it fails every call, which exercises fallback paths.
type MockTextCompleter struct {
	CompleteFn func(ctx context.Context, system, prompt string) (string, error)
	PingFn     func(ctx context.Context) error

	// Calls records the user prompts passed to Complete
	Calls []string
}

// NewMockTextCompleter creates a new MockTextCompleter
func NewMockTextCompleter() *MockTextCompleter {
	return &MockTextCompleter{}
}

func (m *MockTextCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	m.Calls = append(m.Calls, prompt)
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, system, prompt)
	}
	return "", errors.New("completion not scripted")
}

func (m *MockTextCompleter) Model() string {
	return "mock-model"
}

func (m *MockTextCompleter) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}

func (m *MockTextCompleter) Close() error {
	return nil
}
