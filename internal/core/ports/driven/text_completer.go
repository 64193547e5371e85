package driven

import "context"

// TextCompleter produces free-form text from a prompt pair by calling
// an external chat-completion endpoint. Calls are synchronous, make a
// single attempt and honor the context's cancellation.
type TextCompleter interface {
	// Complete sends the prompts and returns the generated text
	Complete(ctx context.Context, system, prompt string) (string, error)

	// Model returns the model name being used
	Model() string

	// Ping verifies the completion endpoint is reachable
	Ping(ctx context.Context) error

	// Close releases resources held by the completer
	Close() error
}
