package interfaces

import "context"

// Provider generates an answer text for a prompt using a single LLM backend.
// Implementations do not retry; a failed call returns an error and the caller
// decides whether to try another provider.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
