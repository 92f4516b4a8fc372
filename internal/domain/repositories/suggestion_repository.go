package repositories

import (
	"context"
)

// SuggestionRepository abstracts the external text-generation capability used
// to synthesize drift issues. Implementations make exactly one outbound call
// per Generate invocation and perform no retries; the caller absorbs every
// failure with a deterministic local fallback.
type SuggestionRepository interface {
	// Name returns the backend identifier (e.g. "ollama", "openai").
	Name() string

	// Generate sends one system+user prompt pair and returns the raw
	// response text.
	Generate(ctx context.Context, system, user string) (string, error)
}
