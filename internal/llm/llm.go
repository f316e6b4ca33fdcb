// Package llm provides text generation via the Gemini API.
package llm

import (
	"context"
	"errors"
)

// Common generation errors.
var (
	// ErrNotConfigured indicates no API key is set.
	ErrNotConfigured = errors.New("generation API not configured")
	// ErrEmptyCompletion indicates the API returned no usable text.
	ErrEmptyCompletion = errors.New("empty completion returned")
)

// Generator produces text completions for prompts. Implementations must
// be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
