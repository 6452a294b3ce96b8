// Package provider exposes LLM text completion behind a single capability.
// Streaming and single-shot backends both return the complete reply text.
package provider

import (
	"context"
	"errors"
	"fmt"
)

// Errors returned by provider clients.
var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrEmptyResponse   = errors.New("empty response")
	ErrStatus          = errors.New("unexpected response status")
	ErrMissingToken    = errors.New("token required")
)

// Client completes a text prompt.
type Client interface {
	// Name identifies the backend and model, e.g. "ollama:llama3.2-vision".
	Name() string
	// Complete sends prompt and returns the trimmed reply. An empty reply is
	// reported as ErrEmptyResponse.
	Complete(ctx context.Context, prompt string) (string, error)
}

// New builds the client named by cfg.Name.
func New(ctx context.Context, cfg *Config) (Client, error) {
	switch cfg.Name {
	case NameOllama:
		return NewOllama(cfg), nil
	case NameGemini:
		return NewGemini(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Name)
	}
}
