package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const geminiAPIVersion = "v1beta"

// Gemini completes prompts with a single generateContent call.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini client from cfg. The token is sent both as the
// API key and as a bearer credential so proxies fronting the endpoint accept it.
func NewGemini(ctx context.Context, cfg *Config) (*Gemini, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("%s: %w", NameGemini, ErrMissingToken)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.Token,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.TimeoutDuration()},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: geminiAPIVersion,
			Headers: http.Header{
				"Authorization": []string{"Bearer " + cfg.Token},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{client: client, model: cfg.Model}, nil
}

func (g *Gemini) Name() string {
	return fmt.Sprintf("%s:%s", NameGemini, g.model)
}

func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
