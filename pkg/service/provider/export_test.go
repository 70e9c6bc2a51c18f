package provider

import (
	"context"

	"google.golang.org/genai"
)

// GenerateContentFunc is exported for testing
type GenerateContentFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

func (f GenerateContentFunc) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return f(ctx, model, contents, config)
}

// NewGeminiForTest creates a Gemini provider with an injected content generator
func NewGeminiForTest(fn GenerateContentFunc, model string) *Gemini {
	return &Gemini{
		models: fn,
		model:  model,
	}
}
