package provider

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem/llm/openai"
)

const (
	OpenAIName         = "openai"
	DefaultOpenAIModel = "gpt-4"

	openAITemperature = 0.7
	openAIMaxTokens   = 1000
)

// NewOpenAI creates the primary provider. Temperature and output length are
// fixed. A missing or placeholder apiKey does not fail here: the returned
// provider reports ErrNotConfigured on every Generate call instead, so the
// rest of the chain keeps working.
func NewOpenAI(ctx context.Context, apiKey, model string) (*LLM, error) {
	if err := ValidateCredential(OpenAIName, apiKey); err != nil {
		return newUnconfiguredLLM(OpenAIName, err), nil
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	client, err := openai.New(ctx, apiKey,
		openai.WithModel(model),
		openai.WithTemperature(openAITemperature),
		openai.WithMaxTokens(openAIMaxTokens),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client", goerr.V(ModelKey, model))
	}

	return NewLLM(OpenAIName, client), nil
}
