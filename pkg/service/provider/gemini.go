package provider

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"google.golang.org/genai"
)

const (
	GeminiName         = "gemini"
	DefaultGeminiModel = "gemini-pro"
)

// contentGenerator is the subset of genai.Models used by Gemini
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini is the secondary provider backed by the Gemini API
type Gemini struct {
	models    contentGenerator
	model     string
	configErr error
}

var _ interfaces.Provider = &Gemini{}

// NewGemini creates the secondary provider. Like NewOpenAI, a missing or
// placeholder apiKey is reported by Generate rather than here.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	if err := ValidateCredential(GeminiName, apiKey); err != nil {
		return &Gemini{model: model, configErr: err}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client", goerr.V(ModelKey, model))
	}

	return &Gemini{
		models: client.Models,
		model:  model,
	}, nil
}

func (p *Gemini) Name() string {
	return GeminiName
}

// Configured reports whether the provider can attempt a network call
func (p *Gemini) Configured() bool {
	return p.configErr == nil
}

func (p *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if p.configErr != nil {
		return "", p.configErr
	}

	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", wrapCall(err, "failed to generate content",
			goerr.V(ProviderKey, GeminiName),
			goerr.V(ModelKey, p.model),
		)
	}
	if resp == nil {
		return "", goerr.Wrap(ErrEmptyResponse, "nil response", goerr.V(ProviderKey, GeminiName))
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", goerr.Wrap(ErrRefused, "prompt was blocked",
			goerr.V(ProviderKey, GeminiName),
			goerr.V("reason", string(resp.PromptFeedback.BlockReason)),
		)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", goerr.Wrap(ErrEmptyResponse, "empty response", goerr.V(ProviderKey, GeminiName))
	}

	return text, nil
}
