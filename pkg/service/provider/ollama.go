package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ollama/ollama/api"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
)

const (
	OllamaName       = "ollama"
	DefaultOllamaURL = "http://localhost:11434"
)

// Ollama is an optional last-resort provider served by a local Ollama daemon
type Ollama struct {
	client *api.Client
	model  string
}

var _ interfaces.Provider = &Ollama{}

// NewOllama creates a provider for model on the daemon at baseURL
func NewOllama(baseURL, model string, httpClient *http.Client) (*Ollama, error) {
	if model == "" {
		return nil, goerr.Wrap(ErrNotConfigured, "ollama model is required")
	}
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid ollama URL", goerr.V("url", baseURL))
	}

	return &Ollama{
		client: api.NewClient(u, httpClient),
		model:  model,
	}, nil
}

func (p *Ollama) Name() string {
	return OllamaName
}

func (p *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  p.model,
		Prompt: prompt,
		Stream: &stream,
	}

	var sb strings.Builder
	if err := p.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	}); err != nil {
		return "", wrapCall(err, "failed to generate content",
			goerr.V(ProviderKey, OllamaName),
			goerr.V(ModelKey, p.model),
		)
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", goerr.Wrap(ErrEmptyResponse, "empty response", goerr.V(ProviderKey, OllamaName))
	}

	return text, nil
}
