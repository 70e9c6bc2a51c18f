package provider

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
)

// LLM adapts a gollem.LLMClient to interfaces.Provider. Each Generate call
// opens a fresh single-turn session.
type LLM struct {
	name      string
	client    gollem.LLMClient
	configErr error
}

var _ interfaces.Provider = &LLM{}

// NewLLM wraps a gollem client under the given provider name
func NewLLM(name string, client gollem.LLMClient) *LLM {
	p := &LLM{
		name:   name,
		client: client,
	}
	if client == nil {
		p.configErr = goerr.Wrap(ErrNotConfigured, "LLM client is not set", goerr.V(ProviderKey, name))
	}
	return p
}

// newUnconfiguredLLM returns a provider that fails every call with err
func newUnconfiguredLLM(name string, err error) *LLM {
	return &LLM{name: name, configErr: err}
}

func (p *LLM) Name() string {
	return p.name
}

// Configured reports whether the provider can attempt a network call
func (p *LLM) Configured() bool {
	return p.configErr == nil
}

func (p *LLM) Generate(ctx context.Context, prompt string) (string, error) {
	if p.configErr != nil {
		return "", p.configErr
	}

	session, err := p.client.NewSession(ctx)
	if err != nil {
		return "", wrapCall(err, "failed to create LLM session",
			goerr.V(ProviderKey, p.name),
		)
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", wrapCall(err, "failed to generate content",
			goerr.V(ProviderKey, p.name),
		)
	}
	if resp == nil {
		return "", goerr.Wrap(ErrEmptyResponse, "nil response", goerr.V(ProviderKey, p.name))
	}

	text := strings.Join(resp.Texts, "")
	if strings.TrimSpace(text) == "" {
		return "", goerr.Wrap(ErrEmptyResponse, "empty response", goerr.V(ProviderKey, p.name))
	}

	return text, nil
}
