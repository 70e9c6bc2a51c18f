package config

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"github.com/secmon-lab/vatika/pkg/service/provider"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Providers holds configuration for the LLM provider chain. OpenAI is always
// tried first and Gemini second. Ollama is appended only when a model is set.
type Providers struct {
	openaiAPIKey   string
	openaiModel    string
	geminiAPIKey   string
	geminiModel    string
	geminiProject  string
	geminiLocation string
	ollamaURL      string
	ollamaModel    string
}

// Flags returns CLI flags for provider configuration
func (p *Providers) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key for the primary provider",
			Category:    "Provider",
			Sources:     cli.EnvVars("VATIKA_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Destination: &p.openaiAPIKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI model name",
			Value:       provider.DefaultOpenAIModel,
			Category:    "Provider",
			Sources:     cli.EnvVars("VATIKA_OPENAI_MODEL"),
			Destination: &p.openaiModel,
		},
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key for the secondary provider",
			Category:    "Provider",
			Sources:     cli.EnvVars("VATIKA_GEMINI_API_KEY", "GOOGLE_API_KEY"),
			Destination: &p.geminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini model name",
			Value:       provider.DefaultGeminiModel,
			Category:    "Provider",
			Sources:     cli.EnvVars("VATIKA_GEMINI_MODEL"),
			Destination: &p.geminiModel,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID to call Gemini through Vertex AI when no API key is set",
			Category:    "Provider",
			Sources:     cli.EnvVars("VATIKA_GEMINI_PROJECT"),
			Destination: &p.geminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for Vertex AI",
			Value:       provider.DefaultVertexLocation,
			Category:    "Provider",
			Sources:     cli.EnvVars("VATIKA_GEMINI_LOCATION"),
			Destination: &p.geminiLocation,
		},
		&cli.StringFlag{
			Name:        "ollama-url",
			Usage:       "Ollama server URL",
			Value:       provider.DefaultOllamaURL,
			Category:    "Provider",
			Sources:     cli.EnvVars("VATIKA_OLLAMA_URL", "OLLAMA_HOST"),
			Destination: &p.ollamaURL,
		},
		&cli.StringFlag{
			Name:        "ollama-model",
			Usage:       "Ollama model name. Enables the local provider as the last fallback",
			Category:    "Provider",
			Sources:     cli.EnvVars("VATIKA_OLLAMA_MODEL"),
			Destination: &p.ollamaModel,
		},
	}
}

// LogAttrs returns log attributes for the provider configuration
func (p *Providers) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("openai_configured", provider.ValidateCredential(provider.OpenAIName, p.openaiAPIKey) == nil),
		slog.String("openai_model", p.openaiModel),
		slog.Bool("gemini_configured", provider.ValidateCredential(provider.GeminiName, p.geminiAPIKey) == nil),
		slog.String("gemini_model", p.geminiModel),
		slog.String("gemini_project", p.geminiProject),
		slog.String("ollama_url", p.ollamaURL),
		slog.String("ollama_model", p.ollamaModel),
	}
}

// Configure builds the provider chain in priority order. Missing or
// placeholder credentials are only warned about here. The affected provider
// then fails on every call and the chain falls through to the next one.
func (p *Providers) Configure(ctx context.Context) ([]interfaces.Provider, error) {
	logger := logging.Default()

	if err := provider.ValidateCredential(provider.OpenAIName, p.openaiAPIKey); err != nil {
		logger.Warn("OpenAI provider is not configured", "error", err)
	}
	openai, err := provider.NewOpenAI(ctx, p.openaiAPIKey, p.openaiModel)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure OpenAI provider")
	}
	providers := []interfaces.Provider{openai}

	gemini, err := p.configureGemini(ctx)
	if err != nil {
		return nil, err
	}
	providers = append(providers, gemini)

	if p.ollamaModel != "" {
		ollama, err := provider.NewOllama(p.ollamaURL, p.ollamaModel, http.DefaultClient)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure Ollama provider")
		}
		providers = append(providers, ollama)
		logger.Info("Ollama provider enabled", "url", p.ollamaURL, "model", p.ollamaModel)
	}

	return providers, nil
}

func (p *Providers) configureGemini(ctx context.Context) (interfaces.Provider, error) {
	keyErr := provider.ValidateCredential(provider.GeminiName, p.geminiAPIKey)
	if keyErr != nil && p.geminiProject != "" {
		vertex, err := provider.NewGeminiVertex(ctx, p.geminiProject, p.geminiLocation, p.geminiModel)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure Gemini provider")
		}
		logging.Default().Info("Gemini provider uses Vertex AI",
			"project_id", p.geminiProject,
			"location", p.geminiLocation,
		)
		return vertex, nil
	}

	if keyErr != nil {
		logging.Default().Warn("Gemini provider is not configured", "error", keyErr)
	}
	gemini, err := provider.NewGemini(ctx, p.geminiAPIKey, p.geminiModel)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Gemini provider")
	}
	return gemini, nil
}
