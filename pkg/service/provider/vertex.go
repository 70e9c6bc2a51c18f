package provider

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem/llm/gemini"
)

// DefaultVertexLocation is used when no location is given
const DefaultVertexLocation = "us-central1"

// NewGeminiVertex creates the secondary provider through Vertex AI with
// application default credentials instead of an API key. It is used when a
// Google Cloud project is configured and no Gemini API key is.
func NewGeminiVertex(ctx context.Context, projectID, location, model string) (*LLM, error) {
	if projectID == "" {
		return newUnconfiguredLLM(GeminiName, goerr.Wrap(ErrNotConfigured, "Google Cloud project is not set")), nil
	}
	if location == "" {
		location = DefaultVertexLocation
	}

	var opts []gemini.Option
	if model != "" && model != DefaultGeminiModel {
		opts = append(opts, gemini.WithModel(model))
	}

	client, err := gemini.New(ctx, projectID, location, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Vertex AI Gemini client",
			goerr.V("project_id", projectID),
			goerr.V("location", location),
		)
	}

	return NewLLM(GeminiName, client), nil
}
