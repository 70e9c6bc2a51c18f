package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
)

// ResolveStatus is the outcome of a single pass over the provider chain
type ResolveStatus int

const (
	ResolveAllFailed ResolveStatus = iota
	ResolveSucceeded
)

// String returns the string representation of the status
func (s ResolveStatus) String() string {
	switch s {
	case ResolveSucceeded:
		return "succeeded"
	default:
		return "all_failed"
	}
}

// Attempt records one failed provider call
type Attempt struct {
	Provider string
	Err      error
}

// ResolveResult is the result of Resolver.Resolve
type ResolveResult struct {
	Status   ResolveStatus
	Text     string
	Provider string
	Attempts []Attempt
}

// Err returns the error of the last failed attempt, or nil if none failed
func (r *ResolveResult) Err() error {
	if len(r.Attempts) == 0 {
		return nil
	}
	return r.Attempts[len(r.Attempts)-1].Err
}

// Resolver tries providers strictly in order and returns the first non-empty
// answer. Calls are sequential and each Resolve is one pass: no retry, no
// backoff.
type Resolver struct {
	providers []interfaces.Provider
}

// NewResolver creates a resolver over providers in priority order
func NewResolver(providers ...interfaces.Provider) *Resolver {
	return &Resolver{providers: providers}
}

// Providers returns the names of the providers in the order they are tried
func (r *Resolver) Providers() []string {
	names := make([]string, len(r.providers))
	for i, p := range r.providers {
		names[i] = p.Name()
	}
	return names
}

// Resolve never returns an error: individual failures are logged and
// recorded in Attempts, and total exhaustion is reported as ResolveAllFailed.
func (r *Resolver) Resolve(ctx context.Context, prompt string) *ResolveResult {
	logger := logging.From(ctx)
	result := &ResolveResult{Status: ResolveAllFailed}

	for _, p := range r.providers {
		text, err := p.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) == "" {
			err = goerr.New("provider returned empty text", goerr.V("provider", p.Name()))
		}
		if err != nil {
			logger.Warn("provider failed, trying next",
				"provider", p.Name(),
				"error", err,
			)
			result.Attempts = append(result.Attempts, Attempt{Provider: p.Name(), Err: err})
			continue
		}

		result.Status = ResolveSucceeded
		result.Text = text
		result.Provider = p.Name()
		return result
	}

	logger.Error("all providers failed", "attempts", len(result.Attempts))
	return result
}
