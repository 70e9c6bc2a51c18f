package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/secmon-lab/vatika/pkg/domain/types"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
)

const (
	msgPlantIdentityRequired = "plant identity required"
	msgQuestionRequired      = "question required"
	msgInvalidKind           = "invalid answer type"

	msgServiceUnavailable    = "AI service unavailable"
	detailServiceUnavailable = "Failed to generate response from AI providers"
	msgProcessingError       = "Failed to process request"
)

// AnswerUseCase turns a plant question into an answer envelope
type AnswerUseCase struct {
	resolver *Resolver
	env      types.Environment
}

// NewAnswerUseCase creates a new AnswerUseCase
func NewAnswerUseCase(resolver *Resolver, env types.Environment) *AnswerUseCase {
	if resolver == nil {
		resolver = NewResolver()
	}
	return &AnswerUseCase{
		resolver: resolver,
		env:      env,
	}
}

// Environment returns the environment the use case degrades for
func (uc *AnswerUseCase) Environment() types.Environment {
	return uc.env
}

// Providers returns the provider names in the order they are tried
func (uc *AnswerUseCase) Providers() []string {
	return uc.resolver.Providers()
}

// Answer never returns a nil envelope and never panics. Exactly one of
// envelope.Data and envelope.Failure is set.
func (uc *AnswerUseCase) Answer(ctx context.Context, req *model.AnswerRequest) (envelope *model.AnswerEnvelope) {
	reqID := uuid.Must(uuid.NewV7()).String()
	logger := logging.From(ctx).With(RequestIDKey, reqID)
	ctx = logging.With(ctx, logger)

	defer func() {
		if r := recover(); r != nil {
			err := goerr.New("panic while answering", goerr.V("panic", fmt.Sprint(r)), goerr.V(RequestIDKey, reqID))
			logger.Error("recovered from panic", "error", err)
			envelope = model.NewAnswerFailure(types.FailureProcessing, msgProcessingError, fmt.Sprint(r))
		}
	}()

	envelope, err := uc.answer(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			logger.Info("rejected answer request", "error", err)
			return model.NewAnswerFailure(types.FailureValidation, validationMessage(err), "")
		default:
			logger.Error("failed to answer", "error", err)
			return model.NewAnswerFailure(types.FailureProcessing, msgProcessingError, err.Error())
		}
	}
	return envelope
}

func (uc *AnswerUseCase) answer(ctx context.Context, req *model.AnswerRequest) (*model.AnswerEnvelope, error) {
	if err := validateAnswerRequest(req); err != nil {
		return nil, err
	}

	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, goerr.Wrap(ErrProcessing, "failed to build prompt", goerr.V("cause", err.Error()))
	}

	result := uc.resolver.Resolve(ctx, prompt)
	if result.Status == ResolveSucceeded && strings.TrimSpace(result.Text) != "" {
		logging.From(ctx).Info("answered plant question",
			"provider", result.Provider,
			"kind", req.Kind.Normalize(),
			"failed_attempts", len(result.Attempts),
		)
		return model.NewAnswer(result.Text), nil
	}

	if uc.env.IsDevelopment() {
		logging.From(ctx).Warn("all providers failed, serving sample answer")
		question := ""
		if req.Kind.Normalize() == types.AnswerKindQA {
			question = strings.TrimSpace(req.Question)
		}
		return model.NewAnswer(SampleAnswer(
			strings.TrimSpace(req.PlantName),
			strings.TrimSpace(req.ScientificName),
			question,
		)), nil
	}

	return model.NewAnswerFailure(types.FailureServiceUnavailable, msgServiceUnavailable, detailServiceUnavailable), nil
}

// validationError carries the user-facing message of a rejected request
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }

func validationMessage(err error) string {
	var ve *validationError
	if errors.As(err, &ve) {
		return ve.msg
	}
	return err.Error()
}

func validateAnswerRequest(req *model.AnswerRequest) error {
	if req == nil {
		return &validationError{msg: msgPlantIdentityRequired}
	}
	if strings.TrimSpace(req.PlantName) == "" || strings.TrimSpace(req.ScientificName) == "" {
		return &validationError{msg: msgPlantIdentityRequired}
	}
	if !req.Kind.Normalize().IsValid() {
		return &validationError{msg: msgInvalidKind}
	}
	if req.Kind.RequiresQuestion() && strings.TrimSpace(req.Question) == "" {
		return &validationError{msg: msgQuestionRequired}
	}
	return nil
}
