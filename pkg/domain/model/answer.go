package model

import (
	"github.com/secmon-lab/vatika/pkg/domain/types"
)

// AnswerRequest asks the AI pipeline about a plant
type AnswerRequest struct {
	PlantName      string           `json:"plantName"`
	ScientificName string           `json:"scientificName"`
	Question       string           `json:"question,omitempty"`
	Kind           types.AnswerKind `json:"type,omitempty"`
}

// AnswerFailure describes why no answer could be produced
type AnswerFailure struct {
	Kind    types.FailureKind `json:"-"`
	Error   string            `json:"error"`
	Details string            `json:"details,omitempty"`
}

// AnswerEnvelope carries either an answer text or a failure, never both
type AnswerEnvelope struct {
	Data    string         `json:"data,omitempty"`
	Failure *AnswerFailure `json:"-"`
}

// NewAnswer returns a successful envelope
func NewAnswer(text string) *AnswerEnvelope {
	return &AnswerEnvelope{Data: text}
}

// NewAnswerFailure returns a failed envelope
func NewAnswerFailure(kind types.FailureKind, msg, details string) *AnswerEnvelope {
	return &AnswerEnvelope{
		Failure: &AnswerFailure{
			Kind:    kind,
			Error:   msg,
			Details: details,
		},
	}
}

// Succeeded reports whether the envelope carries an answer
func (e *AnswerEnvelope) Succeeded() bool {
	return e.Failure == nil
}

// Body returns the value to be serialized on the wire:
// {data} on success and {error, details?} on failure.
func (e *AnswerEnvelope) Body() any {
	if e.Failure != nil {
		return e.Failure
	}
	return struct {
		Data string `json:"data"`
	}{Data: e.Data}
}
