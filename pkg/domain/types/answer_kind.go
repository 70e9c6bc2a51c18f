package types

import "fmt"

// AnswerKind is the kind of AI answer requested for a plant
type AnswerKind string

const (
	AnswerKindQA       AnswerKind = "qa"
	AnswerKindInsights AnswerKind = "insights"
)

// AllAnswerKinds returns all valid answer kinds
func AllAnswerKinds() []AnswerKind {
	return []AnswerKind{
		AnswerKindQA,
		AnswerKindInsights,
	}
}

// IsValid checks if the answer kind is valid
func (k AnswerKind) IsValid() bool {
	switch k {
	case AnswerKindQA,
		AnswerKindInsights:
		return true
	default:
		return false
	}
}

// Normalize returns the kind, treating empty as AnswerKindQA.
func (k AnswerKind) Normalize() AnswerKind {
	if k == "" {
		return AnswerKindQA
	}
	return k
}

// RequiresQuestion reports whether a question text must accompany the request
func (k AnswerKind) RequiresQuestion() bool {
	return k.Normalize() == AnswerKindQA
}

// String returns the string representation of the answer kind
func (k AnswerKind) String() string {
	return string(k)
}

// ParseAnswerKind parses a string into an AnswerKind. Empty input means qa.
func ParseAnswerKind(s string) (AnswerKind, error) {
	kind := AnswerKind(s).Normalize()
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid answer kind: %s", s)
	}
	return kind, nil
}
