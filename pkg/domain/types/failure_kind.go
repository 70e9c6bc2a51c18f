package types

import "net/http"

// FailureKind classifies a failed answer for the caller
type FailureKind string

const (
	// FailureValidation means the caller sent an incomplete request
	FailureValidation FailureKind = "validation"
	// FailureServiceUnavailable means every provider failed outside development
	FailureServiceUnavailable FailureKind = "service-unavailable"
	// FailureProcessing means an unexpected fault happened while answering
	FailureProcessing FailureKind = "processing-error"
)

// HTTPStatus returns the HTTP status code for the failure kind
func (k FailureKind) HTTPStatus() int {
	switch k {
	case FailureValidation:
		return http.StatusBadRequest
	case FailureServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// String returns the string representation of the failure kind
func (k FailureKind) String() string {
	return string(k)
}
