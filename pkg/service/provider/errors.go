package provider

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrProvider is the root of every single-provider failure
	ErrProvider = goerr.New("provider failed")

	// ErrNotConfigured means the provider credential is absent or a placeholder.
	// It is returned before any network call is made.
	ErrNotConfigured = goerr.Wrap(ErrProvider, "provider is not configured")

	// ErrEmptyResponse means the provider answered without any text
	ErrEmptyResponse = goerr.Wrap(ErrProvider, "provider returned no content")

	// ErrRefused means the provider declined to answer the prompt
	ErrRefused = goerr.Wrap(ErrProvider, "provider refused to answer")
)

// callError keeps the error returned by a provider SDK in the chain while
// also matching ErrProvider
type callError struct {
	cause error
}

func (e *callError) Error() string {
	return e.cause.Error()
}

func (e *callError) Unwrap() error {
	return e.cause
}

func (e *callError) Is(target error) bool {
	return target == ErrProvider
}

// wrapCall wraps an SDK failure so that both ErrProvider and the original
// error are reachable through errors.Is and errors.As
func wrapCall(err error, msg string, opts ...goerr.Option) error {
	return goerr.Wrap(&callError{cause: err}, msg, opts...)
}

// Context keys for error values
const (
	ProviderKey = "provider"
	ModelKey    = "model"
)

// placeholderCredentials are values shipped in sample env files. They are
// treated as if the credential was not set at all.
var placeholderCredentials = []string{
	"sk-REAL_OPENAI_API_KEY_HERE",
	"REAL_GOOGLE_API_KEY_HERE",
	"your-api-key",
	"your_api_key_here",
	"changeme",
}

// IsPlaceholderCredential reports whether key is a known placeholder value
func IsPlaceholderCredential(key string) bool {
	key = strings.TrimSpace(key)
	for _, p := range placeholderCredentials {
		if strings.EqualFold(key, p) {
			return true
		}
	}
	return false
}

// ValidateCredential returns ErrNotConfigured if key is empty or a placeholder
func ValidateCredential(name, key string) error {
	if strings.TrimSpace(key) == "" {
		return goerr.Wrap(ErrNotConfigured, "credential is not set", goerr.V(ProviderKey, name))
	}
	if IsPlaceholderCredential(key) {
		return goerr.Wrap(ErrNotConfigured, "credential is a placeholder", goerr.V(ProviderKey, name))
	}
	return nil
}
