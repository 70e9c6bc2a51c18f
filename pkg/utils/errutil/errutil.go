package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
)

// Handle logs the error with a message and reports it to Sentry when a
// Sentry client is configured. It returns err unchanged.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logError(ctx, err, msg)
	report(ctx, err)

	return err
}

// HandleHTTP logs the error and writes a JSON error response. Server errors
// are reported to Sentry and their message is replaced with the status text
// so that internal details never reach the client.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	if err == nil {
		return
	}

	logError(ctx, err, "HTTP error", "status", statusCode)

	msg := err.Error()
	if statusCode >= http.StatusInternalServerError {
		report(ctx, err)
		msg = http.StatusText(statusCode)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg})
}

func logError(ctx context.Context, err error, msg string, args ...any) {
	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg, append(args,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)...)
	} else {
		logger.Error(msg, append(args, "error", err.Error())...)
	}
}

func report(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		var ge *goerr.Error
		if errors.As(err, &ge) {
			for k, v := range ge.Values() {
				scope.SetExtra(k, v)
			}
		}
		hub.CaptureException(err)
	})
}
