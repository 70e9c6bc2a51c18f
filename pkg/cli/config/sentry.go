package config

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Sentry holds CLI flags for error reporting
type Sentry struct {
	dsn         string
	environment string
	release     string
}

// Flags returns CLI flags for Sentry configuration
func (s *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN. Server errors are reported when set",
			Category:    "Sentry",
			Sources:     cli.EnvVars("VATIKA_SENTRY_DSN", "SENTRY_DSN"),
			Destination: &s.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment name",
			Category:    "Sentry",
			Sources:     cli.EnvVars("VATIKA_SENTRY_ENV"),
			Destination: &s.environment,
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Sentry release name",
			Category:    "Sentry",
			Sources:     cli.EnvVars("VATIKA_SENTRY_RELEASE"),
			Destination: &s.release,
		},
	}
}

// LogAttrs returns log attributes for the Sentry configuration
func (s *Sentry) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Bool("enabled", s.dsn != ""),
		slog.String("environment", s.environment),
		slog.String("release", s.release),
	}
}

// Configure initializes the global Sentry client. It does nothing without a
// DSN.
func (s *Sentry) Configure() error {
	if s.dsn == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         s.dsn,
		Environment: s.environment,
		Release:     s.release,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}

	logging.Default().Info("Sentry error reporting enabled", "environment", s.environment)
	return nil
}
