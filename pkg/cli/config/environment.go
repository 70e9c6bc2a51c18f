package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Environment holds the runtime environment flag. Only development lets the
// answer service fall back to sample answers.
type Environment struct {
	env string
}

// Flags returns CLI flags for environment configuration
func (e *Environment) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "env",
			Usage:       "Runtime environment (development, production, test)",
			Value:       types.EnvironmentProduction.String(),
			Sources:     cli.EnvVars("VATIKA_ENV"),
			Destination: &e.env,
		},
	}
}

// LogAttrs returns log attributes for the environment configuration
func (e *Environment) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("env", e.env),
	}
}

// Configure parses the configured environment
func (e *Environment) Configure() (types.Environment, error) {
	env, err := types.ParseEnvironment(e.env)
	if err != nil {
		return "", goerr.Wrap(ErrInvalidConfig, "invalid environment", goerr.V("env", e.env), goerr.V("cause", err.Error()))
	}
	return env, nil
}
