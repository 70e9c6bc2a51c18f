package config_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vatika/pkg/cli/config"
)

func TestConfigErrors_SentinelIdentification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		sentinelError error
		wantMatch     bool
	}{
		{
			name:          "ErrInvalidConfig can be identified",
			err:           goerr.Wrap(config.ErrInvalidConfig, "validation failed"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     true,
		},
		{
			name:          "ErrMissingConfig can be identified",
			err:           goerr.Wrap(config.ErrMissingConfig, "flag not set"),
			sentinelError: config.ErrMissingConfig,
			wantMatch:     true,
		},
		{
			name:          "ErrMissingConfig is not ErrInvalidConfig",
			err:           goerr.Wrap(config.ErrMissingConfig, "flag not set"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, errors.Is(tt.err, tt.sentinelError)).Equal(tt.wantMatch)
		})
	}
}
