package types

import (
	"fmt"
	"strings"
)

// Environment is the runtime environment the server is deployed in
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
	EnvironmentTest        Environment = "test"
)

// IsValid checks if the environment is known
func (e Environment) IsValid() bool {
	switch e {
	case EnvironmentDevelopment,
		EnvironmentProduction,
		EnvironmentTest:
		return true
	default:
		return false
	}
}

// IsDevelopment reports whether degraded sample answers are allowed
func (e Environment) IsDevelopment() bool {
	return e == EnvironmentDevelopment
}

// String returns the string representation of the environment
func (e Environment) String() string {
	return string(e)
}

// ParseEnvironment parses a string into an Environment. Empty input means production.
func ParseEnvironment(s string) (Environment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EnvironmentProduction, nil
	}

	env := Environment(s)
	if !env.IsValid() {
		return "", fmt.Errorf("invalid environment: %s", s)
	}
	return env, nil
}
