package config

import (
	"github.com/pkg/errors"
)

type Environment string

const (
	EnvironmentLocal      Environment = "local"
	EnvironmentStaging    Environment = "staging"
	EnvironmentProduction Environment = "production"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Environment) UnmarshalText(text []byte) error {
	switch env := Environment(text); env {
	case EnvironmentLocal, EnvironmentStaging, EnvironmentProduction:
		*e = env
		return nil
	default:
		return errors.Errorf("invalid environment '%s', expected one of local, staging or production", text)
	}
}

func (e Environment) IsProduction() bool {
	return e == EnvironmentProduction
}
