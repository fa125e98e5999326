package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Environment     Environment `env:"ENVIRONMENT,expand" envDefault:"production"`
	MaintenanceMode bool        `env:"MAINTENANCE_MODE,expand" envDefault:"false"`

	Logger      Logger      `envPrefix:"LOGGER_"`
	HTTP        HTTP        `envPrefix:"HTTP_"`
	Storage     Storage     `envPrefix:"STORAGE_"`
	Identifiers Identifiers `envPrefix:"IDENTIFIERS_"`
	Stories     Stories     `envPrefix:"STORIES_"`
	Metrics     Metrics     `envPrefix:"METRICS_"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "BACKLOG_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}

type Identifiers struct {
	MaxAttempts int `env:"MAX_ATTEMPTS,expand" envDefault:"10"`
}

type Stories struct {
	StatusPolicy string `env:"STATUS_POLICY,expand" envDefault:"open"`
}

type Metrics struct {
	Enabled bool `env:"ENABLED,expand" envDefault:"true"`
}
