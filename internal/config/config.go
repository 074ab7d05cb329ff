package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseDriver           string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL              string `env:"DATABASE_URL" envDefault:"host=localhost port=5432 user=todouser password=todopassword dbname=todo_api sslmode=disable"`
	SecretKey                string `env:"SECRET_KEY" envDefault:"default-secret-key-change-me"`
	Algorithm                string `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`
	GinMode                  string `env:"GIN_MODE" envDefault:"debug"`
	Port                     string `env:"PORT" envDefault:"8080"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
