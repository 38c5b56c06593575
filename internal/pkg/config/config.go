package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	PostgresURL      string        `env:"POSTGRES_URL,required"`
	RedisAddr        string        `env:"REDIS_ADDR" envDefault:""`
	APIServerAddr    string        `env:"API_SERVER_ADDR" envDefault:":8080"`
	MetricsAddr      string        `env:"METRICS_ADDR" envDefault:":9091"`
	IdentityCacheTTL time.Duration `env:"IDENTITY_CACHE_TTL" envDefault:"5m"`
	MutationRPS      float64       `env:"MUTATION_RPS" envDefault:"20"`
	MutationBurst    int           `env:"MUTATION_BURST" envDefault:"40"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
