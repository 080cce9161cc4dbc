package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration parsed from environment variables
type Config struct {
	Host string `env:"GAMESLEAGUE_HOST" envDefault:""`
	Port int    `env:"GAMESLEAGUE_PORT" envDefault:"8080"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"GAMESLEAGUE_STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"GAMESLEAGUE_REDIS_URL" envDefault:"redis://localhost:6379"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"GAMESLEAGUE_LOG_LEVEL" envDefault:"info"`
}

// Load parses environment variables into a Config struct
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
