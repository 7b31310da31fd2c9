package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	OpsPort  string `env:"OPS_PORT, default=9090"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Server  ServerConfig
	Session SessionConfig

	// StaticDir is the root the static collaborator serves from.
	StaticDir string `env:"STATIC_DIR, default=public"`
	// SeedDemo loads the demo users and sample ads at startup.
	SeedDemo bool `env:"SEED_DEMO, default=true"`
}

type ServerConfig struct {
	// Workers bounds how many connections are handled concurrently.
	Workers int `env:"WORKERS, default=8"`
	// QueueSize is the accept backlog between the listener and the workers.
	QueueSize int `env:"QUEUE_SIZE, default=256"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT,  default=15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT, default=15s"`
}

type SessionConfig struct {
	TTL time.Duration `env:"SESSION_TTL, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
