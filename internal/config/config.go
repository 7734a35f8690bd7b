package config

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the service. Values come from
// TASKDESK_* environment variables.
type Config struct {
	Addr         string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`

	// PGDSN is optional; when empty the service runs against in-memory
	// stores, which is only useful for local development.
	PGDSN         string `envconfig:"PG_DSN"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"ops/migrations/sql"`
	SeedsDir      string `envconfig:"SEEDS_DIR" default:"ops/migrations/seeds"`

	AuthSecret string        `envconfig:"AUTH_SECRET" required:"true"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"30m"`

	InitialUserEmail    string `envconfig:"INITIAL_USER_EMAIL" default:"admin@example.com"`
	InitialUserPassword string `envconfig:"INITIAL_USER_PASSWORD" default:"admin123"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("taskdesk", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.AuthSecret) == "" {
		return nil, errors.New("auth secret must be provided")
	}
	if strings.TrimSpace(cfg.InitialUserEmail) == "" || cfg.InitialUserPassword == "" {
		return nil, errors.New("initial user credentials must be provided")
	}
	return &cfg, nil
}
