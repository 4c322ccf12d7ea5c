// Package config loads process configuration from the environment so main
// stays lean. Command-line flags override whatever the environment set.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Storage backend names accepted by ROLODEX_STORAGE / --storage.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config captures everything the assistant needs to start.
type Config struct {
	// DataFile is the snapshot path. For the sqlite backend it is the
	// database file.
	DataFile string `env:"ROLODEX_DATA_FILE" envDefault:"addressbook.json"`
	Storage  string `env:"ROLODEX_STORAGE" envDefault:"file"`
	LogLevel string `env:"ROLODEX_LOG_LEVEL" envDefault:"warn"`
	NoColor  bool   `env:"ROLODEX_NO_COLOR" envDefault:"false"`
}

// FromEnv reads a Config from the environment, loading a .env file first
// when one exists. A missing .env is a normal run, not an error.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate rejects values that cannot be wired into a running assistant.
func (c Config) Validate() error {
	switch c.Storage {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)", c.Storage, BackendFile, BackendSQLite)
	}
	if c.DataFile == "" {
		return fmt.Errorf("data file path must not be empty")
	}
	return nil
}
