// Package config reads environment-backed settings. Command-line flags
// override anything set here.
package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds settings that commonly live in the environment rather than
// on the command line.
type Config struct {
	// APIKey is the EKI Ekilex bearer token. Without it the primary
	// service is skipped unconditionally.
	APIKey string `env:"ORIGINTAG_API_KEY"`
	// DBPath is the SQLite lexicon cache location.
	DBPath string `env:"ORIGINTAG_DB" env-default:".cache_origin.sqlite3"`
	// HTTPTimeout bounds each external service request.
	HTTPTimeout time.Duration `env:"ORIGINTAG_HTTP_TIMEOUT" env-default:"8s"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
