// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	hashDomain "github.com/allisson/hashprefix/internal/hash/domain"
	appValidation "github.com/allisson/hashprefix/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// SearchMaxAttempts is the attempt budget of a search run.
	SearchMaxAttempts int
	// SearchLogEvery is the progress cadence of a search run. Zero disables progress lines.
	SearchLogEvery int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		SearchMaxAttempts: env.GetInt("SEARCH_MAX_ATTEMPTS", hashDomain.DefaultMaxAttempts),
		SearchLogEvery:    env.GetInt("SEARCH_LOG_EVERY", hashDomain.DefaultLogEvery),

		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "hashprefix"),
	}
}

// Validate checks the configuration values and wraps failures as ErrInvalidInput.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required, appValidation.LogLevel),
		validation.Field(&c.SearchMaxAttempts, appValidation.NonNegative),
		validation.Field(&c.SearchLogEvery, appValidation.NonNegative),
		validation.Field(&c.MetricsNamespace, validation.When(c.MetricsEnabled, validation.Required)),
	)
	return appValidation.WrapValidationError(err)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
