package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	ServiceName string `validate:"required"`
	Version     string
	Environment string `validate:"required"`

	CatalogPath string // empty selects the embedded default catalog

	DropRate      float64 `validate:"gte=0,lte=1"`
	Fallback      string  `validate:"oneof=none downgrade"`
	DurationScale float64 `validate:"gt=0"`
	DurationBoost float64 `validate:"gte=0,lte=100"`
	ClassBias     float64 `validate:"gte=0,lte=1"`

	SimWorkers int `validate:"gte=1,lte=256"`
}

// Load loads the configuration from environment variables and validates it
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:     strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		ServiceName:   getEnv(EnvServiceName, DefaultServiceName),
		Version:       getEnv(EnvVersion, DefaultVersion),
		Environment:   getEnv(EnvEnvironment, DefaultEnvironment),
		CatalogPath:   getEnv(EnvCatalogPath, ""),
		DropRate:      getEnvAsFloat(EnvDropRate, DefaultDropRate),
		Fallback:      strings.ToLower(getEnv(EnvFallback, DefaultFallback)),
		DurationScale: getEnvAsFloat(EnvDurationScale, DefaultDurationScale),
		DurationBoost: getEnvAsFloat(EnvDurationBoost, DefaultDurationBoost),
		ClassBias:     getEnvAsFloat(EnvClassBias, DefaultClassBias),
		SimWorkers:    getEnvAsInt(EnvSimWorkers, DefaultSimWorkers),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to the
// default when unset or unparsable
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsFloat retrieves a float environment variable, falling back to the
// default when unset or unparsable
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// IsDevelopment reports whether the environment is a local development one
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment || c.Environment == "development"
}
