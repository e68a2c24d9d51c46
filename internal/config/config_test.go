package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FocusLoot_Go/internal/domain"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "focus-loot", cfg.ServiceName)
		assert.Empty(t, cfg.CatalogPath, "Empty path selects the embedded catalog")
		assert.Equal(t, 1.0, cfg.DropRate)
		assert.Equal(t, "none", cfg.Fallback)
		assert.Equal(t, 60.0, cfg.DurationScale)
		assert.Equal(t, 0.5, cfg.DurationBoost)
		assert.Equal(t, 0.1, cfg.ClassBias)
		assert.Equal(t, 4, cfg.SimWorkers)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("CATALOG_PATH", "/etc/loot/catalog.json")
		t.Setenv("LOOT_DROP_RATE", "0.75")
		t.Setenv("LOOT_FALLBACK", "Downgrade")
		t.Setenv("LOOT_DURATION_SCALE", "45")
		t.Setenv("LOOT_DURATION_BOOST", "0.8")
		t.Setenv("LOOT_CLASS_BIAS", "0.2")
		t.Setenv("SIM_WORKERS", "16")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel, "Level is lower-cased")
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "/etc/loot/catalog.json", cfg.CatalogPath)
		assert.Equal(t, 0.75, cfg.DropRate)
		assert.Equal(t, "downgrade", cfg.Fallback)
		assert.Equal(t, 45.0, cfg.DurationScale)
		assert.Equal(t, 0.8, cfg.DurationBoost)
		assert.Equal(t, 0.2, cfg.ClassBias)
		assert.Equal(t, 16, cfg.SimWorkers)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("unparsable numbers fall back to defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOOT_DROP_RATE", "often")
		t.Setenv("SIM_WORKERS", "many")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultDropRate, cfg.DropRate)
		assert.Equal(t, DefaultSimWorkers, cfg.SimWorkers)
	})

	t.Run("returns error for out-of-range values", func(t *testing.T) {
		testCases := []struct {
			name  string
			key   string
			value string
			field string
		}{
			{"drop rate above one", "LOOT_DROP_RATE", "1.5", "DropRate"},
			{"negative drop rate", "LOOT_DROP_RATE", "-0.1", "DropRate"},
			{"zero duration scale", "LOOT_DURATION_SCALE", "0", "DurationScale"},
			{"negative boost", "LOOT_DURATION_BOOST", "-1", "DurationBoost"},
			{"class bias too large", "LOOT_CLASS_BIAS", "2", "ClassBias"},
			{"unknown fallback", "LOOT_FALLBACK", "reroll", "Fallback"},
			{"unknown log format", "LOG_FORMAT", "xml", "LogFormat"},
			{"zero workers", "SIM_WORKERS", "0", "SimWorkers"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(tc.key, tc.value)

				cfg, err := Load()

				assert.Nil(t, cfg)
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tc.field)
			})
		}
	})
}

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for float values", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "42.5")
		assert.Equal(t, 10, getEnvAsInt("TEST_INT_VAR", 10), "Should return default for float values")
	})

	t.Run("returns default for empty string", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})
}

// TestGetEnvAsFloat tests the getEnvAsFloat helper function
func TestGetEnvAsFloat(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_FLOAT_VAR")
		assert.Equal(t, 0.5, getEnvAsFloat("TEST_FLOAT_VAR", 0.5))
	})

	t.Run("parses integers and decimals", func(t *testing.T) {
		t.Setenv("TEST_FLOAT_VAR", "3")
		assert.Equal(t, 3.0, getEnvAsFloat("TEST_FLOAT_VAR", 0.5))

		t.Setenv("TEST_FLOAT_VAR", "0.25")
		assert.Equal(t, 0.25, getEnvAsFloat("TEST_FLOAT_VAR", 0.5))
	})

	t.Run("returns default for garbage", func(t *testing.T) {
		t.Setenv("TEST_FLOAT_VAR", "half")
		assert.Equal(t, 0.5, getEnvAsFloat("TEST_FLOAT_VAR", 0.5))
	})
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	// Clear all config-related env vars to ensure clean test state
	envVars := []string{
		EnvLogLevel, EnvLogFormat, EnvServiceName, EnvVersion, EnvEnvironment,
		EnvCatalogPath, EnvDropRate, EnvFallback, EnvDurationScale,
		EnvDurationBoost, EnvClassBias, EnvSimWorkers,
	}

	for _, key := range envVars {
		// t.Setenv registers the restore; Unsetenv then clears it for this test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
