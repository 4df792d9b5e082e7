package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvVars = []string{
	EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName,
	EnvVersion, EnvCSIPath, EnvRNGSeed, EnvLoadoutCacheSize, EnvEnvSchemaVersion,
	EnvAPIKey, EnvTrustedProxies,
}

// clearEnvVars unsets every variable Load reads and restores them afterwards.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DefaultServiceName, cfg.ServiceName)
		assert.Empty(t, cfg.CSIPath)
		assert.Zero(t, cfg.RNGSeed)
		assert.Equal(t, 64, cfg.LoadoutCacheSize)
		assert.Empty(t, cfg.APIKey)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Equal(t, ":8080", cfg.Addr())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvCSIPath, "tables.yaml")
		t.Setenv(EnvRNGSeed, "42")
		t.Setenv(EnvLoadoutCacheSize, "8")
		t.Setenv(EnvAPIKey, "hq-key")
		t.Setenv(EnvTrustedProxies, "10.0.0.1, 10.0.0.2,")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "tables.yaml", cfg.CSIPath)
		assert.Equal(t, int64(42), cfg.RNGSeed)
		assert.Equal(t, 8, cfg.LoadoutCacheSize)
		assert.Equal(t, "hq-key", cfg.APIKey)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("rejects unparsable numbers", func(t *testing.T) {
		testCases := []struct {
			key, value, msg string
		}{
			{EnvPort, "not-a-number", "invalid PORT"},
			{EnvPort, "8080.5", "invalid PORT"},
			{EnvPort, "", "invalid PORT"},
			{EnvRNGSeed, "seed", "invalid RNG_SEED"},
			{EnvLoadoutCacheSize, "many", "invalid LOADOUT_CACHE_SIZE"},
		}

		for _, tc := range testCases {
			t.Run(tc.key+"="+tc.value, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(tc.key, tc.value)

				cfg, err := Load()

				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tc.msg)
			})
		}
	})
}

func TestValidate(t *testing.T) {
	tablePath := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(tablePath, []byte("items: []"), 0o644))

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{Port: 8080, LoadoutCacheSize: 64}},
		{name: "valid with table file", cfg: Config{Port: 1, CSIPath: tablePath}},
		{name: "zero port", cfg: Config{Port: 0}, wantErr: "PORT 0"},
		{name: "above max port", cfg: Config{Port: 65536}, wantErr: "PORT 65536"},
		{name: "negative cache", cfg: Config{Port: 8080, LoadoutCacheSize: -1}, wantErr: "LOADOUT_CACHE_SIZE"},
		{name: "prod needs api key", cfg: Config{Port: 8080, Environment: EnvironmentProd}, wantErr: "API_KEY"},
		{name: "prod with api key", cfg: Config{Port: 8080, Environment: EnvironmentProd, APIKey: "k"}},
		{name: "missing table file", cfg: Config{Port: 8080, CSIPath: "nope.yaml"}, wantErr: "CSI_PATH nope.yaml"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Run("clean environment", func(t *testing.T) {
		clearEnvVars(t)
		assert.Empty(t, ValidateEnvWithWarnings())
	})

	t.Run("schema mismatch", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvEnvSchemaVersion, "0.9")
		warnings := ValidateEnvWithWarnings()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "ENV_SCHEMA_VERSION mismatch")
	})

	t.Run("fixed seed in production", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvRNGSeed, "7")
		warnings := ValidateEnvWithWarnings()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "RNG_SEED")
	})
}
