package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// CSIPath points at a definition file; empty selects the embedded tables.
	CSIPath string
	// RNGSeed seeds the loadout generator; zero seeds from the clock.
	RNGSeed int64
	// LoadoutCacheSize bounds the cached candidate pools per equipment table.
	LoadoutCacheSize int

	// APIKey guards the /api routes; empty leaves them open.
	APIKey         string
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
		CSIPath:     getEnv(EnvCSIPath, ""),
		APIKey:      getEnv(EnvAPIKey, ""),
	}

	for _, proxy := range strings.Split(getEnv(EnvTrustedProxies, ""), ",") {
		if proxy = strings.TrimSpace(proxy); proxy != "" {
			cfg.TrustedProxies = append(cfg.TrustedProxies, proxy)
		}
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	seed, err := strconv.ParseInt(getEnv(EnvRNGSeed, DefaultRNGSeed), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RNG_SEED value: %w", err)
	}
	cfg.RNGSeed = seed

	size, err := strconv.Atoi(getEnv(EnvLoadoutCacheSize, DefaultLoadoutCacheSize))
	if err != nil {
		return nil, fmt.Errorf("invalid LOADOUT_CACHE_SIZE value: %w", err)
	}
	cfg.LoadoutCacheSize = size

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Addr returns the listen address for the preview server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
