package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Validate checks loaded values that parse but cannot be used.
func (c *Config) Validate() error {
	var problems []string
	if c.Port < MinPort || c.Port > MaxPort {
		problems = append(problems, fmt.Sprintf("PORT %d outside %d-%d", c.Port, MinPort, MaxPort))
	}
	if c.LoadoutCacheSize < 0 {
		problems = append(problems, fmt.Sprintf("LOADOUT_CACHE_SIZE %d is negative", c.LoadoutCacheSize))
	}
	if c.Environment == EnvironmentProd && c.APIKey == "" {
		problems = append(problems, "API_KEY must be set in production")
	}
	if c.CSIPath != "" {
		if _, err := os.Stat(c.CSIPath); err != nil {
			problems = append(problems, fmt.Sprintf("CSI_PATH %s: %v", c.CSIPath, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateEnvWithWarnings reports non-fatal issues in the environment, such
// as an outdated .env layout or a fixed seed outside development.
func ValidateEnvWithWarnings() []string {
	var warnings []string

	switch version := os.Getenv(EnvEnvSchemaVersion); version {
	case "", ExpectedEnvSchemaVersion:
	default:
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, version))
	}

	if seed := os.Getenv(EnvRNGSeed); seed != "" && seed != DefaultRNGSeed && getEnv(EnvEnvironment, DefaultEnvironment) == EnvironmentProd {
		warnings = append(warnings, "RNG_SEED is fixed in production - every loadout sequence will repeat")
	}

	return warnings
}
