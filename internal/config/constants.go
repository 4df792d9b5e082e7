package config

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvCSIPath          = "CSI_PATH"
	EnvRNGSeed          = "RNG_SEED"
	EnvLoadoutCacheSize = "LOADOUT_CACHE_SIZE"
	EnvEnvSchemaVersion = "ENV_SCHEMA_VERSION"
	EnvAPIKey           = "API_KEY"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
)

// Defaults applied when a variable is unset
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "ufoai-inventory"
	DefaultVersion          = "dev"
	DefaultRNGSeed          = "0"
	DefaultLoadoutCacheSize = "64"
)

// EnvironmentProd is the environment that requires an API key.
const EnvironmentProd = "prod"

// Port range accepted by Validate
const (
	MinPort = 1
	MaxPort = 65535
)
