package config

// Environment variable names
const (
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvServiceName   = "SERVICE_NAME"
	EnvVersion       = "VERSION"
	EnvEnvironment   = "ENVIRONMENT"
	EnvCatalogPath   = "CATALOG_PATH"
	EnvDropRate      = "LOOT_DROP_RATE"
	EnvFallback      = "LOOT_FALLBACK"
	EnvDurationScale = "LOOT_DURATION_SCALE"
	EnvDurationBoost = "LOOT_DURATION_BOOST"
	EnvClassBias     = "LOOT_CLASS_BIAS"
	EnvSimWorkers    = "SIM_WORKERS"
)

// Defaults
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultServiceName   = "focus-loot"
	DefaultVersion       = "dev"
	DefaultEnvironment   = "dev"
	DefaultDropRate      = 1.0
	DefaultFallback      = "none"
	DefaultDurationScale = 60.0
	DefaultDurationBoost = 0.5
	DefaultClassBias     = 0.1
	DefaultSimWorkers    = 4
)
