package config

// Config holds runtime configuration for the CLI.
type Config struct {
	Provider string
	BGG      BGGConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// LogConfig selects log level and format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// Variables from DefaultEnvFile fill in anything not already set.
func Load() (Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom is Load with an explicit env file path; empty skips the file.
func LoadFrom(envFile string) (Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}
	return Config{
		Provider: envOrDefault(envProvider, defaultProvider),
		BGG:      loadBGG(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, "info"),
			Format: envOrDefault(envLogFormat, ""),
		},
		Metrics: loadMetrics(),
	}, nil
}
