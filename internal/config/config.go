package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	CORSOrigins    []string
	RequestTimeout Duration
	// AdminToken guards admin routes; empty disables them.
	AdminToken string
	Log        LogConfig
	Metrics    MetricsConfig
	Store      StoreConfig
	Saves      SavesConfig
	Sim        SimConfig
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string
	Format string
}

// SimConfig controls the simulation engine.
type SimConfig struct {
	// Seed fixes the random source for replayable careers; zero seeds from the clock.
	Seed      uint64
	StartYear int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		CORSOrigins:    splitList(envOrDefault(envCORSOrigins, defaultCORSOrigins)),
		RequestTimeout: durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
		AdminToken:     envOrDefault(envAdminToken, ""),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
		Store:   loadStore(),
		Saves:   loadSaves(),
		Sim: SimConfig{
			Seed:      uint64EnvOrDefault(envSimSeed, 0),
			StartYear: intEnvOrDefault(envStartYear, defaultStartYear),
		},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
