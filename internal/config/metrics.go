package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled bool
	// Port and Path locate the Prometheus scrape endpoint.
	Port         string
	Path         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		Path:         envOrDefault(envMetricsPath, defaultMetricsPath),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
