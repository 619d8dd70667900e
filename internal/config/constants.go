package config

import "time"

const (
	envPort           = "PORT"
	envCORSOrigins    = "CORS_ORIGINS"
	envRequestTimeout = "REQUEST_TIMEOUT"
	envAdminToken     = "ADMIN_TOKEN"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsPath    = "METRICS_PATH"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envStoreBackend   = "STORE_BACKEND"
	envRedisAddr      = "REDIS_ADDR"
	envRedisPassword  = "REDIS_PASSWORD"
	envRedisDB        = "REDIS_DB"
	envRedisTTL       = "REDIS_TTL"
	envRedisPrefix    = "REDIS_KEY_PREFIX"
	envStoreRetries   = "STORE_RETRY_ATTEMPTS"
	envStoreBackoff   = "STORE_RETRY_BACKOFF"
	envSavesEnabled   = "SAVES_ENABLED"
	envSavesDir       = "SAVES_DIR"
	envSavesRetention = "SAVES_RETENTION"
	envSimSeed        = "SIM_SEED"
	envStartYear      = "START_YEAR"

	defaultPort        = "4000"
	defaultCORSOrigins = "http://localhost:5173"
	// Whole-season calls finish in milliseconds; anything slower is a stuck store.
	defaultRequestTimeout = 10 * Duration(time.Second)
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultMetricsPort    = "9090"
	defaultMetricsPath    = "/metrics"
	defaultServiceName    = "football-career-sim"
	defaultStoreBackend   = StoreMemory
	defaultRedisAddr      = "localhost:6379"
	defaultRedisPrefix    = "career-sim"
	defaultStoreRetries   = 3
	defaultStoreBackoff   = 100 * time.Millisecond
	defaultSavesEnabled   = true
	defaultSavesDir       = "data/saves"
	// Rolling save files kept per career.
	defaultSavesRetention = 5
	defaultStartYear      = 2024
)
