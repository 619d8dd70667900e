package config

import (
	"strings"
	"time"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// StoreConfig selects where careers live between requests.
type StoreConfig struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// RedisTTL expires idle careers; zero keeps them forever.
	RedisTTL  time.Duration
	KeyPrefix string
	// RetryAttempts and RetryBackoff govern retries of failed redis calls.
	RetryAttempts int
	RetryBackoff  time.Duration
}

func loadStore() StoreConfig {
	backend := strings.ToLower(envOrDefault(envStoreBackend, defaultStoreBackend))
	if backend != StoreRedis {
		backend = StoreMemory
	}
	return StoreConfig{
		Backend:       backend,
		RedisAddr:     envOrDefault(envRedisAddr, defaultRedisAddr),
		RedisPassword: envOrDefault(envRedisPassword, ""),
		RedisDB:       intEnvOrDefault(envRedisDB, 0),
		RedisTTL:      durationEnvOrDefault(envRedisTTL, 0),
		KeyPrefix:     envOrDefault(envRedisPrefix, defaultRedisPrefix),
		RetryAttempts: intEnvOrDefault(envStoreRetries, defaultStoreRetries),
		RetryBackoff:  durationEnvOrDefault(envStoreBackoff, defaultStoreBackoff),
	}
}
