package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/football-career-sim/internal/config"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
	"github.com/preston-bernstein/football-career-sim/internal/metrics"
	"github.com/preston-bernstein/football-career-sim/internal/store"
)

// storeComponents is the live career store and its lifecycle hooks.
type storeComponents struct {
	store store.Store
	// ready is nil when the backend cannot go unhealthy.
	ready func(ctx context.Context) error
	close func() error
}

// storeFactory assembles the configured backend with the instrumentation wrapper.
type storeFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newStoreFactory(logger *slog.Logger, metrics *metrics.Recorder) storeFactory {
	return storeFactory{logger: logger, metrics: metrics}
}

func (f storeFactory) build(ctx context.Context, cfg config.StoreConfig) (storeComponents, error) {
	switch cfg.Backend {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		rs := store.NewRedisStore(client, cfg.KeyPrefix, cfg.RedisTTL).WithLogger(f.logger)
		if err := rs.Ping(ctx); err != nil {
			_ = client.Close()
			return storeComponents{}, fmt.Errorf("connect redis at %s: %w", cfg.RedisAddr, err)
		}
		logging.Info(f.logger, "career store ready",
			logging.FieldStore, config.StoreRedis,
			"addr", cfg.RedisAddr,
		)
		return storeComponents{
			store: store.NewInstrumented(
				store.NewRetrying(rs, f.logger, cfg.RetryAttempts, cfg.RetryBackoff),
				config.StoreRedis, f.metrics),
			ready: rs.Ping,
			close: client.Close,
		}, nil
	default:
		logging.Info(f.logger, "career store ready", logging.FieldStore, config.StoreMemory)
		return storeComponents{
			store: store.NewInstrumented(store.NewMemoryStore(), config.StoreMemory, f.metrics),
			close: func() error { return nil },
		}, nil
	}
}
