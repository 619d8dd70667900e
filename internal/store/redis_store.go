package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
)

// RedisStore keeps careers as JSON documents in Redis with an index set
// of known IDs. A zero TTL keeps careers forever.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "career-sim"
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// WithLogger sets the logger used for background index maintenance.
func (s *RedisStore) WithLogger(logger *slog.Logger) *RedisStore {
	s.logger = logger
	return s
}

func (s *RedisStore) careerKey(id string) string {
	return fmt.Sprintf("%s:career:%s", s.prefix, id)
}

func (s *RedisStore) indexKey() string {
	return s.prefix + ":careers"
}

// Ping checks the connection; the server uses it for readiness.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Get loads a career by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (domain.Career, error) {
	data, err := s.client.Get(ctx, s.careerKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Career{}, ErrNotFound
	}
	if err != nil {
		return domain.Career{}, fmt.Errorf("reading career %s: %w", id, err)
	}
	return decodeCareer(data)
}

// Put writes the career and records its ID in the index.
func (s *RedisStore) Put(ctx context.Context, c domain.Career) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling career: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.careerKey(c.ID), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), c.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("writing career %s: %w", c.ID, err)
	}
	return nil
}

// List returns every indexed career, oldest first. IDs whose documents
// have expired are dropped from the index.
func (s *RedisStore) List(ctx context.Context) ([]domain.Career, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("listing careers: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Career{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.careerKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("loading careers: %w", err)
	}

	result := make([]domain.Career, 0, len(values))
	var stale []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		c, err := decodeCareer([]byte(raw))
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	s.pruneIndex(ctx, stale)
	sortCareers(result)
	return result, nil
}

// pruneIndex drops expired IDs from the index. A failure only leaves them
// for the next List to retry.
func (s *RedisStore) pruneIndex(ctx context.Context, stale []interface{}) {
	if len(stale) == 0 {
		return
	}
	if err := s.client.SRem(ctx, s.indexKey(), stale...).Err(); err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "stale index entries not pruned",
			logging.FieldCount, len(stale), logging.FieldError, err)
	}
}

// Delete removes the career and its index entry.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.careerKey(id))
	pipe.SRem(ctx, s.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("deleting career %s: %w", id, err)
	}
	return nil
}

func decodeCareer(data []byte) (domain.Career, error) {
	var c domain.Career
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.Career{}, fmt.Errorf("unmarshaling career: %w", err)
	}
	return c, nil
}
