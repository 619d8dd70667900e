package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 100 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retrying wraps a Store and retries failed calls with linear backoff.
// Missing careers and cancelled contexts are returned at once.
type retrying struct {
	next        Store
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetrying wraps next with retries. Non-positive attempts or backoff use the defaults.
func NewRetrying(next Store, logger *slog.Logger, maxAttempts int, backoff time.Duration) Store {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retrying{
		next:        next,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retrying) do(ctx context.Context, op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := fn()
		if err == nil || permanent(err) {
			return err
		}
		lastErr = err
		if attempt == r.maxAttempts {
			break
		}

		logging.Warn(logging.FromContext(ctx, r.logger), "store call retry",
			"op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	logging.Warn(logging.FromContext(ctx, r.logger), "store call failed",
		"op", op, "attempts", r.maxAttempts, "error", lastErr)
	return lastErr
}

func permanent(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (r *retrying) Get(ctx context.Context, id string) (domain.Career, error) {
	var c domain.Career
	err := r.do(ctx, "get", func() error {
		var err error
		c, err = r.next.Get(ctx, id)
		return err
	})
	return c, err
}

func (r *retrying) Put(ctx context.Context, c domain.Career) error {
	return r.do(ctx, "put", func() error { return r.next.Put(ctx, c) })
}

func (r *retrying) List(ctx context.Context) ([]domain.Career, error) {
	var cs []domain.Career
	err := r.do(ctx, "list", func() error {
		var err error
		cs, err = r.next.List(ctx)
		return err
	})
	return cs, err
}

func (r *retrying) Delete(ctx context.Context, id string) error {
	return r.do(ctx, "delete", func() error { return r.next.Delete(ctx, id) })
}
