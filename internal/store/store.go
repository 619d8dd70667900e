// Package store persists careers between requests.
package store

import (
	"context"
	"errors"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
)

// ErrNotFound is returned when no career exists under an ID.
var ErrNotFound = errors.New("career not found")

// Store is the persistence contract the careers service depends on.
type Store interface {
	Get(ctx context.Context, id string) (domain.Career, error)
	Put(ctx context.Context, c domain.Career) error
	List(ctx context.Context) ([]domain.Career, error)
	Delete(ctx context.Context, id string) error
}
