package store

import (
	"context"
	"errors"
	"time"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
)

// CallRecorder receives one observation per store call.
type CallRecorder interface {
	RecordStoreCall(store, op string, duration time.Duration, err error)
}

// Instrumented reports the latency and failures of every call to an
// underlying Store. Missing careers are not counted as failures.
type Instrumented struct {
	next Store
	name string
	rec  CallRecorder
}

// NewInstrumented wraps next. A nil recorder returns next unchanged.
func NewInstrumented(next Store, name string, rec CallRecorder) Store {
	if rec == nil {
		return next
	}
	return &Instrumented{next: next, name: name, rec: rec}
}

func (s *Instrumented) observe(op string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	s.rec.RecordStoreCall(s.name, op, time.Since(start), err)
}

func (s *Instrumented) Get(ctx context.Context, id string) (domain.Career, error) {
	start := time.Now()
	c, err := s.next.Get(ctx, id)
	s.observe("get", start, err)
	return c, err
}

func (s *Instrumented) Put(ctx context.Context, c domain.Career) error {
	start := time.Now()
	err := s.next.Put(ctx, c)
	s.observe("put", start, err)
	return err
}

func (s *Instrumented) List(ctx context.Context) ([]domain.Career, error) {
	start := time.Now()
	cs, err := s.next.List(ctx)
	s.observe("list", start, err)
	return cs, err
}

func (s *Instrumented) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.observe("delete", start, err)
	return err
}
