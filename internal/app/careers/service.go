// Package careers runs a player's career from creation to retirement on
// top of the season engine, persisting every step.
package careers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
	"github.com/preston-bernstein/football-career-sim/internal/season"
	"github.com/preston-bernstein/football-career-sim/internal/store"
)

var (
	ErrNotFound           = errors.New("career not found")
	ErrRetired            = errors.New("career is over")
	ErrSeasonInProgress   = errors.New("season in progress")
	ErrNoSeasonInProgress = errors.New("no season in progress")
	ErrContractExpired    = errors.New("contract expired")
	ErrMustRetire         = errors.New("player can no longer play")
	ErrOfferNotFound      = errors.New("offer not found")
	ErrInvalidRequest     = errors.New("invalid request")
)

// Store defines the contract for persisting and retrieving careers.
type Store interface {
	Get(ctx context.Context, id string) (domain.Career, error)
	Put(ctx context.Context, c domain.Career) error
	List(ctx context.Context) ([]domain.Career, error)
	Delete(ctx context.Context, id string) error
}

// SaveWriter writes save files and hall of fame entries.
type SaveWriter interface {
	WriteSave(c domain.Career) error
	AddToHallOfFame(e domain.HallOfFameEntry) (bool, error)
}

// SaveReader reads save files back.
type SaveReader interface {
	CareerIDs() ([]string, error)
	LoadLatest(id string) (domain.Career, error)
	HallOfFame() ([]domain.HallOfFameEntry, error)
}

// Recorder receives simulation telemetry.
type Recorder interface {
	RecordSimulation(half string, duration time.Duration, err error)
	RecordInjury(description string)
	RecordSeasonEnd(outcome string)
}

// SourceFunc returns the randomness for one step of one career.
type SourceFunc func(careerID string, step uint64) rng.Source

// Options wires optional collaborators. The zero value runs in memory
// with time-seeded randomness.
type Options struct {
	Writer    SaveWriter
	Reader    SaveReader
	Recorder  Recorder
	Logger    *slog.Logger
	Seed      uint64
	StartYear int
	Source    SourceFunc
	Now       func() time.Time
	NewID     func() string
}

// Service coordinates career operations over a Store.
type Service struct {
	store     Store
	clubs     roster.Provider
	engine    *season.Engine
	writer    SaveWriter
	reader    SaveReader
	rec       Recorder
	logger    *slog.Logger
	source    SourceFunc
	now       func() time.Time
	newID     func() string
	startYear int

	locks sync.Map

	mu  sync.RWMutex
	hof []domain.HallOfFameEntry
}

// NewService constructs a Service with the provided Store and club directory.
func NewService(st Store, clubs roster.Provider, opts Options) *Service {
	s := &Service{
		store:     st,
		clubs:     clubs,
		engine:    season.NewEngine(clubs),
		writer:    opts.Writer,
		reader:    opts.Reader,
		rec:       opts.Recorder,
		logger:    opts.Logger,
		source:    opts.Source,
		now:       opts.Now,
		newID:     opts.NewID,
		startYear: opts.StartYear,
		hof:       []domain.HallOfFameEntry{},
	}
	if s.source == nil {
		s.source = defaultSource(opts.Seed)
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.startYear == 0 {
		s.startYear = 2024
	}
	return s
}

// defaultSource seeds each career step from the seed, the career ID and
// the step so a seeded server replays the same career. Zero means wall clock.
func defaultSource(seed uint64) SourceFunc {
	if seed == 0 {
		return func(string, uint64) rng.Source { return rng.NewTimeSeeded() }
	}
	return func(id string, step uint64) rng.Source {
		return rng.New(seed ^ xxhash.Sum64String(id) ^ (step * 0x9e3779b97f4a7c15))
	}
}

func step(c domain.Career, salt uint64) uint64 {
	var phase uint64
	switch c.Phase {
	case domain.PhasePreSeason:
		phase = 1
	case domain.PhaseMidSeason:
		phase = 2
	}
	return uint64(c.Year)*16 + phase*4 + salt
}

// Get returns a career by ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Career, error) {
	c, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Career{}, ErrNotFound
	}
	if err != nil {
		return domain.Career{}, fmt.Errorf("load career: %w", err)
	}
	return c, nil
}

// List returns every career.
func (s *Service) List(ctx context.Context) ([]domain.Career, error) {
	cs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}
	return cs, nil
}

// Delete drops a career from the store. Save files on disk are kept.
func (s *Service) Delete(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete career: %w", err)
	}
	s.locks.Delete(id)
	logging.Info(logging.FromContext(ctx, s.logger), "career deleted", logging.FieldCareerID, id)
	return nil
}

// World returns the league tables as of the career's last simulated half.
func (s *Service) World(ctx context.Context, id string) (domain.WorldTables, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.World == nil {
		return domain.WorldTables{}, nil
	}
	return c.World, nil
}

// HallOfFame lists retired careers, from disk when saves are enabled.
func (s *Service) HallOfFame(_ context.Context) ([]domain.HallOfFameEntry, error) {
	if s.reader != nil {
		entries, err := s.reader.HallOfFame()
		if err != nil {
			return nil, fmt.Errorf("read hall of fame: %w", err)
		}
		return entries, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.hof), nil
}

// Restore loads the newest save of every career missing from the store.
func (s *Service) Restore(ctx context.Context) (int, error) {
	if s.reader == nil {
		return 0, nil
	}
	ids, err := s.reader.CareerIDs()
	if err != nil {
		return 0, fmt.Errorf("restore careers: %w", err)
	}
	restored := 0
	for _, id := range ids {
		if _, err := s.store.Get(ctx, id); err == nil {
			continue
		}
		c, err := s.reader.LoadLatest(id)
		if err != nil {
			logging.Warn(s.logger, "skipping unreadable save", logging.FieldCareerID, id, "error", err)
			continue
		}
		if err := s.store.Put(ctx, c); err != nil {
			return restored, fmt.Errorf("restore career %s: %w", id, err)
		}
		restored++
		logging.Debug(s.logger, "career restored", logging.FieldCareerID, id, logging.FieldSeasonYear, c.Year)
	}
	return restored, nil
}

// lock serialises operations on one career.
func (s *Service) lock(id string) func() {
	m, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// persist writes the career to the store, then to disk. A failed save
// file is logged; the store stays authoritative.
func (s *Service) persist(ctx context.Context, c domain.Career) error {
	if err := s.store.Put(ctx, c); err != nil {
		return fmt.Errorf("save career: %w", err)
	}
	if s.writer != nil {
		if err := s.writer.WriteSave(c); err != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "save file not written",
				logging.FieldCareerID, c.ID, "error", err)
		}
	}
	return nil
}

func (s *Service) loadActive(ctx context.Context, id string) (domain.Career, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return domain.Career{}, err
	}
	if c.Retired() {
		return domain.Career{}, ErrRetired
	}
	return c, nil
}
