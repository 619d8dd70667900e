package careers

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
	"github.com/preston-bernstein/football-career-sim/internal/season"
)

// Outcome is what one simulation call produced.
type Outcome struct {
	Career      domain.Career      `json:"career"`
	Performance season.Performance `json:"performance"`
	// Season is set once a season has been closed out.
	Season *season.Result `json:"season,omitempty"`
	// MustRetire is set when the player's body has given out.
	MustRetire bool `json:"mustRetire"`
}

// SimulateHalf plays the next half (or a whole season) of a career.
func (s *Service) SimulateHalf(ctx context.Context, id string, half season.Half) (Outcome, error) {
	unlock := s.lock(id)
	defer unlock()

	c, err := s.loadActive(ctx, id)
	if err != nil {
		return Outcome{}, err
	}
	if err := s.canPlay(c, half); err != nil {
		return Outcome{}, err
	}

	logger := logging.FromContext(ctx, s.logger)
	src := s.source(id, step(c, 0))
	p := c.Player

	req := season.Request{Player: p, Half: half}
	if half == season.SecondHalf {
		req.Previous = &c.MidSeason.Stats
	}

	start := time.Now()
	perf, err := s.engine.Simulate(src, req)
	if s.rec != nil {
		s.rec.RecordSimulation(half.String(), time.Since(start), err)
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("simulate %s: %w", half, err)
	}
	if s.rec != nil {
		for _, injury := range perf.Stats.Injuries {
			s.rec.RecordInjury(injury)
		}
	}

	world, err := s.engine.World(src, p, half, perf)
	if err != nil {
		return Outcome{}, fmt.Errorf("simulate %s: %w", half, err)
	}

	out := Outcome{Performance: perf}
	c.World = world
	c.Offers = nil

	if half == season.FirstHalf {
		c.Phase = domain.PhaseMidSeason
		c.MidSeason = &domain.HalfSnapshot{
			Stats:    perf.Stats,
			Events:   perf.Events,
			Table:    perf.Table,
			Position: perf.Position,
		}
	} else {
		closing := season.Closing{
			Player:     p,
			Year:       c.Year,
			Final:      perf,
			World:      world,
			ExtendLoan: c.ExtendLoan,
		}
		if half == season.SecondHalf {
			closing.First = &c.MidSeason.Stats
			closing.Final.Events = append(slices.Clone(c.MidSeason.Events), perf.Events...)
		}
		res, err := s.engine.Finalize(src, closing)
		if err != nil {
			return Outcome{}, fmt.Errorf("close season %d: %w", c.Year, err)
		}
		if s.rec != nil {
			s.rec.RecordSeasonEnd(string(res.Club))
		}

		c.Player = res.Player
		c.Year++
		c.Phase = domain.PhasePreSeason
		c.MidSeason = nil
		c.ExtendLoan = false
		out.Season = &res
		out.MustRetire = season.ForcedRetirement(res.Player)
	}

	c.UpdatedAt = s.now()
	if err := s.persist(ctx, c); err != nil {
		return Outcome{}, err
	}

	logging.Info(logger, "half simulated",
		logging.FieldCareerID, id,
		logging.FieldSeasonYear, c.Year,
		logging.FieldHalf, half.String(),
		logging.FieldClub, p.CurrentClub.Name,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	out.Career = c
	return out, nil
}

// canPlay checks the career is at the right point in the year for half.
func (s *Service) canPlay(c domain.Career, half season.Half) error {
	switch half {
	case season.FirstHalf, season.FullSeason:
		if c.Phase != domain.PhasePreSeason {
			return ErrSeasonInProgress
		}
		if season.ForcedRetirement(c.Player) {
			return ErrMustRetire
		}
		p := c.Player
		if !p.CurrentClub.IsFreeAgent() && p.Contract.YearsLeft <= 0 {
			return ErrContractExpired
		}
	case season.SecondHalf:
		if c.Phase != domain.PhaseMidSeason || c.MidSeason == nil {
			return ErrNoSeasonInProgress
		}
	default:
		return fmt.Errorf("%w: unknown half %d", ErrInvalidRequest, int(half))
	}
	return nil
}
