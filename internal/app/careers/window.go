package careers

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
	"github.com/preston-bernstein/football-career-sim/internal/transfers"
)

// offerSalt keeps the window draw independent of the season draw.
const offerSalt = 1

// Offers returns the open window's offers, drawing them on first use.
// Accepting any offer closes the window until the next one.
func (s *Service) Offers(ctx context.Context, id string) ([]domain.Offer, error) {
	unlock := s.lock(id)
	defer unlock()

	c, err := s.loadActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Offers != nil {
		return c.Offers, nil
	}

	c.Offers = s.windowOffers(s.source(id, step(c, offerSalt)), c)
	c.UpdatedAt = s.now()
	if err := s.persist(ctx, c); err != nil {
		return nil, err
	}
	logging.Info(logging.FromContext(ctx, s.logger), "transfer window opened",
		logging.FieldCareerID, id,
		logging.FieldSeasonYear, c.Year,
		logging.FieldCount, len(c.Offers),
	)
	return c.Offers, nil
}

func (s *Service) windowOffers(src rng.Source, c domain.Career) []domain.Offer {
	p := c.Player
	out := make([]domain.Offer, 0)

	switch c.Phase {
	case domain.PhasePreSeason:
		if o, err := transfers.Renewal(p); err == nil {
			out = append(out, o)
		}
	case domain.PhaseMidSeason:
		if o, ok := transfers.LoanExtension(p); ok && !c.ExtendLoan {
			out = append(out, o)
		}
	}

	for _, o := range transfers.Offers(src, s.clubs, p) {
		// A loanee cannot be loaned on again.
		if p.OnLoan() && o.Type == domain.OfferLoan {
			continue
		}
		out = append(out, o)
	}
	return out
}

// AcceptOffer signs one of the window's offers.
func (s *Service) AcceptOffer(ctx context.Context, id, offerID string) (domain.Career, error) {
	unlock := s.lock(id)
	defer unlock()

	c, err := s.loadActive(ctx, id)
	if err != nil {
		return domain.Career{}, err
	}

	var (
		offer domain.Offer
		found bool
	)
	for _, o := range c.Offers {
		if o.ID == offerID {
			offer, found = o, true
			break
		}
	}
	if !found {
		return domain.Career{}, ErrOfferNotFound
	}

	next, err := transfers.Accept(c.Player, offer, c.Year)
	if err != nil {
		return domain.Career{}, fmt.Errorf("accept offer: %w", err)
	}
	c.Player = next
	if offer.Type == domain.OfferExtension {
		c.ExtendLoan = true
	}
	c.Offers = []domain.Offer{}
	c.UpdatedAt = s.now()
	if err := s.persist(ctx, c); err != nil {
		return domain.Career{}, err
	}

	logging.Info(logging.FromContext(ctx, s.logger), "offer accepted",
		logging.FieldCareerID, id,
		logging.FieldClub, offer.Club.Name,
		"offer_type", string(offer.Type),
	)
	return c, nil
}

// Release walks away from the current club in the summer window.
func (s *Service) Release(ctx context.Context, id string) (domain.Career, error) {
	unlock := s.lock(id)
	defer unlock()

	c, err := s.loadActive(ctx, id)
	if err != nil {
		return domain.Career{}, err
	}
	if c.Phase != domain.PhasePreSeason {
		return domain.Career{}, ErrSeasonInProgress
	}
	if c.Player.CurrentClub.IsFreeAgent() {
		return c, nil
	}

	left := c.Player.CurrentClub.Name
	c.Player = transfers.Release(c.Player)
	c.Offers = nil
	c.UpdatedAt = s.now()
	if err := s.persist(ctx, c); err != nil {
		return domain.Career{}, err
	}
	logging.Info(logging.FromContext(ctx, s.logger), "player released",
		logging.FieldCareerID, id,
		logging.FieldClub, left,
	)
	return c, nil
}

// Retire ends the career between seasons and enshrines it.
func (s *Service) Retire(ctx context.Context, id string) (domain.HallOfFameEntry, error) {
	unlock := s.lock(id)
	defer unlock()

	c, err := s.loadActive(ctx, id)
	if err != nil {
		return domain.HallOfFameEntry{}, err
	}
	if c.Phase != domain.PhasePreSeason {
		return domain.HallOfFameEntry{}, ErrSeasonInProgress
	}

	entry := domain.NewHallOfFameEntry(c.ID, c.Year, c.Player)
	c.Phase = domain.PhaseRetired
	c.Offers = []domain.Offer{}
	c.UpdatedAt = s.now()
	if err := s.persist(ctx, c); err != nil {
		return domain.HallOfFameEntry{}, err
	}
	s.enshrine(ctx, entry)

	logging.Info(logging.FromContext(ctx, s.logger), "career retired",
		logging.FieldCareerID, id,
		logging.FieldSeasonYear, c.Year,
		"seasons", entry.Seasons,
	)
	return entry, nil
}

func (s *Service) enshrine(ctx context.Context, entry domain.HallOfFameEntry) {
	s.mu.Lock()
	dup := false
	for _, e := range s.hof {
		if e.SameCareer(entry) {
			dup = true
			break
		}
	}
	if !dup {
		s.hof = append(s.hof, entry)
	}
	s.mu.Unlock()

	if s.writer != nil {
		if _, err := s.writer.AddToHallOfFame(entry); err != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "hall of fame not written",
				logging.FieldCareerID, entry.CareerID, "error", err)
		}
	}
}
