package league

import (
	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
)

// Outcome describes what happened to a club over the close season.
type Outcome string

const (
	OutcomeStayed    Outcome = "stayed"
	OutcomePromoted  Outcome = "promoted"
	OutcomeRelegated Outcome = "relegated"
)

// Progression applies promotion, relegation and strength drift from a
// final league position.
func Progression(src rng.Source, club domain.Club, position int) (domain.Club, Outcome) {
	if club.IsFreeAgent() || position <= 0 {
		return club, OutcomeStayed
	}

	next := club
	outcome := OutcomeStayed
	switch {
	case position <= 3 && club.Tier > 1:
		next.Tier--
		next.Strength += src.Int(3, 6)
		outcome = OutcomePromoted
	case position >= 18 && club.Tier < 5:
		next.Tier++
		next.Strength -= src.Int(3, 6)
		outcome = OutcomeRelegated
	case position <= 6:
		next.Strength += src.Int(0, 2)
	case position >= 15:
		next.Strength -= src.Int(0, 2)
	}

	next.Strength = min(max(next.Strength, 20), 99)
	if next.Tier != club.Tier {
		next.League = roster.TierName(next.Tier)
	}
	next.ContinentalTier = qualification(next.Tier, club.Tier, position)
	return next, outcome
}

// qualification maps a top-flight finish to next season's continental entry.
func qualification(newTier, oldTier, position int) domain.ContinentalTier {
	if newTier != 1 || oldTier != 1 {
		return domain.ContinentalNone
	}
	switch zoneFor(position, 1) {
	case domain.ZoneChampions:
		return domain.ContinentalChampions
	case domain.ZoneEuropa:
		return domain.ContinentalEuropa
	case domain.ZoneConference:
		return domain.ContinentalConference
	default:
		return domain.ContinentalNone
	}
}
