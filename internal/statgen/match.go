package statgen

import (
	"math"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
)

// Match describes a single fixture from the player's side.
type Match struct {
	Ability          int
	Position         domain.Position
	TeamStrength     int
	OpponentStrength int
	// ExtraTime forces a winner when the score is level after 90 minutes.
	ExtraTime bool
}

// MatchResult is the scoreline plus the player's line for the match.
type MatchResult struct {
	MyScore  int            `json:"myScore"`
	OppScore int            `json:"oppScore"`
	Stats    domain.StatSet `json:"stats"`
}

// Won reports whether the player's side won.
func (r MatchResult) Won() bool { return r.MyScore > r.OppScore }

// SimulateMatch plays one fixture and reconciles the player's stats with the scoreline.
func SimulateMatch(src rng.Source, m Match) MatchResult {
	winProb := math.Min(math.Max(0.5+float64(m.TeamStrength-m.OpponentStrength)*0.015, 0.1), 0.9)

	var my, opp int
	switch {
	case rng.Chance(src, winProb):
		my = src.Int(1, 3)
		opp = src.Int(0, my-1)
	case rng.Chance(src, 0.3):
		my = src.Int(0, 2)
		opp = my
	default:
		opp = src.Int(1, 3)
		my = src.Int(0, opp-1)
	}

	minutes := src.Int(60, 90)
	if m.ExtraTime && my == opp {
		minutes += 30
		if rng.Chance(src, 0.5) {
			my++
		} else {
			opp++
		}
	}

	stats := Generate(src, 1, float64(m.Ability), m.Position, m.OpponentStrength)
	stats.Minutes = minutes
	stats.Starts = 1

	stats.Goals = min(stats.Goals, my)
	if opp > 0 {
		stats.CleanSheets = 0
	} else if m.Position.Defensive() {
		stats.CleanSheets = 1
	}

	rating := stats.Rating
	if stats.Goals > 0 && rating < 7.5 {
		rating += 1.0
	}
	if stats.Assists > 0 && rating < 7.0 {
		rating += 0.5
	}
	if stats.CleanSheets > 0 && m.Position.Defensive() && rating < 7.0 {
		rating += 0.5
	}
	switch {
	case opp > my+2:
		rating -= 1.0
	case opp > my:
		rating -= 0.3
	}
	if my > opp {
		rating += 0.3
	}

	stats.Rating = math.Min(math.Max(domain.RoundRating(rating), 5.0), 10.0)
	stats.Motm = 0
	if stats.Rating > 8.5 {
		stats.Motm = 1
	}

	return MatchResult{MyScore: my, OppScore: opp, Stats: stats}
}
