package competition

import (
	"math"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
)

// Bracket is a single-elimination competition described by its round names.
// The last round is always "Winner".
type Bracket struct {
	Name   string
	Rounds []string
	// Entry is the round index a club starts from.
	Entry int
}

const winnerRound = "Winner"

// DomesticCupTrophy is awarded for winning the domestic cup.
const DomesticCupTrophy = "Domestic Cup Winner"

// DomesticCup is the national knockout cup. Top-flight clubs enter at Round 3.
var DomesticCup = Bracket{
	Name:   "Domestic Cup",
	Rounds: []string{"Round 1", "Round 2", "Round 3", "Round 4", "Quarter Final", "Semi Final", "Final", winnerRound},
	Entry:  2,
}

var continentalRounds = []string{"Qualifying", "Group Stage", "Round of 16", "Quarter Final", "Semi Final", "Final", winnerRound}

// Continental returns the bracket for a club's continental competition.
func Continental(tier domain.ContinentalTier) Bracket {
	return Bracket{Name: ContinentalName(tier), Rounds: continentalRounds, Entry: 1}
}

// ContinentalName names the competition a continental tier plays in.
func ContinentalName(tier domain.ContinentalTier) string {
	switch tier {
	case domain.ContinentalChampions:
		return "Champions League"
	case domain.ContinentalEuropa:
		return "Europa League"
	case domain.ContinentalConference:
		return "Conference League"
	default:
		return ""
	}
}

// Trophy is the cabinet entry for winning the bracket.
func (b Bracket) Trophy() string {
	if b.Name == DomesticCup.Name {
		return DomesticCupTrophy
	}
	return b.Name + " Winner"
}

// IsContinentalTrophy reports whether a trophy came from a continental club competition.
func IsContinentalTrophy(trophy string) bool {
	for _, tier := range []domain.ContinentalTier{domain.ContinentalChampions, domain.ContinentalEuropa, domain.ContinentalConference} {
		if trophy == Continental(tier).Trophy() {
			return true
		}
	}
	return false
}

// Enter returns the starting progress for a qualified club.
func (b Bracket) Enter() domain.Progress {
	return domain.Progress{Stage: domain.StageActive, Round: b.Entry}
}

// AdvanceProbability is the per-round chance a club of the given strength goes through.
func AdvanceProbability(strength int) float64 {
	return math.Min(math.Max(0.35+float64(strength)*0.004, 0), 1)
}

// Advance plays rounds until the club is knocked out or lifts the trophy.
// With midSeason set, play stops at the quarter-final stage and the run
// stays active. Terminal and not-qualified progress is returned unchanged.
func (b Bracket) Advance(src rng.Source, p domain.Progress, strength int, midSeason bool) domain.Progress {
	if p.Terminal() || p.Stage == domain.StageNotQualified {
		return p
	}
	if p.Stage == "" {
		p = b.Enter()
	}

	winner := len(b.Rounds) - 1
	midCap := len(b.Rounds) - 4
	prob := AdvanceProbability(strength)

	round := min(max(p.Round, 0), winner)
	for round < winner {
		if midSeason && round >= midCap {
			return domain.Progress{Stage: domain.StageActive, Round: round}
		}
		if !rng.Chance(src, prob) {
			return domain.Progress{Stage: domain.StageEliminated, Round: round}
		}
		round++
	}
	return domain.Progress{Stage: domain.StageWinner, Round: winner}
}

// Label renders progress for display, e.g. "Eliminated in Quarter Final".
func (b Bracket) Label(p domain.Progress) string {
	switch p.Stage {
	case domain.StageNotQualified:
		return "Not Qualified"
	case domain.StageWinner:
		return winnerRound
	case domain.StageEliminated:
		return "Eliminated in " + b.round(p.Round)
	case domain.StageActive:
		return b.round(p.Round) + " (Active)"
	default:
		return "N/A"
	}
}

func (b Bracket) round(i int) string {
	if i < 0 || i >= len(b.Rounds) {
		return "Unknown Round"
	}
	return b.Rounds[i]
}
