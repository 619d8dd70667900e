package growth

import (
	"fmt"
	"math"
	"strings"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
)

// Input is one close season's worth of evidence for development.
type Input struct {
	Player domain.Player
	// Stats is senior, youth and international play merged together.
	Stats    domain.StatSet
	Level    domain.Level
	Events   []string
	Injuries []string
}

// Result is the player's post-season ability and body load.
type Result struct {
	Ability int    `json:"ability"`
	Fatigue int    `json:"fatigue"`
	Log     string `json:"log"`
}

// Apply develops or declines the player and accumulates then recovers fatigue.
// Ability never exceeds potential and never drops below 1. Fatigue has no ceiling.
func Apply(src rng.Source, in Input) (Result, error) {
	p := in.Player
	if err := p.Validate(); err != nil {
		return Result{}, fmt.Errorf("apply growth: %w", err)
	}

	var (
		growth      float64
		fatigueGain float64
		notes       []string
	)

	if in.Level == domain.LevelFreeAgent {
		growth = -float64(src.Int(2, 4))
		fatigueGain = 8 + float64(p.Fatigue)*0.1
		notes = append(notes, "Attributes declining without a club.")
	} else {
		// A season without matches carries a zero rating, which counts against veterans.
		ratingFactor := (in.Stats.Rating - 6.0) * 2
		matchFactor := float64(min(in.Stats.Matches, 40)) / 40

		switch {
		case p.Age < 21:
			growth = (float64(src.Int(2, 5)) + ratingFactor) * matchFactor
			if in.Level == domain.LevelSenior && in.Stats.Matches > 10 {
				growth *= 1.5
			} else if in.Level.IsYouthSquad() {
				growth *= 0.8
			}
			notes = append(notes, "Developing well.")
		case p.Age < 28:
			growth = (float64(src.Int(0, 3)) + ratingFactor) * matchFactor
			notes = append(notes, "Entering prime years.")
		case p.Age < 32:
			growth = ratingFactor*0.5 - float64(src.Int(0, 2))
			notes = append(notes, "Maintaining fitness.")
		default:
			growth = -float64(src.Int(2, 5)) + ratingFactor*0.5
			notes = append(notes, "Physical decline.")
		}

		if p.Fatigue > 85 {
			growth -= 2
			notes = append(notes, "High body load hindering progress.")
		}
		if p.CurrentClub.Tier == 1 {
			growth++
		}
		fatigueGain = float64(in.Stats.Matches) * 0.6 * (1 - float64(p.NaturalFitness)/250)
	}

	for _, injury := range in.Injuries {
		if domain.IsMajorInjury(injury) {
			fatigueGain += float64(src.Int(5, 10))
			growth--
			notes = append(notes, "Major injury setback.")
		} else {
			fatigueGain++
		}
	}

	ability := float64(p.CurrentAbility) + growth
	ability = math.Min(ability, float64(p.PotentialAbility))
	ability = math.Max(ability, 1)

	fatigue := float64(p.Fatigue) + fatigueGain
	if in.Level != domain.LevelFreeAgent {
		recovery := 7 + float64(p.NaturalFitness)/20 + facilityBonus(p.CurrentClub.Tier)
		if domain.HasLifestyleEvent(in.Events) {
			recovery += 5
			notes = append(notes, "Lifestyle improvements aiding recovery.")
		}
		if p.Age > 29 {
			recovery -= float64(p.Age - 29)
		}
		fatigue = math.Max(0, fatigue-recovery)
	}

	newAbility := int(math.Round(ability))
	newAbility = max(min(newAbility, p.PotentialAbility, 99), 1)

	delta := newAbility - p.CurrentAbility
	sign := ""
	if delta > 0 {
		sign = "+"
	}
	log := fmt.Sprintf("%s%d Ability. %s", sign, delta, strings.Join(notes, " "))

	return Result{
		Ability: newAbility,
		Fatigue: int(math.Round(fatigue)),
		Log:     strings.TrimSpace(log),
	}, nil
}

func facilityBonus(tier int) float64 {
	switch tier {
	case 1:
		return 3
	case 2:
		return 1.5
	default:
		return 0
	}
}
