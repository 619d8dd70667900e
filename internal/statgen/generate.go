// Package statgen turns an appearance count and a strength matchup into a
// plausible stat line.
package statgen

import (
	"math"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
)

// Rating bounds for generated stat lines.
const (
	MinRating = 5.5
	MaxRating = 9.9

	ratingBase = 6.4
)

type weights struct {
	goals, assists, cleanSheets float64
}

// production scales effective matches into counting stats.
var production = map[domain.Position]weights{
	domain.PositionFWD: {goals: 0.7, assists: 0.25},
	domain.PositionMID: {goals: 0.25, assists: 0.5, cleanSheets: 0.2},
	domain.PositionDEF: {goals: 0.06, assists: 0.1, cleanSheets: 0.45},
	domain.PositionGK:  {cleanSheets: 0.55},
}

// ratingWeights turn per-match output into rating bonus.
var ratingWeights = map[domain.Position]weights{
	domain.PositionFWD: {goals: 2.2, assists: 1.2},
	domain.PositionMID: {goals: 1.6, assists: 1.6, cleanSheets: 0.4},
	domain.PositionDEF: {goals: 2.5, assists: 1.4, cleanSheets: 1.8},
	domain.PositionGK:  {assists: 3.0, cleanSheets: 2.2},
}

// Generate produces a stat line for matches appearances against opponents
// of the given strength. Zero appearances yield the zero StatSet exactly.
func Generate(src rng.Source, matches int, ability float64, position domain.Position, opponentStrength int) domain.StatSet {
	if matches <= 0 {
		return domain.StatSet{}
	}

	effective := ability * rng.Uniform(src, 0.90, 1.10)
	advantage := effective - float64(opponentStrength)
	perf := (effective + advantage/2) / 100

	ratio := 0.6
	switch {
	case matches > 25:
		ratio = 0.9
	case matches < 5:
		ratio = 0.2
	}
	ratio = math.Min(math.Max(ratio+rng.Uniform(src, -0.1, 0.1), 0.1), 1.0)

	starts := int(math.Round(float64(matches) * ratio))
	starts = min(starts, matches)
	subs := matches - starts
	minutes := starts*src.Int(75, 90) + subs*src.Int(10, 35)
	effMatches := float64(minutes) / 90

	base := effMatches * perf
	w, ok := production[position]
	if !ok {
		w = production[domain.PositionMID]
	}

	var goals, assists, cleanSheets int
	switch position {
	case domain.PositionFWD:
		goals = floorCount(base * w.goals * (src.Float64() + 0.4))
		assists = floorCount(base * w.assists)
	case domain.PositionGK:
		cleanSheets = floorCount(base * w.cleanSheets)
		assists = floorCount(effMatches * 0.02)
	default:
		goals = floorCount(base * w.goals)
		assists = floorCount(base * w.assists)
		cleanSheets = floorCount(base * w.cleanSheets)
	}

	rating := ratingBase +
		ratingBonus(position, goals, assists, cleanSheets, matches) +
		advantage/25 +
		rng.Uniform(src, -0.1, 0.7)
	rating = domain.RoundRating(math.Min(math.Max(rating, MinRating), MaxRating))

	motm := 0
	if rating > 8.2 {
		motm = int(math.Floor(float64(matches) * 0.15 * (rating - 7.5)))
		if motm < 1 && rng.Chance(src, 0.3) {
			motm = 1
		}
		motm = min(motm, matches)
	}

	return domain.StatSet{
		Matches:     matches,
		Starts:      starts,
		Minutes:     minutes,
		Goals:       goals,
		Assists:     assists,
		CleanSheets: cleanSheets,
		Rating:      rating,
		Motm:        motm,
	}
}

func ratingBonus(position domain.Position, goals, assists, cleanSheets, matches int) float64 {
	w, ok := ratingWeights[position]
	if !ok {
		w = ratingWeights[domain.PositionMID]
	}
	m := float64(matches)
	return float64(goals)/m*w.goals + float64(assists)/m*w.assists + float64(cleanSheets)/m*w.cleanSheets
}

// floorCount floors a per-bucket production figure. Weak players facing
// much stronger sides produce negative raw figures, which count as zero.
func floorCount(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Floor(v))
}
