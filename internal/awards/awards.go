package awards

import (
	"github.com/preston-bernstein/football-career-sim/internal/competition"
	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/international"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
)

// Individual honours.
const (
	Puskas         = "Puskas Award"
	GoldenBoot     = "League Golden Boot"
	PlayerOfYear   = "League Player of the Year"
	BallonDor      = "Ballon d'Or"
	WorldPlayer    = "World Player of the Year"
	puskasChance   = 0.001
	minLeagueGames = 20
	eliteRating    = 7.8
	ballonDorScore = 160
)

// Input is a finished season as the awards panel sees it.
type Input struct {
	// ClubTier is the tier the player's club played at this season.
	ClubTier int
	Stats    domain.SeasonStats
	// Trophies holds club and international silverware won this season.
	Trophies []string
}

// Calculate returns every individual award earned. Awards are independent,
// so a season can collect none or several.
func Calculate(src rng.Source, in Input) []string {
	var out []string
	total, league := in.Stats.Total, in.Stats.League

	if rng.Chance(src, puskasChance) && total.Goals > 0 {
		out = append(out, Puskas)
	}

	if league.Matches > minLeagueGames && in.ClubTier == 1 {
		threshold := 25 + src.Int(-5, 8)
		if league.Goals >= threshold {
			out = append(out, GoldenBoot)
		}
		if league.Rating >= eliteRating {
			out = append(out, PlayerOfYear)
		}
	}

	if in.ClubTier == 1 && total.Rating > eliteRating && Score(total.Rating, in.Trophies) > ballonDorScore {
		out = append(out, BallonDor, WorldPlayer)
	}
	return out
}

// Score is the Ballon d'Or panel's composite for a rating and trophy haul.
func Score(rating float64, trophies []string) float64 {
	score := rating * 10
	var continental, tournament bool
	for _, t := range trophies {
		continental = continental || competition.IsContinentalTrophy(t)
		tournament = tournament || international.IsTournamentTrophy(t)
	}
	if continental {
		score += 30
	}
	if tournament {
		score += 50
	}
	return score
}
