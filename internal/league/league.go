package league

import (
	"math"
	"sort"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
)

// Table sizing.
const (
	Size            = 20
	MidSeasonGames  = 19
	FullSeasonGames = 38
)

// Team is one entrant in a simulated table.
type Team struct {
	Name         string
	Strength     int
	IsPlayerClub bool
}

// TierBaseline is the reference strength a tier's average club plays at.
func TierBaseline(tier int) int {
	switch tier {
	case 1:
		return 82
	case 2:
		return 72
	case 3:
		return 62
	case 4:
		return 52
	case 5:
		return 42
	default:
		return 40
	}
}

// Simulate plays games independent fixtures for every team against the
// baseline and returns the table sorted by points then goal difference.
// Teams do not play each other, so league-wide wins and losses need not balance.
func Simulate(src rng.Source, teams []Team, games, baseline int) ([]domain.LeagueRow, error) {
	if games < 0 {
		return nil, domain.NewPreconditionError("league table", "games", float64(games), "must be non-negative")
	}
	flagged := 0
	for _, t := range teams {
		if t.IsPlayerClub {
			flagged++
		}
	}
	if flagged > 1 {
		return nil, domain.NewPreconditionError("league table", "playerClubs", float64(flagged), "at most one team may be the player's club")
	}

	rows := make([]domain.LeagueRow, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, simulateTeam(src, t, games, baseline))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].GoalDiff > rows[j].GoalDiff
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows, nil
}

func simulateTeam(src rng.Source, t Team, games, baseline int) domain.LeagueRow {
	rel := float64(t.Strength - baseline)
	winProb := clamp(0.35+rel*0.015, 0.1, 0.8)
	loseProb := clamp(0.35-rel*0.015, 0.1, 0.8)
	drawProb := 1 - winProb - loseProb

	var won, drawn, lost int
	for i := 0; i < games; i++ {
		roll := src.Float64()
		switch {
		case roll < winProb:
			won++
		case roll < winProb+drawProb:
			drawn++
		default:
			lost++
		}
	}

	gd := math.Round(float64(won)*1.4 - float64(lost)*1.2 + float64(src.Int(-5, 5)))
	return domain.LeagueRow{
		Name:         t.Name,
		Played:       games,
		Won:          won,
		Drawn:        drawn,
		Lost:         lost,
		GoalDiff:     int(gd),
		Points:       won*3 + drawn,
		IsPlayerClub: t.IsPlayerClub,
	}
}

// PlayerPosition returns the player's club position, or 0 when absent.
func PlayerPosition(rows []domain.LeagueRow) int {
	for _, r := range rows {
		if r.IsPlayerClub {
			return r.Position
		}
	}
	return 0
}

// TagZones returns a copy of rows with promotion, relegation and continental places marked.
func TagZones(rows []domain.LeagueRow, tier int) []domain.LeagueRow {
	out := make([]domain.LeagueRow, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].Status = zoneFor(out[i].Position, tier)
	}
	return out
}

func zoneFor(position, tier int) domain.Zone {
	if tier == 1 {
		switch {
		case position >= 1 && position <= 4:
			return domain.ZoneChampions
		case position == 5:
			return domain.ZoneEuropa
		case position == 6:
			return domain.ZoneConference
		}
	} else if position >= 1 && position <= 3 {
		return domain.ZonePromotion
	}
	if tier < 5 && position >= 18 {
		return domain.ZoneRelegation
	}
	return ""
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
