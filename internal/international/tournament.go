package international

import (
	"fmt"
	"sort"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
	"github.com/preston-bernstein/football-career-sim/internal/statgen"
)

// Kind separates major tournaments from friendlies.
type Kind string

const (
	KindWorldCup   Kind = "world_cup"
	KindRegional   Kind = "regional"
	KindFriendlies Kind = "friendlies"
)

// Call-up thresholds.
const (
	TournamentAbility = 72
	FriendlyAbility   = 65

	groupOpponents = 3
	qualifyingRank = 2
)

var regionalNames = map[string]string{
	RegionEurope:       "European Championship",
	RegionSouthAmerica: "Copa America",
	RegionAfrica:       "Africa Cup of Nations",
	RegionAsia:         "Asian Cup",
	RegionNorthAmerica: "Gold Cup",
}

var knockoutRounds = []string{"Round of 16", "Quarter Final", "Semi Final", "Final"}

// Tournament is one summer's international competition.
type Tournament struct {
	Name string `json:"name"`
	Year int    `json:"year"`
	Kind Kind   `json:"kind"`
}

// Key labels the tournament's stat bucket, e.g. "World Cup 2026".
func (t Tournament) Key() string {
	return fmt.Sprintf("%s %d", t.Name, t.Year)
}

// Trophy is the cabinet entry for winning the tournament.
func (t Tournament) Trophy() string {
	return t.Name + " Winner"
}

// Schedule returns the tournament a nation plays in the summer of year:
// the World Cup when year%4 == 2 and the regional championship when year%4 == 0.
func Schedule(year int, nationality string) (Tournament, bool) {
	switch year % 4 {
	case 2:
		return Tournament{Name: "World Cup", Year: year, Kind: KindWorldCup}, true
	case 0:
		return Tournament{Name: regionalNames[Region(nationality)], Year: year, Kind: KindRegional}, true
	default:
		return Tournament{}, false
	}
}

// Selected reports whether a player of this ability makes the tournament squad.
func Selected(ability int) bool {
	return ability >= TournamentAbility
}

// IsTournamentTrophy reports whether a trophy came from a major international tournament.
func IsTournamentTrophy(trophy string) bool {
	if trophy == "World Cup Winner" {
		return true
	}
	for _, name := range regionalNames {
		if trophy == name+" Winner" {
			return true
		}
	}
	return false
}

// Outcome is what a summer of international football produced.
type Outcome struct {
	Tournament Tournament     `json:"tournament"`
	Played     bool           `json:"played"`
	Stats      domain.StatSet `json:"stats"`
	Result     string         `json:"result"`
	Trophies   []string       `json:"trophies"`
	Events     []string       `json:"events"`
}

// Play runs the summer: the scheduled tournament if the player is selected,
// otherwise a handful of friendlies for fringe internationals.
func Play(src rng.Source, p domain.Player, year int) Outcome {
	if t, ok := Schedule(year, p.Nationality); ok && Selected(p.CurrentAbility) {
		return playTournament(src, p, t)
	}
	if p.CurrentAbility >= FriendlyAbility {
		return playFriendlies(src, p, year)
	}
	return Outcome{}
}

type groupRow struct {
	name       string
	points, gd int
	player     bool
}

func playTournament(src rng.Source, p domain.Player, t Tournament) Outcome {
	out := Outcome{Tournament: t, Played: true}
	nation := p.Nationality
	strength := NationStrength(nation)
	pool := rng.Shuffle(src, opponentPool(nation, t))

	group := []groupRow{{name: nation, player: true}}
	var lines []domain.StatSet
	for _, opp := range pool[:groupOpponents] {
		res := statgen.SimulateMatch(src, match(p, strength, opp, false))
		lines = append(lines, res.Stats)
		group[0].points += points(res.MyScore, res.OppScore)
		group[0].gd += res.MyScore - res.OppScore
		group = append(group, groupRow{
			name:   opp,
			points: points(res.OppScore, res.MyScore),
			gd:     res.OppScore - res.MyScore,
		})
	}
	sort.SliceStable(group, func(i, j int) bool {
		if group[i].points != group[j].points {
			return group[i].points > group[j].points
		}
		return group[i].gd > group[j].gd
	})

	rank := 0
	for i, row := range group {
		if row.player {
			rank = i + 1
		}
	}

	exit := "Group Stage"
	if rank <= qualifyingRank {
		exit = ""
		for _, round := range knockoutRounds {
			opp := rng.Pick(src, pool)
			res := statgen.SimulateMatch(src, match(p, strength, opp, true))
			lines = append(lines, res.Stats)
			if !res.Won() {
				exit = round
				break
			}
		}
	}

	out.Stats = domain.MergeAll(lines...)
	out.Events = append(out.Events, "Participated in "+t.Name)
	switch exit {
	case "":
		out.Result = "Winner"
		out.Trophies = append(out.Trophies, t.Trophy())
		out.Events = append(out.Events, fmt.Sprintf("Won the %s!", t.Name))
	case "Final":
		out.Result = "Eliminated in Final"
		out.Events = append(out.Events, "Runner-up in "+t.Name)
	default:
		out.Result = "Eliminated in " + exit
	}
	if out.Stats.Goals >= 5 {
		out.Events = append(out.Events, t.Name+" Golden Boot Contender")
	}
	if out.Stats.Rating > 8.0 {
		out.Events = append(out.Events, t.Name+" Best Player Contender")
	}
	return out
}

func playFriendlies(src rng.Source, p domain.Player, year int) Outcome {
	t := Tournament{Name: "Friendlies", Year: year, Kind: KindFriendlies}
	n := src.Int(0, 4)
	if n == 0 {
		return Outcome{Tournament: t}
	}

	strength := NationStrength(p.Nationality)
	pool := opponentPool(p.Nationality, t)
	lines := make([]domain.StatSet, 0, n)
	for i := 0; i < n; i++ {
		res := statgen.SimulateMatch(src, match(p, strength, rng.Pick(src, pool), false))
		lines = append(lines, res.Stats)
	}
	return Outcome{
		Tournament: t,
		Played:     true,
		Stats:      domain.MergeAll(lines...),
		Result:     "Friendlies",
		Events:     []string{fmt.Sprintf("Earned %d international caps in friendlies", n)},
	}
}

func match(p domain.Player, strength int, opponent string, extraTime bool) statgen.Match {
	return statgen.Match{
		Ability:          p.CurrentAbility,
		Position:         p.Position,
		TeamStrength:     strength,
		OpponentStrength: NationStrength(opponent),
		ExtraTime:        extraTime,
	}
}

func points(scored, conceded int) int {
	switch {
	case scored > conceded:
		return 3
	case scored == conceded:
		return 1
	default:
		return 0
	}
}
