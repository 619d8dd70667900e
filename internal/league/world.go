package league

import (
	"fmt"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
)

const (
	clubFillerSpread  = 8
	worldFillerSpread = 10
)

// ForClub simulates the player's own league: the club, its real league
// rivals from the roster, then generated fillers up to Size teams.
// Free agents get an empty table.
func ForClub(src rng.Source, clubs roster.Provider, club domain.Club, games int) ([]domain.LeagueRow, error) {
	if club.IsFreeAgent() {
		return []domain.LeagueRow{}, nil
	}

	baseline := TierBaseline(club.Tier)
	teams := []Team{{Name: club.Name, Strength: club.Strength, IsPlayerClub: true}}
	for _, c := range clubs.ClubsInLeague(club.League) {
		if c.Name == club.Name {
			continue
		}
		teams = append(teams, Team{Name: c.Name, Strength: c.Strength})
	}
	teams = pad(src, teams, club.League, club.Country, club.Tier, baseline, clubFillerSpread)

	rows, err := Simulate(src, teams, games, baseline)
	if err != nil {
		return nil, fmt.Errorf("simulate %s: %w", club.League, err)
	}
	return rows, nil
}

// World simulates every roster league and substitutes the player's own
// table for their league. own may be nil when the player is unattached.
func World(src rng.Source, clubs roster.Provider, games int, ownLeague string, own []domain.LeagueRow) (domain.WorldTables, error) {
	world := make(domain.WorldTables)
	for _, name := range clubs.Leagues() {
		members := clubs.ClubsInLeague(name)
		tier, country := 2, ""
		if len(members) > 0 {
			tier, country = members[0].Tier, members[0].Country
		}
		if name == ownLeague && len(own) > 0 {
			world[name] = TagZones(own, tier)
			continue
		}

		baseline := TierBaseline(tier)
		teams := make([]Team, 0, Size)
		for _, c := range members {
			teams = append(teams, Team{Name: c.Name, Strength: c.Strength})
		}
		teams = pad(src, teams, name, country, tier, baseline, worldFillerSpread)

		rows, err := Simulate(src, teams, games, baseline)
		if err != nil {
			return nil, fmt.Errorf("simulate %s: %w", name, err)
		}
		world[name] = TagZones(rows, tier)
	}

	// Promoted or relegated clubs can sit in a league the roster does not list.
	if _, ok := world[ownLeague]; !ok && ownLeague != "" && len(own) > 0 {
		world[ownLeague] = own
	}
	return world, nil
}

func pad(src rng.Source, teams []Team, league, country string, tier, baseline, spread int) []Team {
	taken := make(map[string]bool, Size)
	for _, t := range teams {
		taken[t.Name] = true
	}
	for len(teams) < Size {
		c := roster.Filler(src, league, country, tier, baseline, spread)
		name := c.Name
		if taken[name] {
			name = fmt.Sprintf("Team %c", rune('A'+len(teams)))
		}
		taken[name] = true
		teams = append(teams, Team{Name: name, Strength: c.Strength})
	}
	if len(teams) > Size {
		teams = teams[:Size]
	}
	return teams
}
