package testutil

import (
	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/market"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
)

// SamplePlayer returns a 25-year-old midfielder at the named fixture club
// on a two-year professional deal. Unknown clubs leave the player unattached.
func SamplePlayer(club string, ability int) domain.Player {
	c, ok := roster.Fixture().Club(club)
	if !ok {
		c = roster.FreeAgent()
	}
	return domain.Player{
		Name:             "Test Player",
		Nationality:      "England",
		Age:              25,
		Position:         domain.PositionMID,
		CurrentAbility:   ability,
		PotentialAbility: ability + 5,
		NaturalFitness:   70,
		InjuryProne:      5,
		Form:             50,
		CurrentClub:      c,
		Contract:         domain.Contract{Wage: 10_000, YearsLeft: 2, ExpiryYear: 2026, Type: domain.ContractProfessional},
		MarketValue:      MarketValue(ability, 25, ability+5, domain.PositionMID, 2),
		History:          []domain.SeasonRecord{},
		TrophyCabinet:    []string{},
		AwardsCabinet:    []string{},
	}
}

// SampleCareer wraps SamplePlayer in a 2024 pre-season career.
func SampleCareer(id, club string, ability int) domain.Career {
	at := SeasonOpening(2024)
	return domain.Career{
		ID:        id,
		Player:    SamplePlayer(club, ability),
		Year:      2024,
		Phase:     domain.PhasePreSeason,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// MarketValue prices a player whose inputs are known to be valid, panicking otherwise.
func MarketValue(ability, age, potential int, position domain.Position, contractYears int) int {
	v, err := market.Value(ability, age, potential, position, contractYears)
	if err != nil {
		panic(err)
	}
	return v
}
