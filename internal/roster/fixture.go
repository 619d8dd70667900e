package roster

import "github.com/preston-bernstein/football-career-sim/internal/domain"

func club(name, league, country string, tier, prestige, strength int, ct domain.ContinentalTier) domain.Club {
	return domain.Club{
		ID:              Slug(name),
		Name:            name,
		League:          league,
		Country:         country,
		Tier:            tier,
		Prestige:        prestige,
		Strength:        strength,
		ContinentalTier: ct,
	}
}

// Fixture returns a deterministic club directory useful for local play and tests.
func Fixture() *Memory {
	return NewMemory(FixtureClubs())
}

// FixtureClubs is the bundled club list.
func FixtureClubs() []domain.Club {
	const (
		none = domain.ContinentalNone
		uecl = domain.ContinentalConference
		uel  = domain.ContinentalEuropa
		ucl  = domain.ContinentalChampions
	)
	return []domain.Club{
		club("Man City", "Premier League", "England", 1, 98, 98, ucl),
		club("Liverpool", "Premier League", "England", 1, 95, 94, ucl),
		club("Arsenal", "Premier League", "England", 1, 92, 92, ucl),
		club("Man Utd", "Premier League", "England", 1, 90, 86, uel),
		club("Chelsea", "Premier League", "England", 1, 88, 85, none),
		club("Tottenham", "Premier League", "England", 1, 85, 84, uel),
		club("Aston Villa", "Premier League", "England", 1, 78, 82, ucl),
		club("Newcastle", "Premier League", "England", 1, 80, 82, none),

		club("Leeds", "Championship", "England", 2, 70, 74, none),
		club("Sunderland", "Championship", "England", 2, 68, 71, none),
		club("Norwich", "Championship", "England", 2, 62, 70, none),
		club("Middlesbrough", "Championship", "England", 2, 60, 69, none),

		club("Bolton", "League One", "England", 3, 55, 62, none),
		club("Wrexham", "League One", "England", 3, 50, 60, none),

		club("Real Madrid", "La Liga", "Spain", 1, 99, 96, ucl),
		club("Barcelona", "La Liga", "Spain", 1, 97, 92, ucl),
		club("Atletico Madrid", "La Liga", "Spain", 1, 88, 87, ucl),
		club("Girona", "La Liga", "Spain", 1, 62, 80, ucl),
		club("Real Sociedad", "La Liga", "Spain", 1, 72, 79, uel),

		club("Bayern Munich", "Bundesliga", "Germany", 1, 97, 93, ucl),
		club("Leverkusen", "Bundesliga", "Germany", 1, 82, 90, ucl),
		club("Dortmund", "Bundesliga", "Germany", 1, 88, 86, ucl),
		club("RB Leipzig", "Bundesliga", "Germany", 1, 78, 85, ucl),

		club("Inter Milan", "Serie A", "Italy", 1, 90, 91, ucl),
		club("AC Milan", "Serie A", "Italy", 1, 88, 86, ucl),
		club("Juventus", "Serie A", "Italy", 1, 92, 85, ucl),
		club("Roma", "Serie A", "Italy", 1, 82, 81, uel),
		club("Atalanta", "Serie A", "Italy", 1, 76, 80, uel),

		club("PSG", "Ligue 1", "France", 1, 94, 92, ucl),
		club("Monaco", "Ligue 1", "France", 1, 78, 79, ucl),
		club("Lille", "Ligue 1", "France", 1, 75, 78, uel),
		club("Nice", "Ligue 1", "France", 1, 70, 75, uecl),
		club("Lyon", "Ligue 1", "France", 1, 82, 76, none),
	}
}
