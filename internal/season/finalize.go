package season

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/preston-bernstein/football-career-sim/internal/awards"
	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/growth"
	"github.com/preston-bernstein/football-career-sim/internal/international"
	"github.com/preston-bernstein/football-career-sim/internal/league"
	"github.com/preston-bernstein/football-career-sim/internal/market"
	"github.com/preston-bernstein/football-career-sim/internal/narrative"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
)

// RetirementFatigue is the body load past which a career is over.
const RetirementFatigue = 110

// ForcedRetirement reports whether the player's body can no longer cope.
func ForcedRetirement(p domain.Player) bool {
	return p.Fatigue > RetirementFatigue
}

// World builds every league's table for the end of a half, with the
// player's own league replaced by the table they actually played in.
func (e *Engine) World(src rng.Source, p domain.Player, half Half, perf Performance) (domain.WorldTables, error) {
	games := league.FullSeasonGames
	if half.MidSeason() {
		games = league.MidSeasonGames
	}
	return league.World(src, e.Clubs, games, p.CurrentClub.League, perf.Table)
}

// Closing is everything needed to close out a season.
type Closing struct {
	Player domain.Player
	Year   int
	// First is the mid-season snapshot, nil when the season was played in one call.
	First *domain.SeasonStats
	Final Performance
	World domain.WorldTables
	// ExtendLoan keeps a loanee at the loan club for another season.
	ExtendLoan bool
}

// Result is the player after the close season plus the history entry written.
type Result struct {
	Player        domain.Player         `json:"player"`
	Record        domain.SeasonRecord   `json:"record"`
	Awards        []string              `json:"awards"`
	Growth        growth.Result         `json:"growth"`
	International international.Outcome `json:"international"`
	Club          league.Outcome        `json:"clubOutcome"`
}

// Finalize merges the halves, plays the summer internationals, hands out
// awards, develops the player and rolls the contract and club forward a year.
func (e *Engine) Finalize(src rng.Source, c Closing) (Result, error) {
	p := c.Player
	if err := p.Validate(); err != nil {
		return Result{}, fmt.Errorf("finalize season: %w", err)
	}

	stats := c.Final.Stats
	if c.First != nil {
		stats = MergeHalves(*c.First, c.Final.Stats)
	}
	stats.InternationalBreakdown = maps.Clone(stats.InternationalBreakdown)
	if stats.InternationalBreakdown == nil {
		stats.InternationalBreakdown = map[string]domain.StatSet{}
	}
	trophies := slices.Clone(nonNil(c.Final.Trophies))
	events := slices.Clone(nonNil(c.Final.Events))

	intl := international.Play(src, p, c.Year)
	if intl.Played {
		key := intl.Tournament.Key()
		stats.International = domain.Merge(stats.International, intl.Stats)
		stats.Total = domain.Merge(stats.Total, intl.Stats)
		stats.InternationalBreakdown[key] = domain.Merge(stats.InternationalBreakdown[key], intl.Stats)
		trophies = append(trophies, intl.Trophies...)
		events = append(events, intl.Events...)
	}

	won := awards.Calculate(src, awards.Input{ClubTier: p.CurrentClub.Tier, Stats: stats, Trophies: trophies})
	stats.Awards = nonNil(won)

	grown, err := growth.Apply(src, growth.Input{
		Player:   p,
		Stats:    domain.MergeAll(stats.Total, stats.Youth),
		Level:    stats.Level,
		Events:   events,
		Injuries: stats.Injuries,
	})
	if err != nil {
		return Result{}, fmt.Errorf("finalize season: %w", err)
	}

	record := domain.SeasonRecord{
		Year:           c.Year,
		Age:            p.Age,
		Club:           p.CurrentClub,
		IsLoan:         p.OnLoan(),
		Stats:          stats,
		Trophies:       trophies,
		Events:         events,
		LeaguePosition: c.Final.Position,
		WorldState:     c.World,
		Narrative:      narrative.Summarize(src, stats.Total, trophies, p.CurrentClub.Name),
		GrowthLog:      grown.Log,
	}

	next := p
	next.Age++
	next.CurrentAbility = grown.Ability
	next.Fatigue = grown.Fatigue
	next.Form = growth.Form(stats.Total, p.Position)
	next.Contract = rollContract(p.Contract, c.Year)

	outcome := league.OutcomeStayed
	if p.OnLoan() && !c.ExtendLoan {
		next.CurrentClub = *p.ParentClub
		next.ParentClub = nil
	} else {
		next.CurrentClub, outcome = league.Progression(src, p.CurrentClub, c.Final.Position)
	}

	value, err := market.Value(next.CurrentAbility, next.Age, next.PotentialAbility, next.Position, next.Contract.YearsLeft)
	if err != nil {
		return Result{}, fmt.Errorf("finalize season: %w", err)
	}
	next.MarketValue = value
	next.IsSurplus = market.IsSurplus(next, &stats)

	next.History = append(slices.Clone(p.History), record)
	next.TrophyCabinet = append(slices.Clone(p.TrophyCabinet), trophies...)
	next.AwardsCabinet = append(slices.Clone(p.AwardsCabinet), won...)

	return Result{
		Player:        next,
		Record:        record,
		Awards:        stats.Awards,
		Growth:        grown,
		International: intl,
		Club:          outcome,
	}, nil
}

// MergeHalves combines the mid-season snapshot with the second half.
// Counting buckets are merged, injuries concatenated, and the second
// half's statuses and level win.
func MergeHalves(first, second domain.SeasonStats) domain.SeasonStats {
	out := second
	out.Total = domain.Merge(first.Total, second.Total)
	out.Youth = domain.Merge(first.Youth, second.Youth)
	out.League = domain.Merge(first.League, second.League)
	out.Cup = domain.Merge(first.Cup, second.Cup)
	out.Europe = domain.Merge(first.Europe, second.Europe)
	out.International = domain.Merge(first.International, second.International)

	out.InternationalBreakdown = maps.Clone(first.InternationalBreakdown)
	if out.InternationalBreakdown == nil {
		out.InternationalBreakdown = map[string]domain.StatSet{}
	}
	for key, s := range second.InternationalBreakdown {
		out.InternationalBreakdown[key] = domain.Merge(out.InternationalBreakdown[key], s)
	}

	out.Injuries = append(slices.Clone(nonNil(first.Injuries)), second.Injuries...)
	out.WeeksOut = first.WeeksOut + second.WeeksOut
	out.Awards = []string{}
	return out
}

// rollContract ages the deal by a year and applies the annual wage rise.
func rollContract(c domain.Contract, year int) domain.Contract {
	next := c
	next.YearsLeft = max(0, c.YearsLeft-1)
	if c.YearlyWageRise > 0 {
		next.Wage = int(math.Round(float64(c.Wage) * (1 + float64(c.YearlyWageRise)/100)))
	}
	next.ExpiryYear = 0
	if next.YearsLeft > 0 {
		next.ExpiryYear = year + 1 + next.YearsLeft
	}
	return next
}
