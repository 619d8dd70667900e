// Package season plays a player's half or full season and closes it out.
package season

import (
	"fmt"
	"math"

	"github.com/preston-bernstein/football-career-sim/internal/competition"
	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/league"
	"github.com/preston-bernstein/football-career-sim/internal/market"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
	"github.com/preston-bernstein/football-career-sim/internal/statgen"
)

// Half selects which slice of the season is simulated.
type Half int

const (
	// FirstHalf runs to the mid-season window; cup runs pause at the quarter-finals.
	FirstHalf Half = iota + 1
	// SecondHalf finishes a season started with FirstHalf.
	SecondHalf
	// FullSeason plays a whole season in one call.
	FullSeason
)

func (h Half) String() string {
	switch h {
	case FirstHalf:
		return "first-half"
	case SecondHalf:
		return "second-half"
	case FullSeason:
		return "full-season"
	default:
		return fmt.Sprintf("half(%d)", int(h))
	}
}

// Portion is the share of a season's fixtures the half covers.
func (h Half) Portion() float64 {
	if h == FullSeason {
		return 1.0
	}
	return 0.5
}

// MidSeason reports whether the half ends at the winter window.
func (h Half) MidSeason() bool {
	return h == FirstHalf
}

func (h Half) valid() bool {
	return h >= FirstHalf && h <= FullSeason
}

const (
	freeAgentEvent    = "Spent time as Free Agent searching for clubs"
	breakthroughEvent = "Made appearances for Senior Team"
	surplusEvent      = "Frozen out of squad"
	aclEvent          = "Serious Injury: ACL Tear"
	championsEvent    = "Qualified for Champions League"
	lifestyleChance   = 0.2
	breakthroughRoll  = 0.6
	availabilityWeeks = 24
	halfInjuryCap     = 12
	youthGap          = 20
	seniorGames       = 38
	youthGames        = 20
	fallbackPosition  = 10
)

// Engine simulates seasons against a club directory.
type Engine struct {
	Clubs roster.Provider
}

// NewEngine returns an Engine over clubs.
func NewEngine(clubs roster.Provider) *Engine {
	return &Engine{Clubs: clubs}
}

// Request describes one call into the season simulator.
type Request struct {
	Player domain.Player
	Half   Half
	// Previous carries the first half's stats into SecondHalf so cup and
	// continental runs continue where they paused.
	Previous *domain.SeasonStats
}

// Performance is what a half produced.
type Performance struct {
	Stats    domain.SeasonStats `json:"stats"`
	Trophies []string           `json:"trophies"`
	Events   []string           `json:"events"`
	Table    []domain.LeagueRow `json:"leagueTable"`
	Position int                `json:"leaguePosition"`
}

// Simulate plays the requested half for the player. Only invalid input
// fails; every other edge case degrades to zero or empty results.
func (e *Engine) Simulate(src rng.Source, req Request) (Performance, error) {
	p := req.Player
	if err := p.Validate(); err != nil {
		return Performance{}, fmt.Errorf("simulate season: %w", err)
	}
	if !req.Half.valid() {
		return Performance{}, domain.NewPreconditionError("simulate season", "half", float64(req.Half), "unknown half")
	}
	if p.CurrentClub.IsFreeAgent() {
		return freeAgentPerformance(), nil
	}

	var (
		trophies  []string
		events    []string
		injuries  []string
		weeksOut  int
		club      = p.CurrentClub
		midSeason = req.Half.MidSeason()
		portion   = req.Half.Portion()
	)

	games := league.FullSeasonGames
	if midSeason {
		games = league.MidSeasonGames
	}
	table, err := league.ForClub(src, e.Clubs, club, games)
	if err != nil {
		return Performance{}, fmt.Errorf("simulate season: %w", err)
	}
	position := league.PlayerPosition(table)
	if position == 0 {
		position = fallbackPosition
	}

	if !midSeason {
		if position == 1 {
			trophies = append(trophies, club.League+" Winner")
		} else if position <= 4 && club.Tier == 1 {
			events = append(events, championsEvent)
		}
	}

	level, seniorRegular := classifyLevel(p)
	role := p.Contract.PromisedRole
	if role == "" {
		role = market.ClassifyRole(p.CurrentAbility, club.Strength)
	}

	var seniorRatio, youthRatio float64
	if seniorRegular {
		seniorRatio = float64(market.EstimatedAppearances(role)) / market.SeasonGames
	} else {
		youthRatio = 0.8
		if p.CurrentAbility > club.Strength-15 && src.Float64() > breakthroughRoll {
			seniorRatio = rng.Uniform(src, 0.1, 0.25)
			events = append(events, breakthroughEvent)
		}
	}
	if p.IsSurplus {
		seniorRatio = 0.02
		youthRatio = 0.5
		events = append(events, surplusEvent)
	}

	if !p.Modifiers.InjuriesOff {
		if injury, ok := rollInjury(src, p); ok {
			weeksOut = sideline(injury, portion)
			injuries = append(injuries, injury.Description)
			if injury == domain.InjuryACL {
				events = append(events, aclEvent)
			}
		}
	}

	available := float64(max(0, availabilityWeeks-weeksOut)) / availabilityWeeks
	base := youthGames
	if seniorRegular {
		base = seniorGames
	}
	leagueGames := int(math.Ceil(float64(base) * portion * available))
	seniorApps := int(math.Floor(float64(leagueGames) * seniorRatio))
	youthApps := int(math.Floor(float64(leagueGames) * youthRatio))

	ability := float64(p.CurrentAbility) * performanceModifier(p.Fatigue)

	leagueSenior := statgen.Generate(src, seniorApps, ability, p.Position, club.Strength)
	leagueYouth := statgen.Generate(src, youthApps, ability, p.Position, club.Strength-youthGap)

	var prevCup, prevEurope domain.Progress
	if req.Previous != nil {
		prevCup, prevEurope = req.Previous.CupProgress, req.Previous.EuropeProgress
	}

	cup := competition.DomesticCup
	cupProgress := cup.Advance(src, startProgress(prevCup, cup), club.Strength, midSeason)
	cupGames := 0
	if seniorRegular && !prevCup.Terminal() {
		cupGames = src.Int(1, 4)
	}
	cupStats := statgen.Generate(src, cupGames, ability, p.Position, club.Strength)

	europe := competition.Continental(club.ContinentalTier)
	europeProgress := domain.Progress{Stage: domain.StageNotQualified}
	if club.ContinentalTier != domain.ContinentalNone {
		europeProgress = europe.Advance(src, startProgress(prevEurope, europe), club.Strength, midSeason)
	}
	europeGames := 0
	if seniorRegular && europeProgress.Stage != domain.StageNotQualified && !prevEurope.Terminal() {
		europeGames = src.Int(2, 6)
	}
	europeStats := statgen.Generate(src, europeGames, ability, p.Position, club.Strength)

	if !midSeason {
		if cupProgress.Stage == domain.StageWinner {
			trophies = append(trophies, cup.Trophy())
		}
		if europeProgress.Stage == domain.StageWinner {
			trophies = append(trophies, europe.Trophy())
		}
		if p.Modifiers.RandomLifeEvents && rng.Chance(src, lifestyleChance) {
			events = append(events, rng.Pick(src, domain.LifestyleEvents))
		}
	}

	stats := domain.SeasonStats{
		Total:                  domain.MergeAll(leagueSenior, cupStats, europeStats),
		Youth:                  leagueYouth,
		League:                 leagueSenior,
		Cup:                    cupStats,
		Europe:                 europeStats,
		InternationalBreakdown: map[string]domain.StatSet{},
		Level:                  level,
		Injuries:               nonNil(injuries),
		WeeksOut:               weeksOut,
		CupStatus:              cup.Label(cupProgress),
		EuropeStatus:           europe.Label(europeProgress),
		EuropeCompetition:      europe.Name,
		CupProgress:            cupProgress,
		EuropeProgress:         europeProgress,
		Awards:                 []string{},
	}

	return Performance{
		Stats:    stats,
		Trophies: nonNil(trophies),
		Events:   nonNil(events),
		Table:    table,
		Position: position,
	}, nil
}

// classifyLevel places the player in a squad and reports whether they are
// a senior regular.
func classifyLevel(p domain.Player) (domain.Level, bool) {
	role := market.ClassifyRole(p.CurrentAbility, p.CurrentClub.Strength)
	switch {
	case p.Contract.Type == domain.ContractYouth && p.Age < 18 && p.CurrentAbility < p.CurrentClub.Strength-10:
		return domain.LevelU18, false
	case p.Age < 21 && role == domain.RoleYouth:
		return domain.LevelU21, false
	case p.Modifiers.NoStartsUnder21 && p.Age < 21 && !p.OnLoan():
		return domain.LevelU21, false
	case role == domain.RoleYouth:
		return domain.LevelReserves, false
	default:
		return domain.LevelSenior, true
	}
}

// rollInjury draws against a risk out of 1000 that climbs with body load.
func rollInjury(src rng.Source, p domain.Player) (domain.Injury, bool) {
	risk := float64(p.InjuryProne)*0.5 + float64(p.Fatigue)*0.8
	if p.Fatigue > 85 {
		risk *= 1.5
	}
	if src.Float64()*1000 >= risk {
		return domain.Injury{}, false
	}
	switch severity := src.Float64(); {
	case severity > 0.92:
		return domain.InjuryACL, true
	case severity > 0.8:
		return domain.InjuryBrokenFoot, true
	case severity > 0.5:
		return domain.InjuryHamstring, true
	default:
		return domain.InjuryAnkleSprain, true
	}
}

// sideline is the weeks an injury keeps the player out of this period.
// A half season can lose at most halfInjuryCap weeks.
func sideline(injury domain.Injury, portion float64) int {
	if portion < 0.8 {
		return min(injury.Weeks, halfInjuryCap)
	}
	return injury.Weeks
}

func performanceModifier(fatigue int) float64 {
	switch {
	case fatigue > 85:
		return 0.80
	case fatigue > 60:
		return 0.95
	default:
		return 1.0
	}
}

// startProgress picks up a paused run or enters the bracket fresh.
func startProgress(prev domain.Progress, b competition.Bracket) domain.Progress {
	if prev.Stage == "" {
		return b.Enter()
	}
	return prev
}

func freeAgentPerformance() Performance {
	return Performance{
		Stats: domain.SeasonStats{
			InternationalBreakdown: map[string]domain.StatSet{},
			Level:                  domain.LevelFreeAgent,
			Injuries:               []string{},
			CupStatus:              "N/A",
			EuropeStatus:           "N/A",
			Awards:                 []string{},
		},
		Trophies: []string{},
		Events:   []string{freeAgentEvent},
		Table:    []domain.LeagueRow{},
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
