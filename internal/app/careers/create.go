package careers

import (
	"context"
	"fmt"
	"strings"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/league"
	"github.com/preston-bernstein/football-career-sim/internal/logging"
	"github.com/preston-bernstein/football-career-sim/internal/market"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
)

const (
	minStartAge       = 14
	maxStartAge       = 40
	homeClubChance    = 0.9
	wonderkidRoll     = 0.95
	youthWage         = 100
	youthContractTerm = 3
)

// CreateRequest describes a new player. Zero abilities and proneness are
// rolled; an empty StartingClub picks one near home.
type CreateRequest struct {
	Name             string           `json:"name"`
	Nationality      string           `json:"nationality"`
	Age              int              `json:"age"`
	Position         domain.Position  `json:"position"`
	StartingAbility  int              `json:"startingAbility,omitempty"`
	PotentialAbility int              `json:"potentialAbility,omitempty"`
	InjuryProneness  int              `json:"injuryProneness,omitempty"`
	StartingClub     string           `json:"startingClub,omitempty"`
	Modifiers        domain.Modifiers `json:"modifiers"`
}

func (r CreateRequest) validate() error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	case strings.TrimSpace(r.Nationality) == "":
		return fmt.Errorf("%w: nationality is required", ErrInvalidRequest)
	case r.Age < minStartAge || r.Age > maxStartAge:
		return fmt.Errorf("%w: age must be between %d and %d", ErrInvalidRequest, minStartAge, maxStartAge)
	}
	switch r.Position {
	case domain.PositionGK, domain.PositionDEF, domain.PositionMID, domain.PositionFWD:
	default:
		return fmt.Errorf("%w: unknown position %q", ErrInvalidRequest, r.Position)
	}
	for field, v := range map[string]int{
		"startingAbility":  r.StartingAbility,
		"potentialAbility": r.PotentialAbility,
		"injuryProneness":  r.InjuryProneness,
	} {
		if v > 99 {
			return fmt.Errorf("%w: %s must be at most 99", ErrInvalidRequest, field)
		}
	}
	return nil
}

// Create rolls a new player on a youth deal and opens their first pre-season.
func (s *Service) Create(ctx context.Context, req CreateRequest) (domain.Career, error) {
	if err := req.validate(); err != nil {
		return domain.Career{}, err
	}

	id := s.newID()
	src := s.source(id, 0)

	var club domain.Club
	if req.StartingClub != "" {
		found, ok := s.clubs.Club(req.StartingClub)
		if !ok {
			return domain.Career{}, fmt.Errorf("%w: unknown club %q", ErrInvalidRequest, req.StartingClub)
		}
		club = found
	} else {
		picked, ok := s.initialClub(src, req.Nationality)
		if !ok {
			return domain.Career{}, fmt.Errorf("%w: no clubs available", ErrInvalidRequest)
		}
		club = picked
	}

	ability := req.StartingAbility
	if ability <= 0 {
		ability = src.Int(35, 55)
		if src.Float64() > wonderkidRoll {
			ability += src.Int(5, 15)
		}
	}
	potential := req.PotentialAbility
	if potential <= 0 {
		potential = min(99, max(ability+20, ability+src.Int(15, 40)))
	}
	fitness := src.Int(50, 99)
	prone := req.InjuryProneness
	if prone <= 0 {
		prone = src.Int(1, 15)
	}

	value, err := market.Value(ability, req.Age, potential, req.Position, youthContractTerm)
	if err != nil {
		return domain.Career{}, fmt.Errorf("create career: %w", err)
	}

	player := domain.Player{
		Name:             strings.TrimSpace(req.Name),
		Nationality:      strings.TrimSpace(req.Nationality),
		Age:              req.Age,
		Position:         req.Position,
		CurrentAbility:   ability,
		PotentialAbility: potential,
		NaturalFitness:   fitness,
		InjuryProne:      prone,
		Form:             50,
		CurrentClub:      club,
		Contract: domain.Contract{
			Wage:         youthWage,
			YearsLeft:    youthContractTerm,
			ExpiryYear:   s.startYear + youthContractTerm,
			Type:         domain.ContractYouth,
			PromisedRole: domain.RoleYouth,
		},
		MarketValue:   value,
		History:       []domain.SeasonRecord{},
		TrophyCabinet: []string{},
		AwardsCabinet: []string{},
		Modifiers:     req.Modifiers,
	}

	world, err := league.World(src, s.clubs, 0, "", nil)
	if err != nil {
		return domain.Career{}, fmt.Errorf("create career: %w", err)
	}

	now := s.now()
	c := domain.Career{
		ID:        id,
		Player:    player,
		Year:      s.startYear,
		Phase:     domain.PhasePreSeason,
		World:     world,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.persist(ctx, c); err != nil {
		return domain.Career{}, err
	}

	logging.Info(logging.FromContext(ctx, s.logger), "career created",
		logging.FieldCareerID, id,
		logging.FieldClub, club.Name,
		logging.FieldSeasonYear, c.Year,
	)
	return c, nil
}

// initialClub favours the player's home nation when it has clubs.
func (s *Service) initialClub(src rng.Source, nationality string) (domain.Club, bool) {
	all := s.clubs.Clubs()
	if len(all) == 0 {
		return domain.Club{}, false
	}
	pool := all
	home := make([]domain.Club, 0)
	for _, c := range all {
		if c.Country == nationality {
			home = append(home, c)
		}
	}
	if len(home) > 0 && rng.Chance(src, homeClubChance) {
		pool = home
	}
	return rng.Pick(src, pool), true
}
