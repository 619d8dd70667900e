package transfers

import (
	"errors"
	"fmt"
	"math"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/market"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
)

// ErrRenewalRefused is returned when the club will not talk about a new deal.
var ErrRenewalRefused = errors.New("club refuses to renew")

// ErrLoanNotAllowed is returned for loans the player's contract cannot support.
var ErrLoanNotAllowed = errors.New("loan not allowed")

// Renewal proposes a new deal with the contract-holding club.
func Renewal(p domain.Player) (domain.Offer, error) {
	if p.CurrentClub.IsFreeAgent() {
		return domain.Offer{}, fmt.Errorf("%w: player is unattached", ErrRenewalRefused)
	}
	if p.Contract.YearsLeft >= 4 {
		return domain.Offer{}, fmt.Errorf("%w: long-term deal signed recently", ErrRenewalRefused)
	}
	if p.IsSurplus {
		return domain.Offer{}, fmt.Errorf("%w: player is surplus to requirements", ErrRenewalRefused)
	}

	club := p.CurrentClub
	if p.ParentClub != nil {
		club = *p.ParentClub
	}
	return domain.Offer{
		ID:             "renewal",
		Type:           domain.OfferRenewal,
		Club:           club,
		Wage:           int(math.Round(float64(p.Contract.Wage) * 1.1)),
		Years:          3,
		Description:    "The club wants to extend your stay.",
		Negotiable:     true,
		PromisedRole:   market.ClassifyRole(p.CurrentAbility, club.Strength),
		YearlyWageRise: p.Contract.YearlyWageRise,
	}, nil
}

// LoanExtension offers another season at the loan club. The parent
// contract has to outlast the current season.
func LoanExtension(p domain.Player) (domain.Offer, bool) {
	if !p.OnLoan() || p.Contract.YearsLeft <= 1 {
		return domain.Offer{}, false
	}
	return domain.Offer{
		ID:           "extend-loan",
		Type:         domain.OfferExtension,
		Club:         p.CurrentClub,
		Wage:         p.Contract.Wage,
		Years:        1,
		Description:  "Extend loan for another season",
		PromisedRole: market.ClassifyRole(p.CurrentAbility, p.CurrentClub.Strength),
	}, true
}

// Accept applies an offer to the player as of year and returns the updated player.
func Accept(p domain.Player, o domain.Offer, year int) (domain.Player, error) {
	next := p
	switch o.Type {
	case domain.OfferTransfer:
		next.CurrentClub = o.Club
		next.ParentClub = nil
		next.IsSurplus = false
		next.Contract = domain.Contract{
			Wage:           o.Wage,
			YearsLeft:      o.Years,
			ExpiryYear:     year + o.Years,
			Type:           domain.ContractProfessional,
			PromisedRole:   o.PromisedRole,
			YearlyWageRise: o.YearlyWageRise,
		}
	case domain.OfferLoan:
		if p.CurrentClub.IsFreeAgent() || p.Contract.YearsLeft == 0 {
			return p, ErrLoanNotAllowed
		}
		parent := p.CurrentClub
		if p.ParentClub != nil {
			parent = *p.ParentClub
		}
		next.ParentClub = &parent
		next.CurrentClub = o.Club
		next.IsSurplus = false
		next.Contract.PromisedRole = o.PromisedRole
	case domain.OfferRenewal:
		next.Contract = domain.Contract{
			Wage:           o.Wage,
			YearsLeft:      o.Years,
			ExpiryYear:     year + o.Years,
			Type:           domain.ContractProfessional,
			PromisedRole:   o.PromisedRole,
			YearlyWageRise: o.YearlyWageRise,
		}
		next.IsSurplus = false
	case domain.OfferExtension:
		if !p.OnLoan() {
			return p, ErrLoanNotAllowed
		}
	default:
		return p, fmt.Errorf("unknown offer type %q", o.Type)
	}

	value, err := market.Value(next.CurrentAbility, next.Age, next.PotentialAbility, next.Position, next.Contract.YearsLeft)
	if err != nil {
		return p, fmt.Errorf("accept offer: %w", err)
	}
	next.MarketValue = value
	return next, nil
}

// Release tears up the player's contract and leaves them unattached.
func Release(p domain.Player) domain.Player {
	next := p
	next.CurrentClub = roster.FreeAgent()
	next.ParentClub = nil
	next.IsSurplus = false
	next.Contract.YearsLeft = 0
	next.Contract.Wage = 0
	next.Contract.ExpiryYear = 0
	next.Contract.Type = domain.ContractProfessional
	next.Contract.PromisedRole = ""
	if value, err := market.Value(next.CurrentAbility, next.Age, next.PotentialAbility, next.Position, 0); err == nil {
		next.MarketValue = value
	}
	return next
}
