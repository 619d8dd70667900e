package transfers

import (
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/market"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
	"github.com/preston-bernstein/football-career-sim/internal/roster"
)

// NewID generates offer identifiers.
var NewID = uuid.NewString

const (
	scoutedValueFloor = 500_000
	lowTierOfferCount = 3
	freeAgentWage     = 500
	minWage           = 300
	petroLeague       = "Saudi Pro League"
)

var pitches = []string{
	"We have been tracking your progress and believe you are ready for the first team.",
	"You are exactly the profile of player we are looking to rebuild around.",
	"We need reinforcement in your position immediately.",
	"Our scouts have identified you as a top prospect.",
	"We can offer you the game time you need to develop.",
	"We admire your style of play.",
	"Your recent form has caught our eye.",
}

// Offers builds the player's transfer window: scouted moves for valuable
// players and loan or fresh-start offers for those short of minutes.
func Offers(src rng.Source, clubs roster.Provider, p domain.Player) []domain.Offer {
	if p.Modifiers.NoTransfers && !p.CurrentClub.IsFreeAgent() {
		return nil
	}

	freeAgent := p.CurrentClub.IsFreeAgent()
	outOfContract := p.Contract.YearsLeft == 0
	role := market.ClassifyRole(p.CurrentAbility, p.CurrentClub.Strength)

	var offers []domain.Offer
	if freeAgent || outOfContract || p.IsSurplus || role == domain.RoleYouth || role == domain.RoleBackup {
		offers = append(offers, lowTierOffers(src, clubs, p, freeAgent || outOfContract || p.IsSurplus)...)
	}
	if freeAgent || outOfContract || p.MarketValue > scoutedValueFloor {
		offers = append(offers, Scouted(src, clubs, p)...)
	}
	return dedupe(offers)
}

// Scouted generates one to three transfer bids from clubs that rate the player.
func Scouted(src rng.Source, clubs roster.Provider, p domain.Player) []domain.Offer {
	effective := EffectiveAbility(p)
	target := TargetTier(effective)

	all := eligible(clubs.Clubs(), p)
	var candidates []domain.Club
	for _, c := range all {
		if abs(c.Tier-target) <= 1 &&
			float64(c.Strength) > float64(p.CurrentAbility-15) &&
			float64(c.Strength) < effective+20 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		for _, c := range all {
			if c.Tier == target {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		candidates = all
	}
	if len(candidates) == 0 {
		return nil
	}

	candidates = rng.Shuffle(src, candidates)
	n := min(src.Int(1, 3), len(candidates))

	offers := make([]domain.Offer, 0, n)
	for _, club := range candidates[:n] {
		multiplier := rng.Uniform(src, 0.8, 1.3)
		if club.League == petroLeague {
			multiplier = rng.Uniform(src, 3, 6)
		}
		wage := float64(baseWage(p, club)) * multiplier
		fee := 0
		if !p.CurrentClub.IsFreeAgent() {
			fee = int(math.Round(float64(p.MarketValue) * rng.Uniform(src, 0.9, 1.2)))
		}
		offers = append(offers, domain.Offer{
			ID:             NewID(),
			Type:           domain.OfferTransfer,
			Club:           club,
			Wage:           int(math.Round(wage)),
			Years:          src.Int(2, 5),
			TransferFee:    fee,
			Description:    rng.Pick(src, pitches),
			Negotiable:     true,
			PromisedRole:   market.ClassifyRole(p.CurrentAbility, club.Strength),
			YearlyWageRise: src.Int(0, 10),
		})
	}
	return offers
}

// EffectiveAbility is how scouts rate the player: ability nudged by form,
// plus credit for unrealised potential before 23.
func EffectiveAbility(p domain.Player) float64 {
	effective := float64(p.CurrentAbility) + float64(p.Form-50)/4
	if p.Age < 23 && p.PotentialAbility > p.CurrentAbility {
		effective += float64(p.PotentialAbility-p.CurrentAbility) * 0.4
	}
	return effective
}

// TargetTier is the league tier scouts shop the player into.
func TargetTier(effective float64) int {
	switch {
	case effective > 82:
		return 1
	case effective > 72:
		return 2
	case effective > 62:
		return 3
	case effective > 52:
		return 4
	default:
		return 5
	}
}

func baseWage(p domain.Player, club domain.Club) int {
	wage := max(minWage, int(math.Round(float64(p.MarketValue)*0.004)))
	if p.Age > 29 {
		shadow := math.Pow(float64(p.CurrentAbility), 3) * 18 * 1.2
		wage = max(wage, int(math.Round(shadow*0.0045)))
	}
	switch club.Tier {
	case 1:
		wage = max(wage, 5000)
	case 2:
		wage = max(wage, 2000)
	}
	return wage
}

func lowTierOffers(src rng.Source, clubs roster.Provider, p domain.Player, permanent bool) []domain.Offer {
	all := eligible(clubs.Clubs(), p)
	var pool []domain.Club
	if p.CurrentClub.IsFreeAgent() {
		for _, c := range all {
			if c.Tier >= 3 {
				pool = append(pool, c)
			}
		}
	} else {
		target := min(p.CurrentClub.Tier+1, 4)
		for _, c := range all {
			if c.Tier == target {
				pool = append(pool, c)
			}
		}
	}
	if len(pool) == 0 {
		return nil
	}

	pool = rng.Shuffle(src, pool)
	n := min(lowTierOfferCount, len(pool))
	offers := make([]domain.Offer, 0, n)
	for _, club := range pool[:n] {
		o := domain.Offer{
			ID:           NewID(),
			Type:         domain.OfferLoan,
			Club:         club,
			Wage:         p.Contract.Wage,
			Years:        1,
			Description:  "We can offer you the game time you need.",
			PromisedRole: market.ClassifyRole(p.CurrentAbility, club.Strength),
		}
		if permanent {
			o.Type = domain.OfferTransfer
			o.Years = 2
			o.Negotiable = true
			o.Description = "We can give you a fresh start."
			if p.CurrentClub.IsFreeAgent() {
				o.Wage = freeAgentWage
			}
		}
		offers = append(offers, o)
	}
	return offers
}

// eligible drops the player's own clubs and any the player refuses to join.
func eligible(clubs []domain.Club, p domain.Player) []domain.Club {
	out := make([]domain.Club, 0, len(clubs))
	for _, c := range clubs {
		if c.Name == p.CurrentClub.Name {
			continue
		}
		if p.ParentClub != nil && c.Name == p.ParentClub.Name {
			continue
		}
		if slices.Contains(p.Modifiers.DislikedTeams, c.Name) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func dedupe(offers []domain.Offer) []domain.Offer {
	seen := make(map[string]bool, len(offers))
	out := offers[:0]
	for _, o := range offers {
		if seen[o.Club.Name] {
			continue
		}
		seen[o.Club.Name] = true
		out = append(out, o)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
