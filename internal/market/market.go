package market

import (
	"math"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
)

// Value floor and display granularity.
const (
	MinValue    = 25_000
	ValueStep   = 10_000
	SeasonGames = 45
)

// ClassifyRole buckets the ability-vs-club-strength gap into a squad role.
func ClassifyRole(ability, clubStrength int) domain.Role {
	diff := ability - clubStrength
	switch {
	case diff >= 5:
		return domain.RoleStar
	case diff >= -2:
		return domain.RoleImportant
	case diff >= -8:
		return domain.RoleRegular
	case diff >= -15:
		return domain.RoleRotation
	case diff >= -25:
		return domain.RoleBackup
	default:
		return domain.RoleYouth
	}
}

// EstimatedAppearances is the expected out-of-45 appearance count for a role.
func EstimatedAppearances(role domain.Role) int {
	switch role {
	case domain.RoleStar:
		return 45
	case domain.RoleImportant:
		return 38
	case domain.RoleRegular:
		return 30
	case domain.RoleRotation:
		return 18
	case domain.RoleBackup:
		return 8
	default:
		return 0
	}
}

// Value prices a player from ability, age, potential and contract length.
// Position is accepted for parity with offer generation but does not move the price.
func Value(ability, age, potential int, position domain.Position, contractYears int) (int, error) {
	_ = position
	if ability < 0 {
		return 0, domain.NewPreconditionError("market value", "ability", float64(ability), "must be non-negative")
	}
	if potential < 0 {
		return 0, domain.NewPreconditionError("market value", "potential", float64(potential), "must be non-negative")
	}
	if age < 0 {
		return 0, domain.NewPreconditionError("market value", "age", float64(age), "must be non-negative")
	}
	if contractYears < 0 {
		return 0, domain.NewPreconditionError("market value", "contractYears", float64(contractYears), "must be non-negative")
	}

	base := math.Pow(float64(ability), 3) * 18
	value := base * ageMultiplier(ability, age, potential) * contractMultiplier(contractYears)
	value = math.Round(value)
	if value < MinValue {
		value = MinValue
	}
	return int(math.Round(value/ValueStep)) * ValueStep, nil
}

func ageMultiplier(ability, age, potential int) float64 {
	switch {
	case age < 22:
		return 1.5 + float64(potential-ability)/40
	case age > 30:
		return 0.8 - float64(age-30)*0.15
	default:
		return 1.0
	}
}

func contractMultiplier(years int) float64 {
	switch {
	case years <= 1:
		return 0.6
	case years == 2:
		return 0.85
	case years == 3:
		return 1.0
	case years == 4:
		return 1.15
	default:
		return 1.3
	}
}

// Stars converts an ability into the half-star scouting scale.
func Stars(ability int) float64 {
	switch {
	case ability < 40:
		return 0.5
	case ability < 50:
		return 1
	case ability < 60:
		return 1.5
	case ability < 70:
		return 2
	case ability < 75:
		return 2.5
	case ability < 80:
		return 3
	case ability < 85:
		return 3.5
	case ability < 90:
		return 4
	case ability < 95:
		return 4.5
	default:
		return 5
	}
}

// IsSurplus reports whether the club would rather move the player on.
// last may be nil before the first season.
func IsSurplus(p domain.Player, last *domain.SeasonStats) bool {
	if p.CurrentClub.IsFreeAgent() {
		return false
	}
	if p.Contract.Type == domain.ContractProfessional {
		diff := p.CurrentClub.Strength - p.CurrentAbility
		if diff > 15 && p.Age > 21 {
			return true
		}
		if diff > 25 {
			return true
		}
	}
	if last != nil && last.Total.Matches > 10 && last.Total.Rating < 5.8 {
		return true
	}
	return false
}

// ManagerMessage is the pre-season line the manager gives for a role.
func ManagerMessage(role domain.Role) string {
	switch role {
	case domain.RoleStar:
		return "You are the star of this team. Lead us."
	case domain.RoleImportant:
		return "You're a key part of my plans."
	case domain.RoleRegular:
		return "Expect plenty of game time if you perform."
	case domain.RoleRotation:
		return "You'll need to fight for your spot."
	case domain.RoleBackup:
		return "You're a backup option for now."
	default:
		return "You're not ready for senior football yet. Stick to the U21s."
	}
}
