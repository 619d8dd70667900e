package growth

import (
	"math"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
)

// Form scores a season's momentum on 1-99 from rating and position output.
// A season without matches is neutral.
func Form(s domain.StatSet, position domain.Position) int {
	if s.Matches == 0 {
		return 50
	}

	m := float64(s.Matches)
	goals := float64(s.Goals) / m
	assists := float64(s.Assists) / m
	cleanSheets := float64(s.CleanSheets) / m

	form := 50 + (s.Rating-6.5)*25

	switch position {
	case domain.PositionFWD:
		switch {
		case goals > 0.8:
			form += 10
		case goals > 0.5:
			form += 5
		case goals < 0.2:
			form -= 5
		}
	case domain.PositionMID:
		switch {
		case assists > 0.4:
			form += 10
		case assists > 0.2:
			form += 5
		}
		if goals > 0.25 {
			form += 5
		}
	case domain.PositionDEF:
		if cleanSheets > 0.4 {
			form += 8
		}
		if goals > 0.1 {
			form += 5
		}
	case domain.PositionGK:
		if cleanSheets > 0.45 {
			form += 10
		}
	}

	form += float64(s.Motm) / m * 20
	return min(max(int(math.Round(form)), 1), 99)
}
