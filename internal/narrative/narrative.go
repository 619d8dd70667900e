// Package narrative writes the one-line season summaries shown in a career's history.
package narrative

import (
	"fmt"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
)

// Summarize picks a summary for a season at club. The first matching rung wins:
// too few games, rating bands, goals, assists, trophies, then rating again.
func Summarize(src rng.Source, total domain.StatSet, trophies []string, club string) string {
	switch {
	case total.Matches < 5:
		return rng.Pick(src, []string{
			fmt.Sprintf("A quiet season at %s with limited opportunities.", club),
			fmt.Sprintf("Struggled to break into the first team at %s.", club),
			fmt.Sprintf("Spent most of the season on the bench at %s.", club),
		})
	case total.Rating >= 8.0:
		return rng.Pick(src, []string{
			fmt.Sprintf("A sensational campaign for %s, dominating the league with a %.2f rating!", club, total.Rating),
			fmt.Sprintf("World-class performances throughout the season at %s.", club),
			fmt.Sprintf("The fans at %s are calling you a legend after this season.", club),
		})
	case total.Rating >= 7.5:
		return rng.Pick(src, []string{
			fmt.Sprintf("An excellent season at %s, establishing yourself as a key player.", club),
			fmt.Sprintf("Consistently high-level performances for %s.", club),
			fmt.Sprintf("A breakout year at %s where you showed your true quality.", club),
		})
	case total.Goals > 20:
		return fmt.Sprintf("A goal-scoring masterclass, netting %d times for %s.", total.Goals, club)
	case total.Assists > 15:
		return fmt.Sprintf("The creative engine of %s, providing %d assists this season.", club, total.Assists)
	case len(trophies) > 0:
		return fmt.Sprintf("A successful, trophy-winning season at %s.", club)
	case total.Rating >= 7.0:
		return fmt.Sprintf("A solid, dependable season of development at %s.", club)
	case total.Rating >= 6.0:
		return fmt.Sprintf("A mixed season at %s with some ups and downs.", club)
	default:
		return fmt.Sprintf("A difficult season at %s, struggling to find consistent form.", club)
	}
}
