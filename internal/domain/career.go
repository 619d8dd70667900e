package domain

import "time"

// Phase is where a career sits in the yearly cycle.
type Phase string

const (
	// PhasePreSeason is the summer window before a season starts.
	PhasePreSeason Phase = "pre-season"
	// PhaseMidSeason is the winter window between the two halves.
	PhaseMidSeason Phase = "mid-season"
	// PhaseRetired careers accept no more simulation.
	PhaseRetired Phase = "retired"
)

// HalfSnapshot is the first half of a season held over the winter window.
type HalfSnapshot struct {
	Stats    SeasonStats `json:"stats"`
	Events   []string    `json:"events"`
	Table    []LeagueRow `json:"leagueTable"`
	Position int         `json:"leaguePosition"`
}

// Career is one player's saved game.
type Career struct {
	ID     string `json:"id"`
	Player Player `json:"player"`
	Year   int    `json:"year"`
	Phase  Phase  `json:"phase"`

	MidSeason *HalfSnapshot `json:"midSeason,omitempty"`
	World     WorldTables   `json:"world,omitempty"`
	// Offers is nil until the current window's offers are drawn.
	Offers     []Offer `json:"offers"`
	ExtendLoan bool    `json:"extendLoan,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Retired reports whether the career has ended.
func (c Career) Retired() bool {
	return c.Phase == PhaseRetired
}

// HallOfFameEntry is a retired career with its headline numbers.
type HallOfFameEntry struct {
	CareerID    string  `json:"careerId"`
	RetiredYear int     `json:"retiredYear"`
	Seasons     int     `json:"seasons"`
	Apps        int     `json:"apps"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	PeakRating  float64 `json:"peakRating"`
	Trophies    int     `json:"trophies"`
	Awards      int     `json:"awards"`
	Player      Player  `json:"player"`
}

// NewHallOfFameEntry totals a player's history.
func NewHallOfFameEntry(careerID string, year int, p Player) HallOfFameEntry {
	e := HallOfFameEntry{
		CareerID:    careerID,
		RetiredYear: year,
		Seasons:     len(p.History),
		Trophies:    len(p.TrophyCabinet),
		Awards:      len(p.AwardsCabinet),
		Player:      p,
	}
	for _, h := range p.History {
		e.Apps += h.Stats.Total.Matches
		e.Goals += h.Stats.Total.Goals
		e.Assists += h.Stats.Total.Assists
		e.PeakRating = max(e.PeakRating, h.Stats.Total.Rating)
	}
	return e
}

// SameCareer reports whether two entries describe the same retirement.
// Older entries without an ID fall back to name and season count.
func (e HallOfFameEntry) SameCareer(other HallOfFameEntry) bool {
	if e.CareerID != "" && other.CareerID != "" {
		return e.CareerID == other.CareerID
	}
	return e.Player.Name == other.Player.Name && e.Seasons == other.Seasons
}
