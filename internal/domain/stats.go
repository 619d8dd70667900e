package domain

import "math"

// StatSet is one competition bucket's output over one time window.
type StatSet struct {
	Matches     int     `json:"matches"`
	Starts      int     `json:"starts"`
	Minutes     int     `json:"minutes"`
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	CleanSheets int     `json:"cleanSheets"`
	Rating      float64 `json:"rating"`
	Motm        int     `json:"motm"`
}

// IsZero reports whether no matches were played.
func (s StatSet) IsZero() bool {
	return s.Matches == 0
}

// Merge combines two buckets. Counts are summed; rating is the
// matches-weighted mean, and a zero-match side carries no weight.
func Merge(a, b StatSet) StatSet {
	return MergeAll(a, b)
}

// MergeAll folds any number of buckets with a single weighted-mean pass
// so the rating is rounded once regardless of grouping.
func MergeAll(sets ...StatSet) StatSet {
	var (
		out      StatSet
		weighted float64
		rated    []StatSet
	)
	for _, s := range sets {
		out.Matches += s.Matches
		out.Starts += s.Starts
		out.Minutes += s.Minutes
		out.Goals += s.Goals
		out.Assists += s.Assists
		out.CleanSheets += s.CleanSheets
		out.Motm += s.Motm
		if s.Matches > 0 {
			weighted += s.Rating * float64(s.Matches)
			rated = append(rated, s)
		}
	}
	switch {
	case out.Matches == 0:
		out.Rating = 0
	case len(rated) == 1:
		out.Rating = rated[0].Rating
	default:
		out.Rating = RoundRating(weighted / float64(out.Matches))
	}
	return out
}

// RoundRating rounds a match rating to two decimals.
func RoundRating(r float64) float64 {
	return math.Round(r*100) / 100
}
