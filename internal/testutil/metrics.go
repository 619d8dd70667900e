package testutil

import (
	"testing"

	"github.com/preston-bernstein/football-career-sim/internal/metrics"
)

// AssertSimulations fails the test unless rec counted want simulations of half.
func AssertSimulations(t *testing.T, rec *metrics.Recorder, half string, want int) {
	t.Helper()
	if got := rec.Simulations(half).Calls; got != want {
		t.Fatalf("expected %d %s simulations, got %d", want, half, got)
	}
}
