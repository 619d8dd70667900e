package testutil

import (
	"testing"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/snapshots"
)

// NewTempWriter returns a save writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteSave writes c through w, failing the test on error.
func WriteSave(t *testing.T, w *snapshots.Writer, c domain.Career) {
	t.Helper()
	if err := w.WriteSave(c); err != nil {
		t.Fatalf("failed to write save for %s: %v", c.ID, err)
	}
}

// SavePath returns the file path a save of c is written to.
func SavePath(w *snapshots.Writer, c domain.Career) string {
	return snapshots.SavePath(w.BasePath(), c.ID, snapshots.SaveName(c))
}
