package snapshots

import (
	"os"
	"testing"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
)

func sampleCareer(id string, year int, phase domain.Phase) domain.Career {
	return domain.Career{
		ID:    id,
		Year:  year,
		Phase: phase,
		Player: domain.Player{
			Name:           "Sam Rivers",
			Age:            17 + year - 2024,
			CurrentAbility: 50,
		},
		Offers: []domain.Offer{},
	}
}

func writeSave(t *testing.T, w *Writer, c domain.Career) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for career %s", c.ID)
	}
	if err := w.WriteSave(c); err != nil {
		t.Fatalf("failed to write save %s: %v", SaveName(c), err)
	}
}

func requireSaveExists(t *testing.T, w *Writer, id, name string) {
	t.Helper()
	if _, err := os.Stat(SavePath(w.BasePath(), id, name)); err != nil {
		t.Fatalf("expected save %s/%s to be written: %v", id, name, err)
	}
}

func assertNamesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("names length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("names mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
