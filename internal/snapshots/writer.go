package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
)

// DefaultRetention is how many saves per career are kept when none is configured.
const DefaultRetention = 5

// Writer persists career saves and the hall of fame, pruning old saves.
type Writer struct {
	mu        sync.Mutex
	basePath  string
	retention int
	now       func() time.Time
}

// NewWriter constructs a writer rooted at basePath keeping the newest
// retention saves per career.
func NewWriter(basePath string, retention int) *Writer {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Writer{
		basePath:  basePath,
		retention: retention,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSave writes the career under its year and phase and prunes older saves.
func (w *Writer) WriteSave(c domain.Career) error {
	if w == nil {
		return errors.New("save writer not configured")
	}
	if !validID(c.ID) {
		return fmt.Errorf("invalid career id %q", c.ID)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	name := SaveName(c)
	target := SavePath(w.basePath, c.ID, name)
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err != nil || !bytes.Equal(existing, data) {
		if err := writeAtomic(target, data); err != nil {
			return err
		}
	}
	return w.updateManifest(c.ID)
}

// AddToHallOfFame appends the entry unless the same career is already
// enshrined. It reports whether the entry was added.
func (w *Writer) AddToHallOfFame(entry domain.HallOfFameEntry) (bool, error) {
	if w == nil {
		return false, errors.New("save writer not configured")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	entries, err := readHallOfFame(filepath.Join(w.basePath, hallOfFameFile))
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.SameCareer(entry) {
			return false, nil
		}
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return false, err
	}
	if err := writeAtomic(filepath.Join(w.basePath, hallOfFameFile), data); err != nil {
		return false, err
	}

	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retention)
	m.HallOfFame = HallOfFameMeta{Entries: len(entries), LastUpdated: w.now()}
	return true, writeManifest(w.basePath, m)
}

func (w *Writer) updateManifest(careerID string) error {
	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retention)

	names, err := listSaves(w.basePath, careerID)
	if err != nil {
		return err
	}
	kept := w.prune(careerID, names)

	m.Careers[careerID] = CareerMeta{Saves: kept, LastSaved: w.now()}
	m.Retention.SavesPerCareer = w.retention
	return writeManifest(w.basePath, m)
}

// prune removes all but the newest saves and returns the survivors.
func (w *Writer) prune(careerID string, names []string) []string {
	if len(names) <= w.retention {
		return names
	}
	cut := len(names) - w.retention
	for _, name := range names[:cut] {
		_ = os.Remove(SavePath(w.basePath, careerID, name))
	}
	return names[cut:]
}

func listSaves(basePath, careerID string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(basePath, savesDir, careerID))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		names = append(names, name[:len(name)-len(".json")])
	}
	sort.Strings(names)
	return names, nil
}

func readHallOfFame(path string) ([]domain.HallOfFameEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.HallOfFameEntry{}, nil
		}
		return nil, err
	}
	var entries []domain.HallOfFameEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("reading hall of fame: %w", err)
	}
	if entries == nil {
		entries = []domain.HallOfFameEntry{}
	}
	return entries, nil
}
