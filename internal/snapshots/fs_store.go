package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
)

// ErrNoSave is returned when a career has nothing on disk.
var ErrNoSave = errors.New("no save found")

// FSStore loads saves and the hall of fame from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed save store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// Saves lists a career's save names, oldest first.
func (s *FSStore) Saves(careerID string) ([]string, error) {
	if s == nil {
		return nil, errors.New("save store not configured")
	}
	if !validID(careerID) {
		return nil, fmt.Errorf("invalid career id %q", careerID)
	}
	return listSaves(s.basePath, careerID)
}

// LoadSave reads one named save.
func (s *FSStore) LoadSave(careerID, name string) (domain.Career, error) {
	if s == nil {
		return domain.Career{}, errors.New("save store not configured")
	}
	if !validID(careerID) || !validID(name) {
		return domain.Career{}, fmt.Errorf("invalid save %q/%q", careerID, name)
	}
	var c domain.Career
	if err := s.decodeFile(SavePath(s.basePath, careerID, name), &c); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Career{}, ErrNoSave
		}
		return domain.Career{}, err
	}
	return c, nil
}

// LoadLatest reads a career's newest save.
func (s *FSStore) LoadLatest(careerID string) (domain.Career, error) {
	names, err := s.Saves(careerID)
	if err != nil {
		return domain.Career{}, err
	}
	if len(names) == 0 {
		return domain.Career{}, ErrNoSave
	}
	return s.LoadSave(careerID, names[len(names)-1])
}

// CareerIDs lists every career with a save directory.
func (s *FSStore) CareerIDs() ([]string, error) {
	if s == nil {
		return nil, errors.New("save store not configured")
	}
	entries, err := os.ReadDir(filepath.Join(s.basePath, savesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	ids := []string{}
	for _, e := range entries {
		if e.IsDir() && validID(e.Name()) {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

// HallOfFame returns every enshrined career in the order they retired.
func (s *FSStore) HallOfFame() ([]domain.HallOfFameEntry, error) {
	if s == nil {
		return nil, errors.New("save store not configured")
	}
	return readHallOfFame(filepath.Join(s.basePath, hallOfFameFile))
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
