package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks what is on disk.
type Manifest struct {
	Version     int                   `json:"version"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Retention   Retention             `json:"retention"`
	Careers     map[string]CareerMeta `json:"careers"`
	HallOfFame  HallOfFameMeta        `json:"hallOfFame"`
}

type Retention struct {
	SavesPerCareer int `json:"savesPerCareer"`
}

type CareerMeta struct {
	Saves     []string  `json:"saves"`
	LastSaved time.Time `json:"lastSaved"`
}

type HallOfFameMeta struct {
	Entries     int       `json:"entries"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func defaultManifest(retention int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention:   Retention{SavesPerCareer: retention},
		Careers:     map[string]CareerMeta{},
	}
}

func readManifest(path string, retention int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retention), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retention), err
	}
	if m.Careers == nil {
		m.Careers = map[string]CareerMeta{}
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(basePath, manifestFile), data)
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
