package snapshots

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
)

const (
	savesDir       = "saves"
	hallOfFameFile = "hall-of-fame.json"
	manifestFile   = "manifest.json"
)

var phaseOrder = map[domain.Phase]int{
	domain.PhasePreSeason: 1,
	domain.PhaseMidSeason: 2,
	domain.PhaseRetired:   3,
}

// SaveName names a save so that lexical order is chronological.
func SaveName(c domain.Career) string {
	return fmt.Sprintf("%04d-%d-%s", c.Year, phaseOrder[c.Phase], c.Phase)
}

// SavePath builds the path to a named save for a career.
func SavePath(basePath, careerID, name string) string {
	return filepath.Join(basePath, savesDir, careerID, name+".json")
}

func validID(id string) bool {
	return id != "" && id != "." && id != ".." && !strings.ContainsAny(id, `/\`)
}
