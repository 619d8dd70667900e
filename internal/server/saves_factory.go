package server

import (
	"github.com/preston-bernstein/football-career-sim/internal/config"
	"github.com/preston-bernstein/football-career-sim/internal/snapshots"
)

type saveComponents struct {
	writer *snapshots.Writer
	reader *snapshots.FSStore
}

// buildSaves returns nil components when save files are switched off.
func buildSaves(cfg config.SavesConfig) saveComponents {
	if !cfg.Enabled || cfg.Dir == "" {
		return saveComponents{}
	}
	return saveComponents{
		writer: snapshots.NewWriter(cfg.Dir, cfg.Retention),
		reader: snapshots.NewFSStore(cfg.Dir),
	}
}
