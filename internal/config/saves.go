package config

// SavesConfig controls JSON save files and the hall of fame on disk.
type SavesConfig struct {
	Enabled   bool
	Dir       string
	Retention int // save files kept per career
}

func loadSaves() SavesConfig {
	return SavesConfig{
		Enabled:   boolEnvOrDefault(envSavesEnabled, defaultSavesEnabled),
		Dir:       envOrDefault(envSavesDir, defaultSavesDir),
		Retention: intEnvOrDefault(envSavesRetention, defaultSavesRetention),
	}
}
