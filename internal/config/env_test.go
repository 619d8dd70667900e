package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("SAVES_TEST", "")
	if !boolEnvOrDefault("SAVES_TEST", true) {
		t.Fatalf("expected default when unset")
	}

	for val, want := range map[string]bool{
		"true": true, "YES": true, "1": true, " true ": true,
		"false": false, "No": false, "0": false,
		"sometimes": true,
	} {
		t.Setenv("SAVES_TEST", val)
		if got := boolEnvOrDefault("SAVES_TEST", true); got != want {
			t.Fatalf("%q: expected %v, got %v", val, want, got)
		}
	}
}

func TestIntEnvOrDefaultRejectsNonPositive(t *testing.T) {
	for val, want := range map[string]int{"": 5, "7": 7, "0": 5, "-2": 5, "seven": 5} {
		t.Setenv("RETENTION_TEST", val)
		if got := intEnvOrDefault("RETENTION_TEST", 5); got != want {
			t.Fatalf("%q: expected %d, got %d", val, want, got)
		}
	}
}

func TestUint64EnvOrDefaultAcceptsZero(t *testing.T) {
	t.Setenv("SEED_TEST", " 0 ")
	if got := uint64EnvOrDefault("SEED_TEST", 9); got != 0 {
		t.Fatalf("expected explicit zero seed, got %d", got)
	}
	t.Setenv("SEED_TEST", "-1")
	if got := uint64EnvOrDefault("SEED_TEST", 9); got != 9 {
		t.Fatalf("expected default for invalid seed, got %d", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("TTL_TEST", "90m")
	if got := durationEnvOrDefault("TTL_TEST", time.Minute); got != 90*time.Minute {
		t.Fatalf("expected 90m, got %s", got)
	}
	for _, val := range []string{"soon", "-1s", "0s"} {
		t.Setenv("TTL_TEST", val)
		if got := durationEnvOrDefault("TTL_TEST", time.Minute); got != time.Minute {
			t.Fatalf("%q: expected default, got %s", val, got)
		}
	}
}
