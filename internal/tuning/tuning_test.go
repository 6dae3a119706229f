package tuning

import (
	"os"
	"path/filepath"
	"testing"

	"delve-server/internal/domain"
)

func TestLoadOverridesOnTopOfDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	body := []byte("durations:\n  move: 2.5\nai:\n  activity_radius: 10\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	tn, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tn.Durations.Move != 2.5 {
		t.Errorf("move duration = %f, want override 2.5", tn.Durations.Move)
	}
	if tn.AI.ActivityRadius != 10 {
		t.Errorf("activity radius = %d, want override 10", tn.AI.ActivityRadius)
	}
	// Untouched keys keep defaults.
	if tn.Durations.Attack != Default().Durations.Attack {
		t.Errorf("attack duration = %f, want default", tn.Durations.Attack)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}

func TestDurationFallsBackToWait(t *testing.T) {
	tn := Default()
	if got := tn.Duration(domain.ActionNone); got != tn.Durations.Wait {
		t.Errorf("Duration(none) = %f, want wait duration %f", got, tn.Durations.Wait)
	}
}
