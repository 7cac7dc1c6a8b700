package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/oddword/internal/game"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Stages.Max != 10 {
		t.Errorf("Stages.Max = %d, want 10", cfg.Stages.Max)
	}
	if cfg.Difficulty.BaseCountEasy != 20 || cfg.Difficulty.BaseCountHard != 30 {
		t.Errorf("base counts = %d/%d, want 20/30",
			cfg.Difficulty.BaseCountEasy, cfg.Difficulty.BaseCountHard)
	}
	if cfg.Timing.TimeLimitSeconds != 20 {
		t.Errorf("TimeLimitSeconds = %d, want 20", cfg.Timing.TimeLimitSeconds)
	}
	if cfg.Timing.StageTimeStep != 0 {
		t.Errorf("StageTimeStep = %d, want 0 (flat limit)", cfg.Timing.StageTimeStep)
	}
	if got := cfg.FlickerInterval().Milliseconds(); got != 300 {
		t.Errorf("FlickerInterval = %dms, want 300ms", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	custom := `
stages:
  max: 3
  two_flickers_from: 2
difficulty:
  base_count_easy: 5
  base_count_hard: 8
  growth_per_stage: 0.5
timing:
  time_limit_seconds: 10
  min_time_seconds: 2
  flicker_interval_ms: 100
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Stages.Max != 3 {
		t.Errorf("Stages.Max = %d, want 3", cfg.Stages.Max)
	}
	if cfg.Timing.TimeLimitSeconds != 10 {
		t.Errorf("TimeLimitSeconds = %d, want 10", cfg.Timing.TimeLimitSeconds)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestCurveMapping(t *testing.T) {
	curve := DefaultConfig().Curve(100)

	if curve.ReferenceDim != 100 {
		t.Errorf("ReferenceDim = %v, want 100", curve.ReferenceDim)
	}
	if curve.MaxStage != 10 || curve.TwoFlickersFromStage != 5 {
		t.Errorf("MaxStage/TwoFlickersFromStage = %d/%d, want 10/5",
			curve.MaxStage, curve.TwoFlickersFromStage)
	}

	// Scenario A: stage 1 easy is a 21-cell round.
	if got := curve.Params(1, game.ModeEasy).DecoyCount; got != 20 {
		t.Errorf("stage 1 easy decoy count = %d, want 20", got)
	}
}

func TestLoadWordsEmbeddedDefault(t *testing.T) {
	catalog, err := LoadWords("")
	if err != nil {
		t.Fatalf("LoadWords() failed: %v", err)
	}
	if catalog.Len() == 0 {
		t.Error("embedded catalog is empty")
	}
}

func TestLoadWordsRejectsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	bad := `
pairs:
  - correct: "stone"
    decoy: "stone"
`
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadWords(path); err == nil {
		t.Error("LoadWords() accepted a catalog with identical words")
	}
}
