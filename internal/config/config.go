// Package config provides YAML-based configuration loading for the game:
// the difficulty curve tunables, timing, and the word catalog.
package config

import (
	"time"

	"github.com/vovakirdan/oddword/internal/game"
)

// Config contains all gameplay configuration.
type Config struct {
	Stages     StagesConfig     `yaml:"stages"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
}

// StagesConfig defines the stage ladder.
type StagesConfig struct {
	Max             int `yaml:"max"`               // number of stages
	TwoFlickersFrom int `yaml:"two_flickers_from"` // first stage with two hard-mode highlights
}

// DifficultyConfig defines how rounds scale with the stage number.
type DifficultyConfig struct {
	BaseCountEasy       int     `yaml:"base_count_easy"`        // stage 1 decoy count, easy mode
	BaseCountHard       int     `yaml:"base_count_hard"`        // stage 1 decoy count, hard mode
	GrowthPerStage      float64 `yaml:"growth_per_stage"`       // linear decoy growth per stage step
	LastStageFontSize   float64 `yaml:"last_stage_font_size"`   // font size at the final stage
	FontStep            float64 `yaml:"font_step"`              // font size gained per stage below the last
	LastStageButtonFrac float64 `yaml:"last_stage_button_frac"` // final-stage button size, fraction of surface width
	ButtonStepFrac      float64 `yaml:"button_step_frac"`       // per-stage button growth fraction
}

// TimingConfig defines the countdown and flicker cadence.
// stage_time_step reproduces the legacy policy of shrinking the time limit
// on later stages; the default of 0 keeps the limit flat.
type TimingConfig struct {
	TimeLimitSeconds  int `yaml:"time_limit_seconds"`
	StageTimeStep     int `yaml:"stage_time_step"`
	MinTimeSeconds    int `yaml:"min_time_seconds"`
	FlickerIntervalMs int `yaml:"flicker_interval_ms"`
}

// Curve maps the configuration onto a game difficulty curve for the given
// rendering surface width.
func (c Config) Curve(referenceDim float64) game.Curve {
	return game.Curve{
		MaxStage:             c.Stages.Max,
		BaseCountEasy:        c.Difficulty.BaseCountEasy,
		BaseCountHard:        c.Difficulty.BaseCountHard,
		GrowthPerStage:       c.Difficulty.GrowthPerStage,
		LastStageFontSize:    c.Difficulty.LastStageFontSize,
		FontStep:             c.Difficulty.FontStep,
		LastStageButtonFrac:  c.Difficulty.LastStageButtonFrac,
		ButtonStepFrac:       c.Difficulty.ButtonStepFrac,
		ReferenceDim:         referenceDim,
		TimeLimitSeconds:     c.Timing.TimeLimitSeconds,
		StageTimeStep:        c.Timing.StageTimeStep,
		MinTimeSeconds:       c.Timing.MinTimeSeconds,
		TwoFlickersFromStage: c.Stages.TwoFlickersFrom,
	}
}

// FlickerInterval returns the hard-mode highlight cadence.
func (c Config) FlickerInterval() time.Duration {
	return time.Duration(c.Timing.FlickerIntervalMs) * time.Millisecond
}
