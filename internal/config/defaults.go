package config

import (
	_ "embed"
)

//go:embed defaults/oddword.yaml
var defaultConfigYAML []byte

//go:embed defaults/words.yaml
var defaultWordsYAML []byte

// DefaultConfig returns the canonical configuration: flat 20-second
// countdown, 20/30 decoy base counts, two flickers from stage 5.
func DefaultConfig() Config {
	return Config{
		Stages: StagesConfig{
			Max:             10,
			TwoFlickersFrom: 5,
		},
		Difficulty: DifficultyConfig{
			BaseCountEasy:       20,
			BaseCountHard:       30,
			GrowthPerStage:      0.25,
			LastStageFontSize:   16,
			FontStep:            0.8,
			LastStageButtonFrac: 0.10,
			ButtonStepFrac:      0.004,
		},
		Timing: TimingConfig{
			TimeLimitSeconds:  20,
			StageTimeStep:     0,
			MinTimeSeconds:    5,
			FlickerIntervalMs: 300,
		},
	}
}
