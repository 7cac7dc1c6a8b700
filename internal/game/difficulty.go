package game

import "math"

// Mode selects the base difficulty of a session.
type Mode int

const (
	ModeEasy Mode = iota
	ModeHard
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeEasy:
		return "easy"
	case ModeHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Curve holds the tunables that map (stage, mode) to round parameters.
// Values normally come from the config package; DefaultCurve mirrors the
// shipped defaults for tests and fallbacks.
type Curve struct {
	MaxStage int

	BaseCountEasy  int     // decoy base count in easy mode
	BaseCountHard  int     // decoy base count in hard mode
	GrowthPerStage float64 // linear decoy growth per stage step

	LastStageFontSize float64 // font size at the final stage
	FontStep          float64 // font size gained per stage below the last

	LastStageButtonFrac float64 // button size at the final stage, as a fraction of ReferenceDim
	ButtonStepFrac      float64 // per-stage button growth fraction
	ReferenceDim        float64 // rendering surface width, supplied by the platform

	TimeLimitSeconds int
	StageTimeStep    int // legacy policy: seconds removed per stage step, 0 keeps the flat limit
	MinTimeSeconds   int

	TwoFlickersFromStage int // stages at or above this flash two cells in hard mode
}

// DefaultCurve returns the canonical curve for the given surface width.
func DefaultCurve(referenceDim float64) Curve {
	return Curve{
		MaxStage:             10,
		BaseCountEasy:        20,
		BaseCountHard:        30,
		GrowthPerStage:       0.25,
		LastStageFontSize:    16,
		FontStep:             0.8,
		LastStageButtonFrac:  0.10,
		ButtonStepFrac:       0.004,
		ReferenceDim:         referenceDim,
		TimeLimitSeconds:     20,
		StageTimeStep:        0,
		MinTimeSeconds:       5,
		TwoFlickersFromStage: 5,
	}
}

// DifficultyParams are the derived round parameters for one (stage, mode)
// pair. They are recomputed on every query, never cached.
type DifficultyParams struct {
	DecoyCount       int
	FontSize         float64
	ButtonSize       float64
	TimeLimitSeconds int
}

// Params computes the round parameters for a stage. The caller guarantees
// stage is within [1, MaxStage].
func (c Curve) Params(stage int, mode Mode) DifficultyParams {
	base := c.BaseCountEasy
	if mode == ModeHard {
		base = c.BaseCountHard
	}

	decoys := int(math.Floor(float64(base) * (1 + float64(stage-1)*c.GrowthPerStage)))

	remaining := float64(c.MaxStage - stage)
	fontSize := c.LastStageFontSize + remaining*c.FontStep
	buttonSize := (c.LastStageButtonFrac + remaining*c.ButtonStepFrac) * c.ReferenceDim

	limit := c.TimeLimitSeconds - (stage-1)*c.StageTimeStep
	if limit < c.MinTimeSeconds {
		limit = c.MinTimeSeconds
	}

	return DifficultyParams{
		DecoyCount:       decoys,
		FontSize:         fontSize,
		ButtonSize:       buttonSize,
		TimeLimitSeconds: limit,
	}
}
