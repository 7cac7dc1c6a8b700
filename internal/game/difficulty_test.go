package game

import (
	"math"
	"testing"
)

func TestParamsDecoyCount(t *testing.T) {
	curve := DefaultCurve(80)

	tests := []struct {
		name  string
		stage int
		mode  Mode
		want  int
	}{
		{name: "stage 1 easy", stage: 1, mode: ModeEasy, want: 20},
		{name: "stage 2 easy", stage: 2, mode: ModeEasy, want: 25},
		{name: "stage 5 easy", stage: 5, mode: ModeEasy, want: 40},
		{name: "stage 10 easy", stage: 10, mode: ModeEasy, want: 65},
		{name: "stage 1 hard", stage: 1, mode: ModeHard, want: 30},
		{name: "stage 5 hard", stage: 5, mode: ModeHard, want: 60},
		{name: "stage 10 hard", stage: 10, mode: ModeHard, want: 97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := curve.Params(tt.stage, tt.mode).DecoyCount
			if got != tt.want {
				t.Errorf("Params(%d, %v).DecoyCount = %d, want %d", tt.stage, tt.mode, got, tt.want)
			}
		})
	}
}

func TestParamsMonotonicity(t *testing.T) {
	curve := DefaultCurve(80)

	for _, mode := range []Mode{ModeEasy, ModeHard} {
		prev := curve.Params(1, mode)
		for stage := 2; stage <= curve.MaxStage; stage++ {
			cur := curve.Params(stage, mode)

			if cur.DecoyCount < prev.DecoyCount {
				t.Errorf("%v: decoy count shrank from stage %d (%d) to %d (%d)",
					mode, stage-1, prev.DecoyCount, stage, cur.DecoyCount)
			}
			if cur.FontSize > prev.FontSize {
				t.Errorf("%v: font size grew from stage %d (%v) to %d (%v)",
					mode, stage-1, prev.FontSize, stage, cur.FontSize)
			}
			if cur.ButtonSize > prev.ButtonSize {
				t.Errorf("%v: button size grew from stage %d (%v) to %d (%v)",
					mode, stage-1, prev.ButtonSize, stage, cur.ButtonSize)
			}
			prev = cur
		}
	}
}

func TestParamsFontAndButtonEndpoints(t *testing.T) {
	curve := DefaultCurve(100)

	last := curve.Params(10, ModeEasy)
	if last.FontSize != 16 {
		t.Errorf("stage 10 font size = %v, want 16", last.FontSize)
	}
	if math.Abs(last.ButtonSize-10) > 1e-9 {
		t.Errorf("stage 10 button size = %v, want 10", last.ButtonSize)
	}

	first := curve.Params(1, ModeEasy)
	if math.Abs(first.FontSize-(16+9*0.8)) > 1e-9 {
		t.Errorf("stage 1 font size = %v, want %v", first.FontSize, 16+9*0.8)
	}
	if math.Abs(first.ButtonSize-(0.10+9*0.004)*100) > 1e-9 {
		t.Errorf("stage 1 button size = %v, want %v", first.ButtonSize, (0.10+9*0.004)*100)
	}
}

func TestParamsFlatTimeLimit(t *testing.T) {
	curve := DefaultCurve(80)

	for stage := 1; stage <= curve.MaxStage; stage++ {
		for _, mode := range []Mode{ModeEasy, ModeHard} {
			if got := curve.Params(stage, mode).TimeLimitSeconds; got != 20 {
				t.Errorf("Params(%d, %v).TimeLimitSeconds = %d, want 20", stage, mode, got)
			}
		}
	}
}

func TestParamsLegacyTimeScaling(t *testing.T) {
	curve := DefaultCurve(80)
	curve.StageTimeStep = 2

	if got := curve.Params(1, ModeEasy).TimeLimitSeconds; got != 20 {
		t.Errorf("stage 1 time limit = %d, want 20", got)
	}
	if got := curve.Params(5, ModeEasy).TimeLimitSeconds; got != 12 {
		t.Errorf("stage 5 time limit = %d, want 12", got)
	}
	// Stage 10 would be 2 seconds; the minimum clamps it.
	if got := curve.Params(10, ModeEasy).TimeLimitSeconds; got != curve.MinTimeSeconds {
		t.Errorf("stage 10 time limit = %d, want clamp at %d", got, curve.MinTimeSeconds)
	}
}
