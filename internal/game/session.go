package game

import (
	"math/rand"
	"sort"
)

// Screen identifies which screen the session is showing.
type Screen int

const (
	ScreenStageSelect Screen = iota
	ScreenPlaying
	ScreenRoundLost
	ScreenComplete
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenStageSelect:
		return "stage-select"
	case ScreenPlaying:
		return "playing"
	case ScreenRoundLost:
		return "round-lost"
	case ScreenComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// FailureReason records why a round was lost.
type FailureReason int

const (
	FailureNone FailureReason = iota
	FailureWrongTap
	FailureTimeout
)

// String returns a human-readable name for the failure reason.
func (f FailureReason) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureWrongTap:
		return "wrong-tap"
	case FailureTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Session is the game state machine. It owns all mutable session state and
// is mutated only through its methods, in response to user intents and the
// platform's countdown/flicker ticks. Methods called outside their valid
// screen are silent no-ops; the session never trusts the UI to gate input.
type Session struct {
	curve   Curve
	catalog *Catalog
	rng     *rand.Rand

	stage    int
	unlocked map[int]bool
	mode     Mode
	screen   Screen
	timeLeft int
	failure  FailureReason
	round    *Round
	flicker  []int
}

// NewSession creates a session at the initial state: stage select, easy
// mode, only stage 1 unlocked.
func NewSession(catalog *Catalog, curve Curve, rng *rand.Rand) *Session {
	return &Session{
		curve:    curve,
		catalog:  catalog,
		rng:      rng,
		stage:    1,
		unlocked: map[int]bool{1: true},
		mode:     ModeEasy,
		screen:   ScreenStageSelect,
	}
}

// SelectStage enters the given stage and starts a round. Selecting a
// locked stage, or selecting outside the stage-select screen, is ignored.
// Returns whether the stage was entered.
func (s *Session) SelectStage(stage int) bool {
	if s.screen != ScreenStageSelect || !s.unlocked[stage] {
		return false
	}
	s.stage = stage
	s.startRound()
	return true
}

// ToggleMode flips easy/hard. Only allowed from stage select; toggling
// mid-round is ignored so the active round can never be corrupted.
// Returns whether the mode changed.
func (s *Session) ToggleMode() bool {
	if s.screen != ScreenStageSelect {
		return false
	}
	if s.mode == ModeEasy {
		s.mode = ModeHard
	} else {
		s.mode = ModeEasy
	}
	return true
}

// TapWord handles the player tapping a cell with the given text. A correct
// tap advances to the next stage and immediately starts its round; past the
// final stage the session is complete. A wrong tap loses the round,
// freezing the grid and timer for the lost screen. Ignored outside play.
func (s *Session) TapWord(word string) {
	if s.screen != ScreenPlaying || s.round == nil {
		return
	}

	if word != s.round.CorrectWord {
		s.fail(FailureWrongTap)
		return
	}

	next := s.stage + 1
	if next > s.curve.MaxStage {
		s.screen = ScreenComplete
		s.round = nil
		s.flicker = nil
		return
	}

	s.unlocked[next] = true
	s.stage = next
	s.startRound()
}

// Tick advances the countdown by one second. Driven at 1Hz by the platform
// while playing; ignored on any other screen, so a stale tick delivered
// after a transition cannot touch a stale round.
func (s *Session) Tick() {
	if s.screen != ScreenPlaying {
		return
	}
	s.timeLeft--
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.fail(FailureTimeout)
	}
}

// AdvanceFlicker resamples the highlighted cells. Driven by the platform's
// flicker timer; a no-op unless a hard-mode round is live.
func (s *Session) AdvanceFlicker() {
	if s.screen != ScreenPlaying || s.mode != ModeHard || s.round == nil {
		return
	}
	s.flicker = FlickerIndices(s.stage, len(s.round.Cells), s.curve.TwoFlickersFromStage, s.rng)
}

// BackToMain performs a full reset back to stage select: stage 1, only
// stage 1 unlocked, easy mode. Valid from any screen.
func (s *Session) BackToMain() {
	s.stage = 1
	s.unlocked = map[int]bool{1: true}
	s.mode = ModeEasy
	s.screen = ScreenStageSelect
	s.timeLeft = 0
	s.failure = FailureNone
	s.round = nil
	s.flicker = nil
}

// SetReferenceDim updates the rendering surface width the button size is
// derived from. The platform calls this on resize.
func (s *Session) SetReferenceDim(dim float64) {
	s.curve.ReferenceDim = dim
}

// MaxStage returns the highest stage number.
func (s *Session) MaxStage() int {
	return s.curve.MaxStage
}

// startRound replaces the active round wholesale and resets the countdown
// for the current stage and mode.
func (s *Session) startRound() {
	round := GenerateRound(s.stage, s.mode, s.curve, s.catalog, s.rng)
	s.round = &round
	s.timeLeft = s.curve.Params(s.stage, s.mode).TimeLimitSeconds
	s.failure = FailureNone
	s.flicker = nil
	s.screen = ScreenPlaying
}

// fail ends the round, keeping the grid and remaining time frozen for the
// lost screen. Flicker always clears outside active play.
func (s *Session) fail(reason FailureReason) {
	s.failure = reason
	s.screen = ScreenRoundLost
	s.flicker = nil
}

// RoundView is the renderable slice of the active round.
type RoundView struct {
	Cells      []string
	FontSize   float64
	ButtonSize float64
}

// Snapshot is the read-only view-model handed to the renderer after every
// mutation. Slices are copies; mutating a snapshot cannot affect the
// session. The correct word is deliberately absent: cells are rendered
// identically and taps are resolved by the session.
type Snapshot struct {
	Screen         Screen
	CurrentStage   int
	MaxStage       int
	UnlockedStages []int
	Mode           Mode
	TimeLeft       int
	FailureReason  FailureReason
	Round          *RoundView
	FlickerIndices []int
}

// Snapshot builds the current view-model. Derived difficulty values are
// recomputed here on every call rather than cached on the session.
func (s *Session) Snapshot() Snapshot {
	unlocked := make([]int, 0, len(s.unlocked))
	for stage := range s.unlocked {
		unlocked = append(unlocked, stage)
	}
	sort.Ints(unlocked)

	snap := Snapshot{
		Screen:         s.screen,
		CurrentStage:   s.stage,
		MaxStage:       s.curve.MaxStage,
		UnlockedStages: unlocked,
		Mode:           s.mode,
		TimeLeft:       s.timeLeft,
		FailureReason:  s.failure,
	}

	if s.round != nil {
		params := s.curve.Params(s.stage, s.mode)
		cells := make([]string, len(s.round.Cells))
		copy(cells, s.round.Cells)
		snap.Round = &RoundView{
			Cells:      cells,
			FontSize:   params.FontSize,
			ButtonSize: params.ButtonSize,
		}
	}

	if len(s.flicker) > 0 {
		indices := make([]int, len(s.flicker))
		copy(indices, s.flicker)
		snap.FlickerIndices = indices
	}

	return snap
}
