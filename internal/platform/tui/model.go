package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/oddword/internal/config"
	"github.com/vovakirdan/oddword/internal/game"
	"github.com/vovakirdan/oddword/internal/storage"
)

// RuntimeConfig contains the platform parameters a session is created with.
type RuntimeConfig struct {
	Width  int
	Height int
	Seed   int64 // 0 means derive from the current time
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:  80,
		Height: 24,
	}
}

// Model is the Bubble Tea model driving one oddword session. The session
// owns all game state; the model owns only presentation state (cursors)
// and the timer scoping.
type Model struct {
	session         *game.Session
	store           *storage.Store
	keyMapper       *KeyMapper
	flickerInterval time.Duration

	width  int
	height int

	epoch       int // bumped on every entry into Playing; stamps tick messages
	cursor      int // grid cell cursor while playing
	stageCursor int // stage cursor on the select screen

	startedAt    time.Time // when the current run entered play
	runSaved     bool
	wantsResults bool
	quitting     bool
}

// NewModel creates a model with a fresh session.
func NewModel(cfg config.Config, catalog *game.Catalog, store *storage.Store, rt RuntimeConfig) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(rt.Seed))
	session := game.NewSession(catalog, cfg.Curve(float64(rt.Width)), rng)

	return Model{
		session:         session,
		store:           store,
		keyMapper:       NewKeyMapper(),
		flickerInterval: cfg.FlickerInterval(),
		width:           rt.Width,
		height:          rt.Height,
	}
}

// Init initializes the model. The stage select screen has no timers.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.session.SetReferenceDim(float64(msg.Width))
		return m, nil

	case CountdownMsg:
		return m.handleCountdown(msg)

	case FlickerMsg:
		return m.handleFlicker(msg)
	}

	return m, nil
}

// handleKey routes input to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)
	snap := m.session.Snapshot()

	if action == ActionQuit {
		if snap.Screen == game.ScreenPlaying {
			m = m.saveRun(snap, storage.OutcomeQuit)
		}
		m.quitting = true
		return m, tea.Quit
	}

	switch snap.Screen {
	case game.ScreenStageSelect:
		return m.handleStageSelectKey(action, snap)
	case game.ScreenPlaying:
		return m.handlePlayingKey(action, snap)
	case game.ScreenRoundLost, game.ScreenComplete:
		if action == ActionTap || action == ActionBack {
			m.session.BackToMain()
			m.stageCursor = 0
		}
		return m, nil
	}

	return m, nil
}

// handleStageSelectKey processes input on the stage select screen.
func (m Model) handleStageSelectKey(action Action, snap game.Snapshot) (tea.Model, tea.Cmd) {
	switch action {
	case ActionUp, ActionLeft:
		if m.stageCursor > 0 {
			m.stageCursor--
		}

	case ActionDown, ActionRight:
		if m.stageCursor < snap.MaxStage-1 {
			m.stageCursor++
		}

	case ActionToggleMode:
		m.session.ToggleMode()

	case ActionResults:
		m.wantsResults = true
		return m, tea.Quit

	case ActionBack:
		m.quitting = true
		return m, tea.Quit

	case ActionTap:
		return m.startPlay(m.stageCursor + 1)
	}

	return m, nil
}

// startPlay enters a stage and starts the scoped timers. A locked stage
// leaves the model untouched.
func (m Model) startPlay(stage int) (tea.Model, tea.Cmd) {
	if !m.session.SelectStage(stage) {
		return m, nil
	}

	m.epoch++
	m.cursor = 0
	m.startedAt = time.Now()
	m.runSaved = false

	cmds := []tea.Cmd{countdownCmd(m.epoch)}
	if m.session.Snapshot().Mode == game.ModeHard {
		cmds = append(cmds, flickerCmd(m.epoch, m.flickerInterval))
	}
	return m, tea.Batch(cmds...)
}

// handlePlayingKey processes input during active play.
func (m Model) handlePlayingKey(action Action, snap game.Snapshot) (tea.Model, tea.Cmd) {
	if snap.Round == nil {
		return m, nil
	}
	cells := len(snap.Round.Cells)
	cols := m.gridColumns(snap)

	switch action {
	case ActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}

	case ActionRight:
		if m.cursor < cells-1 {
			m.cursor++
		}

	case ActionUp:
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}

	case ActionDown:
		if m.cursor+cols < cells {
			m.cursor += cols
		}

	case ActionBack:
		// Abandoning mid-play counts as a finished run.
		m = m.saveRun(snap, storage.OutcomeQuit)
		m.session.BackToMain()
		m.stageCursor = 0

	case ActionTap:
		m.session.TapWord(snap.Round.Cells[m.cursor])
		return m.afterTap()
	}

	return m, nil
}

// afterTap inspects the session after a tap and records finished runs.
// A correct tap keeps the screen on Playing with a fresh round; the
// existing countdown chain keeps driving the reset timer.
func (m Model) afterTap() (tea.Model, tea.Cmd) {
	snap := m.session.Snapshot()

	switch snap.Screen {
	case game.ScreenPlaying:
		m.cursor = 0

	case game.ScreenRoundLost:
		m = m.saveRun(snap, outcomeForFailure(snap.FailureReason))

	case game.ScreenComplete:
		m = m.saveRun(snap, storage.OutcomeComplete)
	}

	return m, nil
}

// handleCountdown processes a 1Hz countdown tick.
func (m Model) handleCountdown(msg CountdownMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.epoch {
		return m, nil // stale timer from a previous play session
	}

	m.session.Tick()

	snap := m.session.Snapshot()
	if snap.Screen != game.ScreenPlaying {
		if snap.Screen == game.ScreenRoundLost {
			m = m.saveRun(snap, outcomeForFailure(snap.FailureReason))
		}
		return m, nil // stop the chain
	}

	return m, countdownCmd(m.epoch)
}

// handleFlicker processes a flicker tick.
func (m Model) handleFlicker(msg FlickerMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.epoch {
		return m, nil
	}

	m.session.AdvanceFlicker()

	if snap := m.session.Snapshot(); snap.Screen != game.ScreenPlaying {
		return m, nil
	}

	return m, flickerCmd(m.epoch, m.flickerInterval)
}

// saveRun records a finished run once per play session. Best-effort: the
// game continues regardless of storage errors.
func (m Model) saveRun(snap game.Snapshot, outcome string) Model {
	if m.store == nil || m.runSaved {
		return m
	}

	duration := int(time.Since(m.startedAt).Seconds())
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(snap.Mode.String(), snap.CurrentStage, outcome, duration)
	m.runSaved = true
	return m
}

// outcomeForFailure maps a failure reason onto a stored run outcome.
func outcomeForFailure(reason game.FailureReason) string {
	if reason == game.FailureTimeout {
		return storage.OutcomeTimeout
	}
	return storage.OutcomeWrongTap
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if the user requested the results board.
func (m Model) WantsResults() bool {
	return m.wantsResults
}

// WithResultsClosed clears the results request so an outer model can
// resume this one after showing the board.
func (m Model) WithResultsClosed() Model {
	m.wantsResults = false
	return m
}

// GameResult holds the outcome of a finished game program.
type GameResult struct {
	WantsResults bool
	Quit         bool
	Width        int
	Height       int
}

// RunGame starts the Bubble Tea program for one session and reports how
// it ended.
func RunGame(cfg config.Config, catalog *game.Catalog, store *storage.Store, rt RuntimeConfig) (GameResult, error) {
	model := NewModel(cfg, catalog, store, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Quit: true, Width: rt.Width, Height: rt.Height}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return GameResult{Quit: true, Width: rt.Width, Height: rt.Height}, nil
	}

	return GameResult{
		WantsResults: m.WantsResults(),
		Quit:         !m.WantsResults(),
		Width:        m.width,
		Height:       m.height,
	}, nil
}
