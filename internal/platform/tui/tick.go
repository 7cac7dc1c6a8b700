// Package tui provides the Bubble Tea integration for oddword.
// It maps keys to game intents, drives the countdown and flicker timers,
// and renders session snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// CountdownMsg advances the 1Hz round countdown.
type CountdownMsg struct {
	Epoch int
}

// FlickerMsg advances the hard-mode highlight sampler.
type FlickerMsg struct {
	Epoch int
}

// Both timers are scoped to active play: they are only scheduled while the
// session reports Playing, and each carries the epoch of the play session
// that started it. The model bumps the epoch on every entry into Playing
// and discards messages stamped with an older epoch, so a tick that was
// already in flight when the screen changed can never touch a stale round.

// countdownCmd schedules the next countdown tick for the given epoch.
func countdownCmd(epoch int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return CountdownMsg{Epoch: epoch}
	})
}

// flickerCmd schedules the next flicker tick for the given epoch.
func flickerCmd(epoch int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FlickerMsg{Epoch: epoch}
	})
}
