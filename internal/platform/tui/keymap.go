package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a semantic game intent, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionTap        // Enter/Space - tap the cell under the cursor / confirm
	ActionToggleMode // T - flip easy/hard on the stage select screen
	ActionBack       // B/Esc - leave the current screen
	ActionResults    // Tab - open the results board
	ActionQuit       // Q/Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionTap:
		return "Tap"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionBack:
		return "Back"
	case ActionResults:
		return "Results"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "w", "up", "k":
		return ActionUp
	case "s", "down", "j":
		return ActionDown
	case "a", "left", "h":
		return ActionLeft
	case "d", "right", "l":
		return ActionRight
	case "enter", " ":
		return ActionTap
	case "t":
		return ActionToggleMode
	case "b", "esc":
		return ActionBack
	case "tab":
		return ActionResults
	}

	return ActionNone
}
