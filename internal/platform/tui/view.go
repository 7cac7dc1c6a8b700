package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/oddword/internal/game"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	modeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	unlockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)

	cellStyle    = lipgloss.NewStyle()
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	flickerStyle = lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0"))

	timerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	timerWarnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	lostStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	wonStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()

	switch snap.Screen {
	case game.ScreenStageSelect:
		return m.viewStageSelect(snap)
	case game.ScreenPlaying:
		return m.viewPlaying(snap)
	case game.ScreenRoundLost:
		return m.viewRoundLost(snap)
	case game.ScreenComplete:
		return m.viewComplete(snap)
	}

	return ""
}

// viewStageSelect renders the stage picker.
func (m Model) viewStageSelect(snap game.Snapshot) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("O D D W O R D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtitleStyle.Render("Spot the one word that differs"), m.width))
	b.WriteString("\n\n")

	mode := "EASY"
	if snap.Mode == game.ModeHard {
		mode = "HARD"
	}
	b.WriteString(centerText("Mode: "+modeStyle.Render(mode), m.width))
	b.WriteString("\n\n")

	unlocked := make(map[int]bool, len(snap.UnlockedStages))
	for _, stage := range snap.UnlockedStages {
		unlocked[stage] = true
	}

	cells := make([]string, 0, snap.MaxStage)
	for stage := 1; stage <= snap.MaxStage; stage++ {
		label := fmt.Sprintf(" %2d ", stage)

		var cell string
		switch {
		case stage == m.stageCursor+1:
			cell = selectStyle.Render(label)
		case unlocked[stage]:
			cell = unlockedStyle.Render(label)
		default:
			cell = lockedStyle.Render(label)
		}
		cells = append(cells, cell)
	}
	b.WriteString(centerText(strings.Join(cells, " "), m.width))
	b.WriteString("\n\n")

	controls := "Arrows: Pick stage  |  Enter: Play  |  T: Mode  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(subtitleStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// viewPlaying renders the word grid.
func (m Model) viewPlaying(snap game.Snapshot) string {
	var b strings.Builder

	timer := timerStyle
	if snap.TimeLeft <= 5 {
		timer = timerWarnStyle
	}
	header := fmt.Sprintf("Stage %d/%d  %s  ", snap.CurrentStage, snap.MaxStage, snap.Mode)
	b.WriteString("  " + header + timer.Render(fmt.Sprintf("%2ds", snap.TimeLeft)))
	b.WriteString("\n\n")

	if snap.Round != nil {
		b.WriteString(m.renderGrid(snap))
	}

	b.WriteString("\n")
	b.WriteString("  " + subtitleStyle.Render("Arrows: Move  |  Enter: Tap  |  Esc: Give up  |  Q: Quit"))
	b.WriteString("\n")

	return b.String()
}

// renderGrid lays the cells out in rows. The flicker set and the cursor
// restyle individual cells; every cell is otherwise identical.
func (m Model) renderGrid(snap game.Snapshot) string {
	flicker := make(map[int]bool, len(snap.FlickerIndices))
	for _, idx := range snap.FlickerIndices {
		flicker[idx] = true
	}

	cellW := cellWidth(snap.Round)
	cols := m.gridColumns(snap)

	var b strings.Builder
	for i, word := range snap.Round.Cells {
		if i > 0 && i%cols == 0 {
			b.WriteString("\n")
		}

		style := cellStyle
		switch {
		case i == m.cursor:
			style = cursorStyle
		case flicker[i]:
			style = flickerStyle
		}

		b.WriteString(style.Render(pad(word, cellW)))
	}
	b.WriteString("\n")

	return b.String()
}

// viewRoundLost renders the failure screen with the frozen round behind it.
func (m Model) viewRoundLost(snap game.Snapshot) string {
	var b strings.Builder

	reason := "You tapped the wrong word!"
	if snap.FailureReason == game.FailureTimeout {
		reason = "Time ran out!"
	}

	b.WriteString("\n")
	b.WriteString(centerText(lostStyle.Render("ROUND LOST"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(reason, m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("You reached stage %d in %s mode.", snap.CurrentStage, snap.Mode), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtitleStyle.Render("Enter: Stage select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// viewComplete renders the all-stages-cleared screen.
func (m Model) viewComplete(snap game.Snapshot) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(wonStyle.Render("A L L  C L E A R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Every stage beaten in %s mode. Well spotted.", snap.Mode), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtitleStyle.Render("Enter: Stage select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// gridColumns computes how many cells fit per row at the current width.
// Key navigation and rendering both use this, so the cursor moves the way
// the grid looks.
func (m Model) gridColumns(snap game.Snapshot) int {
	cols := m.width / cellWidth(snap.Round)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// cellWidth derives the terminal cell width from the round's button size,
// never tighter than the word plus padding. All words of a round share one
// length by catalog construction.
func cellWidth(r *game.RoundView) int {
	w := int(r.ButtonSize)
	min := len(r.Cells[0]) + 2
	if w < min {
		w = min
	}
	return w
}

// pad centers a word inside a fixed-width cell.
func pad(word string, width int) string {
	space := width - len(word)
	if space <= 0 {
		return word
	}
	left := space / 2
	return strings.Repeat(" ", left) + word + strings.Repeat(" ", space-left)
}

// centerText centers text within the given width, ignoring ANSI styling
// via lipgloss.Width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
