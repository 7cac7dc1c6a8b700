package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/oddword/internal/storage"
)

const maxResults = 100 // Max runs to load per mode

// ResultsKeyMap defines the key bindings for the results board.
type ResultsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the run results board.
type ResultsModel struct {
	modes      []string
	modeCursor int
	store      *storage.Store
	runs       []storage.RunEntry
	best       int
	table      table.Model
	help       help.Model
	keys       ResultsKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewResultsModel creates a new results model.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	h := help.New()
	h.ShowAll = false

	m := ResultsModel{
		modes:  []string{"easy", "hard"},
		store:  store,
		keys:   DefaultResultsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Stage", Width: 7},
		{Title: "Outcome", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 18},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads runs for the selected mode into the table.
func (m *ResultsModel) loadRuns() {
	mode := m.modes[m.modeCursor]

	if m.store == nil {
		m.runs = nil
		m.best = 0
		m.updateRows()
		return
	}

	runs, err := m.store.TopRuns(mode, maxResults)
	if err != nil {
		m.runs = nil
	} else {
		m.runs = runs
	}

	best, err := m.store.BestStage(mode)
	if err != nil {
		best = 0
	}
	m.best = best

	m.updateRows()
}

// updateRows rebuilds the table rows from the loaded runs.
func (m *ResultsModel) updateRows() {
	rows := make([]table.Row, 0, len(m.runs))
	for i, run := range m.runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", run.StageReached),
			outcomeLabel(run.Outcome),
			fmt.Sprintf("%ds", run.DurationSecs),
			run.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// outcomeLabel maps stored outcomes to display text.
func outcomeLabel(outcome string) string {
	switch outcome {
	case storage.OutcomeComplete:
		return "cleared"
	case storage.OutcomeWrongTap:
		return "wrong tap"
	case storage.OutcomeTimeout:
		return "timeout"
	case storage.OutcomeQuit:
		return "quit"
	default:
		return outcome
	}
}

// Init initializes the model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.modeCursor = (m.modeCursor + 1) % len(m.modes)
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	mode := strings.ToUpper(m.modes[m.modeCursor])
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("RESULTS - "+mode), m.width))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(centerText(subtitleStyle.Render("No runs recorded yet."), m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("Best stage reached: %d", m.best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// GoingBack returns true if the user pressed back (not quit).
func (m ResultsModel) GoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user requested to quit.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}

// RunResults runs the results board as its own program.
// Returns true if the user wants to go back rather than quit.
func RunResults(store *storage.Store, width, height int) (bool, error) {
	model := NewResultsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ResultsModel)
	if !ok {
		return false, nil
	}

	return m.GoingBack(), nil
}
