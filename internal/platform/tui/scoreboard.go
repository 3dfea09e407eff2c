package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/f47-sentinel/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 90 // Minimum width to show the run stats panel
	statsWidth       = 26
	recentRuns       = 5
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	entries   []storage.Entry
	stats     *storage.RunStats
	recent    []storage.RunRecord
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	showStats bool
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over the stored leaderboard and,
// when the backend keeps one, the run history.
func NewScoreboardModel(scores *storage.Scores, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		entries: scores.Leaderboard(),
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}

	if hist := scores.History(); hist != nil {
		if stats, err := hist.RunStats(); err == nil && stats.Runs > 0 {
			m.stats = stats
		}
		if runs, err := hist.RecentRuns(recentRuns); err == nil {
			m.recent = runs
		}
	}
	m.showStats = m.stats != nil && width >= minWidthForStats

	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Pilot", Width: 10},
		{Title: "Score", Width: 10},
		{Title: "Lv-Wave", Width: 8},
		{Title: "Date", Width: 13},
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
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the leaderboard.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d-%d", e.Level, e.Wave),
			e.Date.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.stats != nil && m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), m.width))
	b.WriteString("\n\n")

	board := panelStyle.Padding(0, 1).Render(m.renderTableContent())
	if m.showStats {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", m.renderStats())
	}
	b.WriteString(centerText(board, m.width))

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.entries) == 0 {
		return subtleStyle.Render("No scores yet. Fly a sortie!")
	}
	return m.table.View()
}

// renderStats renders aggregated run history beside the table.
func (m ScoreboardModel) renderStats() string {
	var sb strings.Builder
	sb.WriteString(accentStyle.Render("Service record"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Runs       %d\n", m.stats.Runs)
	fmt.Fprintf(&sb, "Best       %d\n", m.stats.BestScore)
	fmt.Fprintf(&sb, "Average    %.0f\n", m.stats.AvgScore)
	fmt.Fprintf(&sb, "Kills      %d\n", m.stats.TotalKills)
	fmt.Fprintf(&sb, "Best level %d\n", m.stats.BestLevel)

	if len(m.recent) > 0 {
		sb.WriteString("\n")
		sb.WriteString(accentStyle.Render("Recent"))
		sb.WriteString("\n")
		for _, r := range m.recent {
			fmt.Fprintf(&sb, "L%d-W%d %10d\n", r.Level, r.Wave, r.Score)
		}
	}

	return panelStyle.Padding(0, 1).Width(statsWidth).Render(strings.TrimRight(sb.String(), "\n"))
}

// IsQuitting returns true if user requested to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if user requested to go back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard runs the scoreboard UI.
// Returns true if user wants to go back to menu, false if quit.
func RunScoreboard(scores *storage.Scores, width, height int) (bool, error) {
	p := tea.NewProgram(
		NewScoreboardModel(scores, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
