package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
)

// NameEntry asks for a pilot name after a run that scored.
type NameEntry struct {
	input     textinput.Model
	score     int
	kills     int
	submitted bool
	skipped   bool
}

// NewNameEntry creates a focused name prompt for the given run.
func NewNameEntry(s *sentinel.Snapshot) NameEntry {
	ti := textinput.New()
	ti.Placeholder = "PILOT"
	ti.CharLimit = sentinel.MaxNameLength
	ti.Width = sentinel.MaxNameLength + 1
	ti.Prompt = "> "
	ti.Focus()

	return NameEntry{
		input: ti,
		score: s.Score,
		kills: s.TotalKills,
	}
}

// Update handles typing, submit (enter) and skip (esc).
func (n NameEntry) Update(msg tea.Msg) (NameEntry, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEnter:
			if sentinel.SanitizeName(n.input.Value()) != "" {
				n.submitted = true
				n.input.Blur()
			}
			return n, nil
		case tea.KeyEsc:
			n.skipped = true
			n.input.Blur()
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	n.input.SetValue(strings.ToUpper(n.input.Value()))
	return n, cmd
}

// Done reports whether the prompt was submitted or skipped.
func (n NameEntry) Done() bool {
	return n.submitted || n.skipped
}

// Name returns the sanitized name, or "" when skipped.
func (n NameEntry) Name() string {
	if !n.submitted {
		return ""
	}
	return sentinel.SanitizeName(n.input.Value())
}

// View renders the prompt centered in a width x height area.
func (n NameEntry) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("GAME OVER"),
		"",
		accentStyle.Render(fmt.Sprintf("SCORE %d", n.score)),
		subtleStyle.Render(fmt.Sprintf("%d kills", n.kills)),
		"",
		"Enter your callsign",
		n.input.View(),
		"",
		subtleStyle.Render("enter: save  esc: skip"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panelStyle.Render(body))
}
