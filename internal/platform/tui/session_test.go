package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/f47-sentinel/internal/core"
	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
	"github.com/vovakirdan/f47-sentinel/internal/storage"
)

func newTestSession(t *testing.T) (SessionModel, *storage.Scores) {
	t.Helper()
	scores := storage.NewScores(storage.NewMemoryStore())
	factory := func() *sentinel.Engine {
		return sentinel.New(sentinel.WithSeed(3), sentinel.WithScores(scores))
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	return NewSessionModel(factory, scores, cfg), scores
}

func step(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return got
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(0, core.DefaultConfig())

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyDown},
		{Type: tea.KeyDown},
		{Type: tea.KeyDown}, // stays on the last item
		{Type: tea.KeyUp},
		{Type: tea.KeyEnter},
	} {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	if got := m.Choice(); got != ChoiceLeaderboard {
		t.Errorf("Choice() = %v, want leaderboard", got)
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	m := NewMenuModel(4200, core.DefaultConfig())
	if !strings.Contains(m.View(), "HIGH SCORE 4200") {
		t.Error("menu does not show the high score")
	}
}

func TestSessionLaunchAndBack(t *testing.T) {
	m, _ := newTestSession(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v after launch, want game", m.screen)
	}
	if got := m.game.Engine().Phase(); got != sentinel.PhasePlaying {
		t.Errorf("phase = %v, want playing", got)
	}

	m = step(t, m, runeKey('p'))
	m = step(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Errorf("screen = %v after back, want menu", m.screen)
	}
}

func TestSessionLeaderboard(t *testing.T) {
	m, scores := newTestSession(t)
	scores.Add(storage.Entry{Name: "ACE", Score: 900, Level: 2, Wave: 3})
	scores.Add(storage.Entry{Name: "VIPER", Score: 400, Level: 1, Wave: 5})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want leaderboard", m.screen)
	}

	view := m.View()
	for _, want := range []string{"LEADERBOARD", "ACE", "900", "2-3", "VIPER"} {
		if !strings.Contains(view, want) {
			t.Errorf("leaderboard view missing %q", want)
		}
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v after esc, want menu", m.screen)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	scores := storage.NewScores(nil)
	m := NewScoreboardModel(scores, 80, 24)
	if !strings.Contains(m.View(), "No scores yet") {
		t.Error("empty board has no placeholder")
	}
}

func TestSessionQuit(t *testing.T) {
	m, _ := newTestSession(t)

	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q in menu did not quit the session")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}
