package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/f47-sentinel/internal/core"
	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
	"github.com/vovakirdan/f47-sentinel/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Scores) {
	t.Helper()
	scores := storage.NewScores(storage.NewMemoryStore())
	factory := func() *sentinel.Engine {
		return sentinel.New(sentinel.WithSeed(1), sentinel.WithScores(scores))
	}
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60}

	m := NewModel(factory, cfg)
	m.Init()
	return m, scores
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got, cmd
}

func TestModelInitStartsRun(t *testing.T) {
	m, _ := newTestModel(t)

	if got := m.Engine().Phase(); got != sentinel.PhasePlaying {
		t.Errorf("phase after Init = %v, want playing", got)
	}
}

func TestModelMovementKeysHoldAndRelease(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, runeKey('w'))

	keys := m.Engine().Input().Keys
	if !keys[core.KeyArrowLeft] || !keys[core.KeyArrowDown] {
		t.Fatalf("held keys = %v, want ArrowLeft and ArrowDown", keys.Names())
	}

	t0 := time.Now()
	m, _ = send(t, m, TickMsg(t0))
	if len(m.Engine().Input().Keys.Names()) != 2 {
		t.Errorf("keys released after one frame: %v", m.Engine().Input().Keys.Names())
	}

	m, _ = send(t, m, TickMsg(t0.Add(400*time.Millisecond)))
	if names := m.Engine().Input().Keys.Names(); len(names) != 0 {
		t.Errorf("keys still held after the hold window: %v", names)
	}
}

func TestModelPauseToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, runeKey('p'))
	if got := m.Engine().Phase(); got != sentinel.PhasePaused {
		t.Fatalf("phase = %v, want paused", got)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view has no PAUSED banner")
	}

	m, _ = send(t, m, runeKey('p'))
	if got := m.Engine().Phase(); got != sentinel.PhasePlaying {
		t.Errorf("phase = %v, want playing", got)
	}
}

func TestModelAutoFireToggle(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.Engine().Input().AutoFire

	m, _ = send(t, m, runeKey('f'))
	if got := m.Engine().Input().AutoFire; got == before {
		t.Errorf("AutoFire = %v after toggle, want %v", got, !before)
	}
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back to menu during play")
	}

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back to menu ignored while paused")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}
	if cmd == nil {
		t.Error("quit returned no command")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, TickMsg(time.Now()))
	tick := m.Engine().Snapshot().Tick

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if got := m.Engine().Snapshot().Tick; got != tick {
		t.Errorf("resize reset the run: tick %d -> %d", tick, got)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines, want 30", lines)
	}
}

func TestNameEntry(t *testing.T) {
	snap := &sentinel.Snapshot{Score: 1200, TotalKills: 9}

	typeName := func(n NameEntry, s string) NameEntry {
		for _, r := range s {
			n, _ = n.Update(runeKey(r))
		}
		return n
	}

	t.Run("submit", func(t *testing.T) {
		n := typeName(NewNameEntry(snap), "ace")
		n, _ = n.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if !n.Done() {
			t.Fatal("not done after enter")
		}
		if got := n.Name(); got != "ACE" {
			t.Errorf("Name() = %q, want ACE", got)
		}
	})

	t.Run("empty name is not submitted", func(t *testing.T) {
		n := typeName(NewNameEntry(snap), "  ")
		n, _ = n.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if n.Done() {
			t.Error("blank name submitted")
		}
	})

	t.Run("skip", func(t *testing.T) {
		n := typeName(NewNameEntry(snap), "ace")
		n, _ = n.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if !n.Done() || n.Name() != "" {
			t.Errorf("after esc Done=%v Name=%q, want true and empty", n.Done(), n.Name())
		}
	})

	t.Run("length limit", func(t *testing.T) {
		n := typeName(NewNameEntry(snap), "maverick-goose")
		n, _ = n.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if got := n.Name(); got != "MAVERICK" {
			t.Errorf("Name() = %q, want MAVERICK", got)
		}
	})

	t.Run("view", func(t *testing.T) {
		view := NewNameEntry(snap).View(60, 20)
		if !strings.Contains(view, "SCORE 1200") {
			t.Error("view does not show the score")
		}
	})
}
