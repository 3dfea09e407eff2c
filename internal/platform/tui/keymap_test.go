package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/f47-sentinel/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestEngineKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
		ok   bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyArrowLeft, true},
		{"a", runeKey('a'), core.KeyArrowLeft, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyArrowRight, true},
		{"d", runeKey('d'), core.KeyArrowRight, true},
		{"screen up advances", tea.KeyMsg{Type: tea.KeyUp}, core.KeyArrowDown, true},
		{"w advances", runeKey('w'), core.KeyArrowDown, true},
		{"screen down retreats", tea.KeyMsg{Type: tea.KeyDown}, core.KeyArrowUp, true},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyFire, true},
		{"pause is not an engine key", runeKey('p'), "", false},
		{"unbound", runeKey('z'), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.EngineKey(tt.msg)
			if got != tt.want || ok != tt.ok {
				t.Errorf("EngineKey() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	h := heldKeys{}

	if !h.press(core.KeyArrowLeft) {
		t.Error("first press should report key down transition")
	}
	if h.press(core.KeyArrowLeft) {
		t.Error("autorepeat should not report a new transition")
	}

	if released := h.tick(holdWindow / 2); len(released) != 0 {
		t.Errorf("released %v before the hold window ran out", released)
	}

	// Autorepeat refreshes the window
	h.press(core.KeyArrowLeft)
	if released := h.tick(holdWindow * 0.75); len(released) != 0 {
		t.Errorf("released %v after a refresh", released)
	}

	h.press(core.KeyFire)
	released := h.tick(holdWindow)
	slices.Sort(released)
	want := []string{core.KeyFire, core.KeyArrowLeft}
	slices.Sort(want)
	if !slices.Equal(released, want) {
		t.Errorf("released = %v, want %v", released, want)
	}
	if len(h) != 0 {
		t.Errorf("held = %v, want empty", h)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		prev     time.Time
		now      time.Time
		tickRate int
		want     float64
	}{
		{"first tick", time.Time{}, t0, 30, 1.0 / 30.0},
		{"first tick default rate", time.Time{}, t0, 0, 1.0 / 60.0},
		{"real delta", t0, t0.Add(50 * time.Millisecond), 60, 0.05},
		{"clock went backwards", t0, t0.Add(-time.Second), 60, 1.0 / 60.0},
		{"same instant", t0, t0, 60, 1.0 / 60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frameDelta(tt.prev, tt.now, tt.tickRate)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("frameDelta() = %v, want %v", got, tt.want)
			}
		})
	}
}
