package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/f47-sentinel/internal/core"
)

// holdWindow is how long a press keeps a key down. Terminals report presses
// and autorepeat but never releases, so a key is released when it stops repeating.
const holdWindow = 0.3

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Fire     key.Binding
	AutoFire key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.AutoFire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.AutoFire, k.Pause},
		{k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "advance"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "retreat"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		AutoFire: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "auto-fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "new run"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// EngineKey maps a key message to the engine key it holds.
// The field is drawn with the enemy edge on top, so screen-up advances
// toward +z, which is the engine's ArrowDown.
func (k KeyMap) EngineKey(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyArrowLeft, true
	case key.Matches(msg, k.Right):
		return core.KeyArrowRight, true
	case key.Matches(msg, k.Up):
		return core.KeyArrowDown, true
	case key.Matches(msg, k.Down):
		return core.KeyArrowUp, true
	case key.Matches(msg, k.Fire):
		return core.KeyFire, true
	}
	return "", false
}

// heldKeys tracks the remaining hold time of each pressed engine key.
type heldKeys map[string]float64

// press marks name as held for a full window. It reports whether the key was up.
func (h heldKeys) press(name string) bool {
	_, wasDown := h[name]
	h[name] = holdWindow
	return !wasDown
}

// tick ages every held key by dt and returns the keys that expired.
func (h heldKeys) tick(dt float64) []string {
	var released []string
	for name, left := range h {
		left -= dt
		if left <= 0 {
			delete(h, name)
			released = append(released, name)
			continue
		}
		h[name] = left
	}
	return released
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
