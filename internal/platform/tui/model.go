package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/f47-sentinel/internal/core"
	"github.com/vovakirdan/f47-sentinel/internal/games/sentinel"
)

// EngineFactory builds a fresh engine for a new run.
type EngineFactory func() *sentinel.Engine

// Model is the Bubble Tea model for one sentinel run and its restarts.
type Model struct {
	newEngine  EngineFactory
	engine     *sentinel.Engine
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	held       heldKeys
	help       help.Model
	entry      *NameEntry
	lastTick   time.Time
	scoreSaved bool // score handled for the current game over
	quitting   bool
	backToMenu bool
}

// NewModel creates a model that starts a run from newEngine on Init.
func NewModel(newEngine EngineFactory, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		newEngine: newEngine,
		engine:    newEngine(),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      DefaultKeyMap(),
		held:      heldKeys{},
		help:      h,
	}
}

// Init starts the run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.engine.StartGame()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entry != nil {
			return m.updateEntry(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.entry != nil {
		entry, cmd := m.entry.Update(msg)
		m.entry = &entry
		return m, cmd
	}
	return m, nil
}

// handleKey processes in-game keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.engine.Phase()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if phase == sentinel.PhasePaused {
			m.engine.ResumeGame()
		} else {
			m.engine.PauseGame()
		}
		return m, nil

	case key.Matches(msg, m.keys.AutoFire):
		m.engine.SetAutoFire(!m.engine.Input().AutoFire)
		return m, nil

	case key.Matches(msg, m.keys.Restart) && phase == sentinel.PhaseGameOver:
		m.restart()
		return m, nil

	case key.Matches(msg, m.keys.Back) && (phase == sentinel.PhaseGameOver || phase == sentinel.PhasePaused):
		m.backToMenu = true
		return m, tea.Quit
	}

	if name, ok := m.keys.EngineKey(msg); ok {
		if m.held.press(name) {
			m.engine.SetKey(name, true)
		}
	}
	return m, nil
}

// updateEntry routes keys to the name prompt and saves the score when done.
func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	entry, cmd := m.entry.Update(msg)
	m.entry = &entry
	if entry.Done() {
		if name := entry.Name(); name != "" {
			m.engine.SaveScore(name)
		}
		m.entry = nil
	}
	return m, cmd
}

// handleTick advances the simulation by the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	for _, name := range m.held.tick(dt) {
		m.engine.SetKey(name, false)
	}
	m.engine.Update(dt)

	// Ask for a name once per game over
	s := m.engine.Snapshot()
	if s.Phase == sentinel.PhaseGameOver && !m.scoreSaved {
		m.scoreSaved = true
		m.engine.ReleaseAllKeys()
		clear(m.held)
		if s.Score > 0 {
			entry := NewNameEntry(s)
			m.entry = &entry
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run on a fresh engine.
func (m *Model) restart() {
	autoFire := m.engine.Input().AutoFire
	m.engine = m.newEngine()
	m.engine.SetAutoFire(autoFire)
	m.engine.StartGame()
	m.scoreSaved = false
	m.entry = nil
	clear(m.held)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.engine.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".sentinel", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("sentinel_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.entry != nil {
		return m.entry.View(m.config.ScreenW, m.config.ScreenH)
	}

	m.engine.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.engine.Phase() == sentinel.PhasePaused {
		out += "\n" + subtleStyle.Render(m.help.View(m.keys))
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Engine returns the engine of the current run.
func (m Model) Engine() *sentinel.Engine {
	return m.engine
}

// Run plays runs until the user quits or goes back to the menu.
// It returns true when the user asked for the menu.
func Run(newEngine EngineFactory, cfg core.RuntimeConfig) (bool, error) {
	p := tea.NewProgram(
		NewModel(newEngine, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
