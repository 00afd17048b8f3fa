package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tetrus-game/tetrus/internal/core"
	"github.com/tetrus-game/tetrus/internal/game"
	"github.com/tetrus-game/tetrus/internal/storage"
)

// Model is the Bubble Tea model for a tetrus run. It owns the game session
// and translates terminal events into the session's Apply/Advance API. Key
// presses apply immediately; the tick loop only moves the clock.
type Model struct {
	rules    game.Rules
	session  *game.Session
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     *KeyMapper
	quitting bool
	runSaved bool // Whether the finished run has been persisted
}

// NewModel creates a Bubble Tea model for the given ruleset.
func NewModel(rules game.Rules, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	session, err := game.NewSession(rules, cfg.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot start session: %w", err)
	}

	return Model{
		rules:   rules,
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		keys:    NewKeyMapper(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, hardQuit := m.keys.MapKey(msg)
	if hardQuit {
		m.saveFinishedRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		// First q abandons the run; on the game-over screen it exits
		if m.session.Over() {
			m.quitting = true
			return m, tea.Quit
		}
		m.session.Apply(core.ActionQuit)
		m.saveFinishedRun()
		return m, nil

	case core.ActionRestart:
		if m.session.Over() {
			return m.restart()
		}
		return m, nil

	default:
		m.session.Apply(action)
		m.saveFinishedRun()
		return m, nil
	}
}

// handleResize processes window resize events. The session is independent of
// the terminal surface, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the session clock by one tick interval.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Advance(time.Second / time.Duration(m.config.TickRate))
	m.saveFinishedRun()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a fresh run with a new seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	session, err := game.NewSession(m.rules, m.config.Seed)
	if err != nil {
		// The rules were valid for the first session, so they are valid now
		return m, nil
	}
	m.session = session
	m.runSaved = false
	return m, nil
}

// saveFinishedRun persists the run once it ends, at most once per run.
func (m *Model) saveFinishedRun() {
	if !m.session.Over() || m.runSaved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the game-over screen shows regardless
	m.store.SaveSession(m.session)
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one interactive run.
func Run(rules game.Rules, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewModel(rules, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
