package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for `blockfall menu` and for SSH sessions.
type SessionModel struct {
	// config.Game holds the loaded rules before any difficulty preset.
	config   core.RuntimeConfig
	logger   *log.Logger
	menu     MenuModel
	game     *Model
	epoch    int
	quitting bool
}

// NewSessionModel creates a session that opens on the menu with preset
// preselected.
func NewSessionModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = logging.Discard()
	}
	return SessionModel{
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH, preset),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		// The menu keeps its size while hidden.
		next, _ := m.menu.Update(wsm)
		m.menu = next.(MenuModel)
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		return m, nil
	}

	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	sel, ok := m.menu.Selected()
	if !ok {
		return m, cmd
	}
	return m.startGame(sel)
}

// startGame creates the selected mode with its difficulty applied.
func (m SessionModel) startGame(sel MenuSelection) (tea.Model, tea.Cmd) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		// Shouldn't happen since the menu only lists registered modes
		m.logger.Error("create game", "error", err)
		m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, sel.Difficulty)
		return m, nil
	}

	cfg := m.config
	config.ApplyTetrisPreset(&cfg.Game, sel.Difficulty)

	m.epoch++
	gm := NewModel(game, cfg, m.logger)
	gm.epoch = m.epoch
	gm.keys.Back.SetEnabled(true)
	m.game = &gm

	m.logger.Info("mode selected", "game", sel.GameID, "difficulty", difficultyLabel(sel.Difficulty))
	return m, gm.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(Model)
	m.game = &gm

	if gm.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if gm.BackToMenu() {
		m.game = nil
		m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, m.menu.Difficulty())
		return m, m.menu.Init()
	}

	return m, cmd
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// RunSession starts the menu-driven program locally.
func RunSession(cfg core.RuntimeConfig, preset config.DifficultyPreset, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, preset, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
