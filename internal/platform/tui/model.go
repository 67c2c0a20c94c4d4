package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	repeater   *Repeater
	frame      time.Duration
	inputFrame core.InputFrame
	gameState  core.GameState
	summary    table.Model
	epoch      int
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = logging.Discard()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		config:     cfg,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		repeater:   NewRepeater(cfg.Game.Handling),
		frame:      frameDuration(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.frame, m.epoch)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.epoch != m.epoch {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.screenHeight())
		return m, nil
	case key.Matches(msg, m.keys.Back) && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		m.logger.Info("back to menu", "game", m.game.ID(), "score", m.gameState.Score)
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
		return m, nil
	}

	m.repeater.Press(m.keys.Action(msg))
	return m, nil
}

// handleResize processes window resize events. The game adapts its layout
// on the next render, so a resize never restarts it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.screenHeight())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.repeater.Reset()
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.frame, m.epoch)
	}

	for _, a := range m.repeater.Tick(m.frame) {
		m.inputFrame.Add(a)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Score != prev.Score {
		m.logger.Debug("score", "game", m.game.ID(), "score", m.gameState.Score, "gained", m.gameState.Score-prev.Score)
	}
	if m.gameState.Paused != prev.Paused {
		m.logger.Debug("pause", "paused", m.gameState.Paused)
	}
	if m.gameState.GameOver && !prev.GameOver {
		m.summary = m.summaryTable()
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.frame, m.epoch)
}

// screenHeight leaves room for the help line.
func (m Model) screenHeight() int {
	if !m.config.Game.Display.ShowHelp {
		return m.config.ScreenH
	}
	lines := 1
	if m.help.ShowAll {
		lines = 4
	}
	return max(m.config.ScreenH-lines, 1)
}

// summaryTable builds the end-of-game statistics table.
func (m Model) summaryTable() table.Model {
	var stats []core.Stat
	if s, ok := m.game.(registry.Summarizer); ok {
		stats = s.Summary()
	} else {
		stats = []core.Stat{{Name: "Score", Value: fmt.Sprint(m.gameState.Score)}}
	}

	rows := make([]table.Row, len(stats))
	for i, s := range stats {
		rows[i] = table.Row{s.Name, s.Value}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Stat", Width: 10},
			{Title: "Value", Width: 12},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.gameState.GameOver && len(m.summary.Rows()) > 0 {
		b.WriteString(m.summaryView())
	} else {
		m.game.Render(m.screen)
		b.WriteString(RenderScreen(m.screen))
	}

	if m.config.Game.Display.ShowHelp {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// summaryView renders the statistics table centered in the game area.
func (m Model) summaryView() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("GAME OVER · "+m.game.Title()),
		boxStyle.Render(m.summary.View()),
		hintStyle.Render(m.summaryHint()),
	)
	return lipgloss.Place(m.config.ScreenW, m.screen.Height(), lipgloss.Center, lipgloss.Center, body)
}

func (m Model) summaryHint() string {
	if m.keys.Back.Enabled() {
		return "r restart · b menu · q quit"
	}
	return "r restart · q quit"
}

// BackToMenu reports whether the player asked to leave for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Quitting reports whether the player quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
