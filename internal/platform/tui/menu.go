package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// difficulties lists the presets the menu cycles through. The empty preset
// plays the loaded config unchanged.
var difficulties = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// MenuSelection is what the player picked.
type MenuSelection struct {
	GameID     string
	Difficulty config.DifficultyPreset
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int
	width      int
	height     int
	keys       MenuKeyMap
	help       help.Model
	selected   *MenuSelection
	quitting   bool
}

// NewMenuModel creates a menu over every registered mode, starting at
// the given difficulty.
func NewMenuModel(width, height int, preset config.DifficultyPreset) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}

	m := MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	for i, d := range difficulties {
		if d == preset {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Easier):
		if m.difficulty > 0 {
			m.difficulty--
		}
	case key.Matches(msg, m.keys.Harder):
		if m.difficulty < len(difficulties)-1 {
			m.difficulty++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			m.selected = &MenuSelection{
				GameID:     m.items[m.cursor].GameID,
				Difficulty: m.Difficulty(),
			}
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")).MarginBottom(1)
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var list strings.Builder
	for i, item := range m.items {
		title := fmt.Sprintf("  %-10s", item.Title)
		if i == m.cursor {
			title = cursorStyle.Render(fmt.Sprintf("> %-10s", item.Title))
		}
		list.WriteString(title + " " + dimStyle.Render(item.Description) + "\n")
	}
	if len(m.items) == 0 {
		list.WriteString(dimStyle.Render("No modes available.") + "\n")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("B L O C K F A L L"),
		list.String(),
		"Difficulty  "+cursorStyle.Render("‹ "+difficultyLabel(m.Difficulty())+" ›"),
		"",
		m.help.View(m.keys),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func difficultyLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "config"
	}
	return string(p)
}

// Difficulty returns the preset currently shown.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// Selected returns the player's pick, if any.
func (m MenuModel) Selected() (MenuSelection, bool) {
	if m.selected == nil {
		return MenuSelection{}, false
	}
	return *m.selected, true
}

// Quitting returns true if user requested to quit.
func (m MenuModel) Quitting() bool {
	return m.quitting
}
