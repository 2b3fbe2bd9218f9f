package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/frotz/internal/core"
	"github.com/vovakirdan/frotz/internal/games/frotz"
	"github.com/vovakirdan/frotz/internal/storage"
)

// MenuItem represents a selectable puzzle in the menu.
type MenuItem struct {
	ID        string
	Name      string
	Solved    bool
	BestMoves int
}

// MenuModel is the Bubble Tea model for the puzzle picker.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	loadErr    error
	quitting   bool
	selected   *MenuItem // Set when user selects a puzzle
	openSolves bool      // True if user pressed Tab for the solve board
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	menuErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// NewMenuModel creates a picker over the configured campaign. Solved
// puzzles are marked from store, and the cursor starts on the last puzzle
// played.
func NewMenuModel(store *storage.Store, s frotz.Settings, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	campaign, err := s.Levels()
	if err != nil {
		m.loadErr = err
		return m
	}

	var stats map[string]*storage.PuzzleStats
	last := ""
	if store != nil {
		//nolint:errcheck // Menu still works without solve marks
		stats, _ = store.AllPuzzleStats()
		//nolint:errcheck // Falls back to the first puzzle
		last, _ = store.LastPuzzle()
	}

	m.items = make([]MenuItem, 0, len(campaign))
	for i, lvl := range campaign {
		item := MenuItem{ID: lvl.ID, Name: lvl.Name}
		if st, ok := stats[lvl.ID]; ok {
			item.Solved = true
			item.BestMoves = st.BestMoves
		}
		if lvl.ID == last {
			m.cursor = i
		}
		m.items = append(m.items, item)
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionSolves:
		m.openSolves = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  F R O T Z  "), m.width))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText(menuErrStyle.Render("Cannot load puzzles: "+m.loadErr.Error()), m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText(menuDimStyle.Render("Pick a puzzle"), m.width))
	b.WriteString("\n\n")

	// Keep the cursor visible on short terminals.
	first, last := visibleRange(len(m.items), m.cursor, max(m.height-9, 3))
	for i := first; i < last; i++ {
		item := m.items[i]
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = menuCurStyle
		}
		mark := "   "
		if item.Solved {
			mark = menuDoneStyle.Render(" ✓ ")
		}
		line := style.Render(fmt.Sprintf("%s%-24s", cursor, item.Name)) + mark
		if item.Solved {
			line += menuDimStyle.Render(fmt.Sprintf("%d moves", item.BestMoves))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Solves  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// visibleRange returns the window of n rows of size rows that shows cursor.
func visibleRange(n, cursor, rows int) (int, int) {
	if n <= rows {
		return 0, n
	}
	first := min(max(cursor-rows/2, 0), n-rows)
	return first, first + rows
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsSolves returns true if user requested the solve board.
func (m MenuModel) WantsSolves() bool {
	return m.openSolves
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Width is measured without
// ANSI escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
