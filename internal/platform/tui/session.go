package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frotz/internal/core"
	"github.com/vovakirdan/frotz/internal/games/frotz"
	"github.com/vovakirdan/frotz/internal/storage"
)

// NewGame creates a puzzle game whose progress is persisted in store.
func NewGame(store *storage.Store, s frotz.Settings, player string) *frotz.Game {
	return frotz.NewWithSettings(PersistentSettings(store, s, player))
}

// PersistentSettings wraps the hooks of s so that every opened level
// becomes the "last puzzle" and every solve is recorded under player.
// A nil store leaves s unchanged.
func PersistentSettings(store *storage.Store, s frotz.Settings, player string) frotz.Settings {
	if store == nil {
		return s
	}
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	onLevel, onSolve := s.OnLevel, s.OnSolve
	s.OnLevel = func(id string) {
		if err := store.SetLastPuzzle(id); err != nil {
			logger.Warn("could not save last puzzle", "id", id, "err", err)
		}
		if onLevel != nil {
			onLevel(id)
		}
	}
	s.OnSolve = func(sv frotz.Solved) {
		_, err := store.RecordSolve(storage.Solve{
			PuzzleID: sv.PuzzleID,
			Player:   player,
			Moves:    sv.Stats.Moves,
			Pulses:   sv.Stats.Pulses,
			Undos:    sv.Stats.Undos,
			Ticks:    sv.Stats.Ticks,
		})
		if err != nil {
			logger.Warn("could not record solve", "id", sv.PuzzleID, "err", err)
		}
		if onSolve != nil {
			onSolve(sv)
		}
	}
	return s
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewSolves
	viewGame
)

// SessionModel manages the full session flow: picker -> puzzle -> picker,
// with the solve board one key away. It is the top-level model for the
// menu command and for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	settings frotz.Settings
	config   core.RuntimeConfig
	player   string
	view     sessionView
	menu     MenuModel
	solves   SolvesModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, s frotz.Settings, cfg core.RuntimeConfig, player string) SessionModel {
	return SessionModel{
		store:    store,
		settings: s,
		config:   cfg,
		player:   player,
		menu:     NewMenuModel(store, s, cfg),
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
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewSolves:
		return m.updateSolves(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsSolves() {
		m.solves = NewSolvesModel(m.store, m.settings, m.config.ScreenW, m.config.ScreenH)
		m.view = viewSolves
		return m, m.solves.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		s := m.settings
		s.Start = selected.ID
		game := NewModel(NewGame(m.store, s, m.player), m.config)
		m.game = &game
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateSolves handles updates when the solve board is open.
func (m SessionModel) updateSolves(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.solves.Update(msg)
	if board, ok := next.(SolvesModel); ok {
		m.solves = board
	}

	if m.solves.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.solves.IsGoingBack() {
		return m.showMenu()
	}
	return m, cmd
}

// updateGame handles updates when a puzzle is open.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = &game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.showMenu()
	}
	return m, cmd
}

func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.store, m.settings, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if m.game != nil {
			return m.game.View()
		}
	case viewSolves:
		return m.solves.View()
	}
	return m.menu.View()
}

// RunSession runs the picker, puzzles and solve board in one program.
func RunSession(store *storage.Store, s frotz.Settings, cfg core.RuntimeConfig, player string) error {
	p := tea.NewProgram(
		NewSessionModel(store, s, cfg, player),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
