package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/frotz/internal/core"
)

// GameKeyMap defines the key bindings used while a puzzle is open.
type GameKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	FireUp      key.Binding
	FireDown    key.Binding
	FireLeft    key.Binding
	FireRight   key.Binding
	Undo        key.Binding
	Reset       key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Next        key.Binding
	Confirm     key.Binding
	Pause       key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.FireUp, k.Undo, k.Reset, k.Next, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.FireUp, k.FireDown, k.FireLeft, k.FireRight},
		{k.Undo, k.Reset, k.RotateLeft, k.RotateRight},
		{k.Next, k.Pause, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default puzzle bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "walk north")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "walk south")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "walk west")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "walk east")),
		FireUp:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "fire north")),
		FireDown:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "fire south")),
		FireLeft:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "fire west")),
		FireRight:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "fire east")),
		Undo:        key.NewBinding(key.WithKeys("u", "z", "backspace"), key.WithHelp("u", "undo")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		RotateLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "rotate left")),
		RotateRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "rotate right")),
		Next:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next puzzle")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Pause:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.FireUp):
		return core.ActionFireUp, false
	case key.Matches(msg, k.FireDown):
		return core.ActionFireDown, false
	case key.Matches(msg, k.FireLeft):
		return core.ActionFireLeft, false
	case key.Matches(msg, k.FireRight):
		return core.ActionFireRight, false
	case key.Matches(msg, k.Undo):
		return core.ActionUndo, false
	case key.Matches(msg, k.Reset):
		return core.ActionReset, false
	case key.Matches(msg, k.RotateLeft):
		return core.ActionRotateLeft, false
	case key.Matches(msg, k.RotateRight):
		return core.ActionRotateRight, false
	case key.Matches(msg, k.Next):
		return core.ActionNext, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && action != core.ActionBack {
		frame.Set(action)
	}
	return isQuit
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
	MenuActionSolves
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k", "w":
		return MenuActionUp
	case "down", "j", "s":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionSolves
	}
	return MenuActionNone
}
