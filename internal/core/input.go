package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFireUp
	ActionFireDown
	ActionFireLeft
	ActionFireRight
	ActionUndo
	ActionReset
	ActionRotateLeft
	ActionRotateRight
	ActionNext
	ActionConfirm
	ActionBack
	ActionQuit
	ActionPause
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionFireUp:      "FireUp",
	ActionFireDown:    "FireDown",
	ActionFireLeft:    "FireLeft",
	ActionFireRight:   "FireRight",
	ActionUndo:        "Undo",
	ActionReset:       "Reset",
	ActionRotateLeft:  "RotateLeft",
	ActionRotateRight: "RotateRight",
	ActionNext:        "Next",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// IsMove reports whether the action steps the player.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// IsFire reports whether the action shoots a pulse.
func (a Action) IsFire() bool {
	return a >= ActionFireUp && a <= ActionFireRight
}

// InputFrame represents the input collected during one frame.
// Actions keep the order they were pressed in.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{Actions: append([]Action(nil), f.Actions...)}
}
