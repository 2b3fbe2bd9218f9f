package core

// EventType classifies something observable that happened in the simulation.
// Audio and animation collaborators consume these; the core never does.
type EventType uint8

const (
	EventStep EventType = iota + 1
	EventPush
	EventFall
	EventPulseFired
	EventPulseFizzled
	EventReflect
	EventPowerToggled
	EventElevator
	EventUndo
	EventReset
	EventRotate
	EventWin
	EventLose
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventStep:
		return "step"
	case EventPush:
		return "push"
	case EventFall:
		return "fall"
	case EventPulseFired:
		return "pulse_fired"
	case EventPulseFizzled:
		return "pulse_fizzled"
	case EventReflect:
		return "reflect"
	case EventPowerToggled:
		return "power_toggled"
	case EventElevator:
		return "elevator"
	case EventUndo:
		return "undo"
	case EventReset:
		return "reset"
	case EventRotate:
		return "rotate"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Event records one occurrence.
type Event struct {
	Type     EventType
	EntityID int
	Pos      V3i
}
