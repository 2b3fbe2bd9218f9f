package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPlayer is returned by player operations on a puzzle without a wizard.
	ErrNoPlayer = errors.New("puzzle has no player")

	// ErrUnpairedMirror reports a mirror class that does not hold exactly two mirrors.
	ErrUnpairedMirror = errors.New("mirror class is not paired")

	// ErrChainTooDeep reports a push chain longer than the grid allows.
	ErrChainTooDeep = errors.New("push chain exceeds grid extent")

	// ErrIndexCorrupt reports a broken cell/entity bijection.
	ErrIndexCorrupt = errors.New("world index is inconsistent")
)

// OccupiedCellError is returned when inserting into a cell that already
// holds a live entity.
type OccupiedCellError struct {
	Pos      V3i
	Occupant Kind
}

func (e *OccupiedCellError) Error() string {
	return fmt.Sprintf("cell %s already occupied by %s", e.Pos, e.Occupant)
}

// UnknownKindError is returned when a serialized entity type is not recognized.
type UnknownKindError struct {
	Tag   string
	Index int // Position in the entity list
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown entity type %q at index %d", e.Tag, e.Index)
}
