package core

import "fmt"

// chainLimit bounds push recursion. A legal chain can never be longer than
// the grid's longest axis, plus one for the cell being entered.
func (w *World) chainLimit() int {
	return w.Bounds().LongestAxis() + 1
}

// CanMove reports whether e can step one cell in dir, pushing any chain of
// movable actors ahead of it.
func (w *World) CanMove(e *Entity, dir V3i) bool {
	if dir.IsZero() {
		return false
	}
	return w.canMove(e, dir, w.chainLimit())
}

func (w *World) canMove(e *Entity, dir V3i, budget int) bool {
	if !e.Kind.IsMovable() || e.Destroyed {
		return false
	}
	if budget <= 0 {
		w.violation(fmt.Errorf("%w: entity %d at %s pushing %s", ErrChainTooDeep, e.ID, e.Pos, dir))
		return false
	}
	occ := w.At(e.Pos.Add(dir))
	if occ == nil {
		return true
	}
	if !occ.IsActor() {
		return false
	}
	return w.canMove(occ, dir, budget-1)
}

// Move steps e one cell in dir. The occupant of the destination moves first,
// so the far end of a push chain resolves before the near end. After a
// sideways or downward move, a gravity-affected actor resting on e's old
// cell is carried along when it can follow. Callers check CanMove first.
func (w *World) Move(e *Entity, dir V3i) {
	if dir.IsZero() {
		return
	}
	w.move(e, dir, w.chainLimit())
}

func (w *World) move(e *Entity, dir V3i, budget int) {
	if budget <= 0 {
		w.violation(fmt.Errorf("%w: entity %d at %s moving %s", ErrChainTooDeep, e.ID, e.Pos, dir))
		return
	}
	dest := e.Pos.Add(dir)
	if occ := w.At(dest); occ != nil && occ != e {
		w.move(occ, dir, budget-1)
		if w.At(dest) != nil {
			// The chain could not clear; leave e where it is.
			return
		}
		w.emit(EventPush, occ)
	}

	old := e.Pos
	w.relocate(e, dest)

	if dir == Up || e.Kind == KindPulse {
		return
	}
	rider := w.At(old.Add(Up))
	if rider != nil && rider.Kind.HasGravity() && w.canMove(rider, dir, budget) {
		w.move(rider, dir, budget)
	}
}
