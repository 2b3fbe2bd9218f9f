package core

// Ground is the z level of the floor plane. An actor at or below it has
// fallen out of the puzzle.
const Ground = 0

// ApplyGravity drops e by at most one cell. It reports whether e moved.
func (w *World) ApplyGravity(e *Entity) bool {
	if !e.Kind.HasGravity() || e.Destroyed {
		return false
	}
	if e.Pos.Z <= Ground || w.Below(e.Pos) != nil {
		return false
	}
	w.Move(e, Down)
	w.emit(EventFall, e)
	return true
}
