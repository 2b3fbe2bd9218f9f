package core

// rotate turns every registered entity a quarter turn clockwise around the
// bounds of the occupied grid. Positions, momentum, mirror orientation and
// the visual position all turn together, and the cell map is rebuilt in one
// pass so entities trading places never collide.
func (w *World) rotate() {
	b := w.Bounds()
	w.cells = make(map[V3i]*Entity, len(w.cells))
	for _, e := range w.Entities() {
		e.Pos = RotatePos(b, e.Pos)
		e.PrevPos = RotatePos(b, e.PrevPos)
		e.Visual = RotateVisual(b, e.Visual)
		e.Momentum = RotateDir(e.Momentum)
		e.Kind = e.Kind.WithOrientation(e.Orientation().RotateRight())
		if !e.Destroyed {
			w.cells[e.Pos] = e
		}
	}
}
