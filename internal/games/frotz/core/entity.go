package core

// Entity is a single occupant of the grid: terrain, an actor or a pulse.
type Entity struct {
	ID        int
	Kind      Kind
	Pos       V3i // Current cell
	PrevPos   V3i // Cell occupied before the last move
	Momentum  V3i // Nonzero only for traveling pulses
	Age       int // Ticks since creation, used for pulse lifetime
	Active    bool
	Destroyed bool

	// Visual is owned by the presentation layer (animation, tessellation).
	// The simulation only resets it.
	Visual V3
}

// Orientation returns the mirror orientation of the entity, if any.
func (e *Entity) Orientation() Orientation {
	return e.Kind.Orientation()
}

// Facing returns the direction the entity faces; zero for non-mirrors.
func (e *Entity) Facing() V3i {
	return e.Kind.Orientation().Facing()
}

// IsActor reports whether the entity is simulated.
func (e *Entity) IsActor() bool {
	return e.Kind.IsActor()
}

// Moved reports whether the entity changed cells in its last move.
func (e *Entity) Moved() bool {
	return e.Pos != e.PrevPos
}

// State returns a detached copy of the entity's simulation fields.
func (e *Entity) State() EntityState {
	return EntityState{
		ID:        e.ID,
		Kind:      e.Kind,
		Pos:       e.Pos,
		PrevPos:   e.PrevPos,
		Momentum:  e.Momentum,
		Age:       e.Age,
		Active:    e.Active,
		Destroyed: e.Destroyed,
	}
}

// apply overwrites the simulation fields from a recorded state and snaps
// the visual position onto the grid.
func (e *Entity) apply(s EntityState) {
	e.ID = s.ID
	e.Kind = s.Kind
	e.Pos = s.Pos
	e.PrevPos = s.PrevPos
	e.Momentum = s.Momentum
	e.Age = s.Age
	e.Active = s.Active
	e.Destroyed = s.Destroyed
	e.Visual = s.Pos.Float()
}

// IsPlayer reports whether the entity is a wizard.
func (e *Entity) IsPlayer() bool {
	return e.Kind == KindWizard
}
