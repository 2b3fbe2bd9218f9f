package core

import (
	"fmt"
	"slices"
)

// entitySet is an id-keyed set with deterministic iteration.
type entitySet map[int]*Entity

func (s entitySet) sorted() []*Entity {
	out := make([]*Entity, 0, len(s))
	for _, e := range s {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *Entity) int { return a.ID - b.ID })
	return out
}

// World is the spatial index of a puzzle: a bijection between occupied cells
// and live entities, plus classification sets maintained on every insert and
// remove. Destroyed entities leave the cell map immediately but stay
// registered until Prune so the presentation can draw their last frame.
type World struct {
	cells  map[V3i]*Entity
	byID   map[int]*Entity
	nextID int

	actors    entitySet
	mirrors1  entitySet
	mirrors2  entitySet
	elevators entitySet
	powers    entitySet
	player    *Entity

	events      []Event
	onViolation func(error)
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		cells:     make(map[V3i]*Entity),
		byID:      make(map[int]*Entity),
		nextID:    1,
		actors:    make(entitySet),
		mirrors1:  make(entitySet),
		mirrors2:  make(entitySet),
		elevators: make(entitySet),
		powers:    make(entitySet),
	}
}

// Len returns the number of live entities on the grid.
func (w *World) Len() int {
	return len(w.cells)
}

// At returns the live entity at pos, or nil.
func (w *World) At(pos V3i) *Entity {
	return w.cells[pos]
}

// Above returns the live entity directly above pos, or nil.
func (w *World) Above(pos V3i) *Entity {
	return w.cells[pos.Add(Up)]
}

// Below returns the live entity directly below pos, or nil.
func (w *World) Below(pos V3i) *Entity {
	return w.cells[pos.Add(Down)]
}

// ByID returns a registered entity, including destroyed ones awaiting Prune.
func (w *World) ByID(id int) *Entity {
	return w.byID[id]
}

// Player returns the wizard the puzzle is controlled through, or nil.
func (w *World) Player() *Entity {
	return w.player
}

// Insert places e on the grid and registers it. An entity without an id
// gets the next free one. The target cell must be empty.
func (w *World) Insert(e *Entity) error {
	if occ, ok := w.cells[e.Pos]; ok && occ != e {
		return &OccupiedCellError{Pos: e.Pos, Occupant: occ.Kind}
	}
	if e.ID == 0 {
		e.ID = w.nextID
		w.nextID++
	} else if e.ID >= w.nextID {
		w.nextID = e.ID + 1
	}
	if prev, ok := w.byID[e.ID]; ok && prev != e {
		w.unregister(prev)
	}
	w.cells[e.Pos] = e
	w.byID[e.ID] = e
	w.classify(e)
	return nil
}

// Remove evicts the live entity at pos from the grid, every set and the
// registry. It is a no-op for an empty cell.
func (w *World) Remove(pos V3i) *Entity {
	e, ok := w.cells[pos]
	if !ok {
		return nil
	}
	w.unregister(e)
	return e
}

// Destroy marks e destroyed and frees its cell.
func (w *World) Destroy(e *Entity) {
	e.Destroyed = true
	if w.cells[e.Pos] == e {
		delete(w.cells, e.Pos)
	}
}

// Prune unregisters every destroyed entity and returns them in id order.
func (w *World) Prune() []*Entity {
	var dead []*Entity
	for _, e := range w.byID {
		if e.Destroyed {
			dead = append(dead, e)
		}
	}
	slices.SortFunc(dead, func(a, b *Entity) int { return a.ID - b.ID })
	for _, e := range dead {
		w.unregister(e)
	}
	return dead
}

// Entities returns every registered entity in id order.
func (w *World) Entities() []*Entity {
	return entitySet(w.byID).sorted()
}

// Actors returns the actor set in id order.
func (w *World) Actors() []*Entity {
	return w.actors.sorted()
}

// Powers returns the power blocks in id order.
func (w *World) Powers() []*Entity {
	return w.powers.sorted()
}

// Elevators returns the elevators in id order.
func (w *World) Elevators() []*Entity {
	return w.elevators.sorted()
}

// Mirrors returns the mirrors of one class in id order.
func (w *World) Mirrors(class int) []*Entity {
	switch class {
	case 1:
		return w.mirrors1.sorted()
	case 2:
		return w.mirrors2.sorted()
	default:
		return nil
	}
}

// Bounds scans all occupied cells. An empty world has zero bounds.
func (w *World) Bounds() Bounds {
	b, _ := w.bounds(func(*Entity) bool { return true })
	return b
}

// BoardBounds is Bounds without pulses in flight, so the extent of the
// board does not change while a shot travels past its edge. A world holding
// nothing but pulses falls back to Bounds.
func (w *World) BoardBounds() Bounds {
	if b, ok := w.bounds(func(e *Entity) bool { return e.Kind != KindPulse }); ok {
		return b
	}
	return w.Bounds()
}

func (w *World) bounds(keep func(*Entity) bool) (Bounds, bool) {
	found := false
	var b Bounds
	for p, e := range w.cells {
		if !keep(e) {
			continue
		}
		if !found {
			b = Bounds{Min: p, Max: p}
			found = true
			continue
		}
		b.Min = V3i{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = V3i{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b, found
}

// Rebuild recomputes every classification set from the registry.
func (w *World) Rebuild() {
	w.actors = make(entitySet)
	w.mirrors1 = make(entitySet)
	w.mirrors2 = make(entitySet)
	w.elevators = make(entitySet)
	w.powers = make(entitySet)
	w.player = nil
	for _, e := range w.Entities() {
		w.classify(e)
	}
}

// Check verifies the cell map, the registry and the classification sets
// agree with each other.
func (w *World) Check() error {
	for p, e := range w.cells {
		if e.Pos != p {
			return fmt.Errorf("%w: entity %d indexed at %s but positioned at %s", ErrIndexCorrupt, e.ID, p, e.Pos)
		}
		if e.Destroyed {
			return fmt.Errorf("%w: destroyed entity %d still indexed at %s", ErrIndexCorrupt, e.ID, p)
		}
		if w.byID[e.ID] != e {
			return fmt.Errorf("%w: entity %d at %s is not registered", ErrIndexCorrupt, e.ID, p)
		}
	}
	for id, e := range w.byID {
		if e.Destroyed {
			continue
		}
		if w.cells[e.Pos] != e {
			return fmt.Errorf("%w: live entity %d missing from cell %s", ErrIndexCorrupt, id, e.Pos)
		}
	}
	sets := []struct {
		name string
		set  entitySet
		want func(Kind) bool
	}{
		{"actors", w.actors, Kind.IsActor},
		{"mirrors1", w.mirrors1, func(k Kind) bool { return k.MirrorClass() == 1 }},
		{"mirrors2", w.mirrors2, func(k Kind) bool { return k.MirrorClass() == 2 }},
		{"elevators", w.elevators, func(k Kind) bool { return k == KindElevator }},
		{"powers", w.powers, func(k Kind) bool { return k == KindPower }},
	}
	for _, s := range sets {
		for id, e := range s.set {
			if w.byID[id] != e {
				return fmt.Errorf("%w: %s holds unregistered entity %d", ErrIndexCorrupt, s.name, id)
			}
			if !s.want(e.Kind) {
				return fmt.Errorf("%w: %s holds %s entity %d", ErrIndexCorrupt, s.name, e.Kind, id)
			}
		}
		for id, e := range w.byID {
			if s.want(e.Kind) && s.set[id] != e {
				return fmt.Errorf("%w: %s entity %d missing from %s", ErrIndexCorrupt, e.Kind, id, s.name)
			}
		}
	}
	if w.player != nil && w.byID[w.player.ID] != w.player {
		return fmt.Errorf("%w: player %d is not registered", ErrIndexCorrupt, w.player.ID)
	}
	return nil
}

// relocate moves e to dest without any rule checks. dest must be free.
func (w *World) relocate(e *Entity, dest V3i) {
	if occ, ok := w.cells[dest]; ok && occ != e {
		w.violation(fmt.Errorf("%w: relocating entity %d onto %s held by %d", ErrIndexCorrupt, e.ID, dest, occ.ID))
		return
	}
	if w.cells[e.Pos] == e {
		delete(w.cells, e.Pos)
	}
	e.PrevPos = e.Pos
	e.Pos = dest
	w.cells[dest] = e
}

func (w *World) classify(e *Entity) {
	k := e.Kind
	if k.IsActor() {
		w.actors[e.ID] = e
	}
	switch k.MirrorClass() {
	case 1:
		w.mirrors1[e.ID] = e
	case 2:
		w.mirrors2[e.ID] = e
	}
	switch k {
	case KindElevator:
		w.elevators[e.ID] = e
	case KindPower:
		w.powers[e.ID] = e
	case KindWizard:
		w.player = e
	}
}

func (w *World) unregister(e *Entity) {
	if w.cells[e.Pos] == e {
		delete(w.cells, e.Pos)
	}
	delete(w.byID, e.ID)
	delete(w.actors, e.ID)
	delete(w.mirrors1, e.ID)
	delete(w.mirrors2, e.ID)
	delete(w.elevators, e.ID)
	delete(w.powers, e.ID)
	if w.player == e {
		w.player = nil
		for _, other := range w.Entities() {
			if other.Kind == KindWizard && !other.Destroyed {
				w.player = other
				break
			}
		}
	}
}

func (w *World) emit(t EventType, e *Entity) {
	ev := Event{Type: t}
	if e != nil {
		ev.EntityID = e.ID
		ev.Pos = e.Pos
	}
	w.events = append(w.events, ev)
}

func (w *World) violation(err error) {
	if w.onViolation != nil {
		w.onViolation(err)
	}
}
