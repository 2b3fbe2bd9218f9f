package core

import "fmt"

// Scope selects which entities a snapshot covers.
type Scope uint8

const (
	// ScopeActors covers actors and power blocks: everything a move or a
	// pulse can change.
	ScopeActors Scope = iota
	// ScopeAll covers the whole grid, used around rotations and for the
	// initial state.
	ScopeAll
)

// EntityState is a detached copy of an entity's simulation fields.
type EntityState struct {
	ID        int
	Kind      Kind
	Pos       V3i
	PrevPos   V3i
	Momentum  V3i
	Age       int
	Active    bool
	Destroyed bool
}

// Snapshot is a point-in-time record of a subset of the world. It shares no
// memory with live entities.
type Snapshot struct {
	Scope  Scope
	States []EntityState
}

// Len returns the number of recorded entities.
func (s Snapshot) Len() int {
	return len(s.States)
}

func (s Scope) covers(k Kind) bool {
	if s == ScopeAll {
		return true
	}
	return k.IsActor() || k == KindPower
}

// Capture records every live entity in scope, in id order.
func (w *World) Capture(scope Scope) Snapshot {
	snap := Snapshot{Scope: scope}
	for _, e := range w.Entities() {
		if e.Destroyed || !scope.covers(e.Kind) {
			continue
		}
		snap.States = append(snap.States, e.State())
	}
	return snap
}

// Restore puts the world back into the recorded state. Every recorded entity
// is first lifted off the grid, then restored and re-inserted, so entities
// that swapped cells since the capture never collide. In-scope entities that
// did not exist at capture time are removed; recorded entities that were
// pruned since are recreated with their original ids.
func (w *World) Restore(s Snapshot) {
	recorded := make(map[int]bool, len(s.States))
	for _, st := range s.States {
		recorded[st.ID] = true
	}

	for _, e := range w.Entities() {
		if s.Scope.covers(e.Kind) && !recorded[e.ID] {
			w.unregister(e)
		}
	}

	lifted := make(map[int]*Entity, len(s.States))
	for _, st := range s.States {
		if e := w.byID[st.ID]; e != nil {
			lifted[st.ID] = e
			w.unregister(e)
		}
	}

	for _, st := range s.States {
		e := lifted[st.ID]
		if e == nil {
			e = &Entity{}
		}
		before := e.State()
		e.apply(st)
		err := w.Insert(e)
		if err == nil {
			continue
		}
		w.violation(fmt.Errorf("restoring entity %d: %w", st.ID, err))
		// Something took the recorded cell since the snapshot. A lifted
		// entity goes back where it was instead of leaving the world.
		if lifted[st.ID] == nil {
			continue
		}
		e.apply(before)
		if err := w.Insert(e); err != nil {
			w.violation(fmt.Errorf("entity %d lost: %w", st.ID, err))
		}
	}
}
