package core

import (
	"fmt"
	"slices"
)

// DefaultPulseLifetime is how many ticks a pulse travels before it fizzles.
const DefaultPulseLifetime = 16

// Tick advances the world by one discrete step and reports whether anything
// moved or changed state. Phases run in a fixed order: pulse momentum, pulse
// lifetime, then gravity. Destroyed entities stay registered; call Prune once
// the presentation has consumed them.
func (w *World) Tick(pulseLifetime int) bool {
	active := false

	for _, e := range w.Actors() {
		if e.Destroyed || e.Momentum.IsZero() {
			continue
		}
		e.Age++
		w.advance(e)
		active = true
	}

	for _, e := range w.Actors() {
		if e.Kind != KindPulse || e.Destroyed {
			continue
		}
		if e.Age >= pulseLifetime {
			w.emit(EventPulseFizzled, e)
			w.Destroy(e)
			active = true
		}
	}

	fallers := w.Actors()
	slices.SortFunc(fallers, func(a, b *Entity) int {
		if a.Pos != b.Pos {
			if a.Pos.Less(b.Pos) {
				return -1
			}
			return 1
		}
		return a.ID - b.ID
	})
	for _, e := range fallers {
		if w.ApplyGravity(e) {
			active = true
		}
	}

	return active
}

// advance resolves one step of a traveling entity.
func (w *World) advance(p *Entity) {
	dir := p.Momentum
	dest := p.Pos.Add(dir)
	occ := w.At(dest)

	switch {
	case occ == nil:
		w.Move(p, dir)

	case occ.Kind == KindPower:
		occ.Active = !occ.Active
		w.emit(EventPowerToggled, occ)
		w.destroyPulse(p)
		w.updateElevators(occ.Active)

	case occ.Kind.IsMirror() && occ.Pos.Add(occ.Facing()) == p.Pos:
		w.reflect(p, occ)

	case occ.IsActor() && w.CanMove(occ, dir):
		w.Move(occ, dir)
		w.emit(EventPush, occ)
		w.destroyPulse(p)

	default:
		w.destroyPulse(p)
	}
}

// reflect sends p out of the partner of the mirror it entered.
func (w *World) reflect(p, mirror *Entity) {
	partner, err := w.partnerOf(mirror)
	if err != nil {
		w.violation(err)
		w.destroyPulse(p)
		return
	}
	exit := partner.Pos.Add(partner.Facing())
	if occ := w.At(exit); occ != nil && occ != p {
		w.destroyPulse(p)
		return
	}
	w.relocate(p, exit)
	p.Momentum = partner.Facing()
	w.emit(EventReflect, p)
}

// partnerOf finds the other live mirror of the same class.
func (w *World) partnerOf(mirror *Entity) (*Entity, error) {
	var live []*Entity
	for _, m := range w.Mirrors(mirror.Kind.MirrorClass()) {
		if !m.Destroyed {
			live = append(live, m)
		}
	}
	if len(live) != 2 {
		return nil, fmt.Errorf("%w: class %d has %d mirrors", ErrUnpairedMirror, mirror.Kind.MirrorClass(), len(live))
	}
	if live[0] == mirror {
		return live[1], nil
	}
	if live[1] == mirror {
		return live[0], nil
	}
	return nil, fmt.Errorf("%w: mirror %d is not in its class set", ErrUnpairedMirror, mirror.ID)
}

func (w *World) destroyPulse(p *Entity) {
	w.emit(EventPulseFizzled, p)
	w.Destroy(p)
}

// updateElevators raises every elevator one cell when power comes on and
// lowers it one cell when power goes off. Anything stacked on a rising
// elevator is lifted with it; riders of a sinking one fall under gravity.
func (w *World) updateElevators(on bool) {
	for _, el := range w.Elevators() {
		if el.Destroyed {
			continue
		}
		el.Active = on
		var moved bool
		if on {
			moved = w.raise(el)
		} else {
			moved = w.lower(el)
		}
		if moved {
			w.emit(EventElevator, el)
		}
	}
}

func (w *World) raise(el *Entity) bool {
	dest := el.Pos.Add(Up)
	if occ := w.At(dest); occ != nil {
		if !w.CanMove(occ, Up) {
			return false
		}
		w.Move(occ, Up)
	}
	w.relocate(el, dest)
	return true
}

func (w *World) lower(el *Entity) bool {
	dest := el.Pos.Add(Down)
	if dest.Z < Ground || w.At(dest) != nil {
		return false
	}
	w.relocate(el, dest)
	return true
}
