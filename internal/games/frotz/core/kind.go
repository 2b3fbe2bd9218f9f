package core

import "strings"

// Orientation is the facing of a mirror on the grid.
type Orientation uint8

const (
	OrientNone Orientation = iota
	OrientNE
	OrientNW
	OrientSE
	OrientSW
)

// String returns the compass name of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientNE:
		return "NE"
	case OrientNW:
		return "NW"
	case OrientSE:
		return "SE"
	case OrientSW:
		return "SW"
	default:
		return ""
	}
}

// Facing returns the grid direction the orientation points to.
// NE faces forward (-y), NW left (-x), SE right (+x), SW back (+y).
func (o Orientation) Facing() V3i {
	switch o {
	case OrientNE:
		return Forward
	case OrientNW:
		return Left
	case OrientSE:
		return Right
	case OrientSW:
		return Back
	default:
		return Zero
	}
}

// RotateRight returns the orientation after a clockwise quarter turn of the grid.
func (o Orientation) RotateRight() Orientation {
	switch o {
	case OrientNE:
		return OrientSE
	case OrientSE:
		return OrientSW
	case OrientSW:
		return OrientNW
	case OrientNW:
		return OrientNE
	default:
		return o
	}
}

// Kind identifies what an entity is. The set is closed; per-kind behavior
// comes from the capability table rather than string inspection.
type Kind uint8

const (
	KindNone Kind = iota
	KindWizard
	KindBlock1
	KindBlock2
	KindBlock3
	KindBox
	KindMirror1NE
	KindMirror1NW
	KindMirror1SE
	KindMirror1SW
	KindMirror2NE
	KindMirror2NW
	KindMirror2SE
	KindMirror2SW
	KindPower
	KindElevator
	KindExit
	KindPulse

	kindCount
)

// kindInfo is the capability row for one kind.
type kindInfo struct {
	tag         string
	actor       bool // tracked in the actor set and simulated every tick
	movable     bool // can be displaced by a push chain
	gravity     bool
	mirrorClass int
	orient      Orientation
}

var kindTable = [kindCount]kindInfo{
	KindNone:      {tag: ""},
	KindWizard:    {tag: "WIZARD", actor: true, movable: true, gravity: true},
	KindBlock1:    {tag: "BLOCK_1"},
	KindBlock2:    {tag: "BLOCK_2"},
	KindBlock3:    {tag: "BLOCK_3"},
	KindBox:       {tag: "BOX", actor: true, movable: true, gravity: true},
	KindMirror1NE: {tag: "MIRROR_1_NE", actor: true, movable: true, gravity: true, mirrorClass: 1, orient: OrientNE},
	KindMirror1NW: {tag: "MIRROR_1_NW", actor: true, movable: true, gravity: true, mirrorClass: 1, orient: OrientNW},
	KindMirror1SE: {tag: "MIRROR_1_SE", actor: true, movable: true, gravity: true, mirrorClass: 1, orient: OrientSE},
	KindMirror1SW: {tag: "MIRROR_1_SW", actor: true, movable: true, gravity: true, mirrorClass: 1, orient: OrientSW},
	KindMirror2NE: {tag: "MIRROR_2_NE", actor: true, movable: true, gravity: true, mirrorClass: 2, orient: OrientNE},
	KindMirror2NW: {tag: "MIRROR_2_NW", actor: true, movable: true, gravity: true, mirrorClass: 2, orient: OrientNW},
	KindMirror2SE: {tag: "MIRROR_2_SE", actor: true, movable: true, gravity: true, mirrorClass: 2, orient: OrientSE},
	KindMirror2SW: {tag: "MIRROR_2_SW", actor: true, movable: true, gravity: true, mirrorClass: 2, orient: OrientSW},
	KindPower:     {tag: "POWER"},
	KindElevator:  {tag: "ELEVATOR", actor: true},
	KindExit:      {tag: "EXIT"},
	KindPulse:     {tag: "PULSE", actor: true, movable: true},
}

// tagToKind is built once from kindTable. Legacy single-class mirror tags
// map to class 1.
var tagToKind = func() map[string]Kind {
	m := make(map[string]Kind, kindCount+4)
	for k := KindWizard; k < kindCount; k++ {
		m[kindTable[k].tag] = k
	}
	m["MIRROR_NE"] = KindMirror1NE
	m["MIRROR_NW"] = KindMirror1NW
	m["MIRROR_SE"] = KindMirror1SE
	m["MIRROR_SW"] = KindMirror1SW
	return m
}()

// ParseKind resolves a serialization tag. Matching is case-insensitive.
func ParseKind(tag string) (Kind, bool) {
	k, ok := tagToKind[strings.ToUpper(strings.TrimSpace(tag))]
	return k, ok
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindWizard; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k > KindNone && k < kindCount
}

func (k Kind) info() kindInfo {
	if !k.Valid() {
		return kindTable[KindNone]
	}
	return kindTable[k]
}

// Tag returns the serialization name of the kind.
func (k Kind) Tag() string { return k.info().tag }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return "UNKNOWN"
	}
	return k.Tag()
}

// IsActor reports whether entities of this kind are simulated.
func (k Kind) IsActor() bool { return k.info().actor }

// IsMovable reports whether entities of this kind can be pushed.
func (k Kind) IsMovable() bool { return k.info().movable }

// HasGravity reports whether entities of this kind fall when unsupported.
func (k Kind) HasGravity() bool { return k.info().gravity }

// IsMirror reports whether the kind is a mirror of either class.
func (k Kind) IsMirror() bool { return k.info().mirrorClass != 0 }

// MirrorClass returns 1 or 2 for mirrors, 0 otherwise.
func (k Kind) MirrorClass() int { return k.info().mirrorClass }

// Orientation returns the mirror orientation, or OrientNone.
func (k Kind) Orientation() Orientation { return k.info().orient }

// IsBlock reports whether the kind is one of the static terrain blocks.
func (k Kind) IsBlock() bool {
	return k == KindBlock1 || k == KindBlock2 || k == KindBlock3
}

// WithOrientation returns the mirror kind of the same class facing o.
// Kinds without an orientation are returned unchanged.
func (k Kind) WithOrientation(o Orientation) Kind {
	class := k.MirrorClass()
	if class == 0 || o == OrientNone {
		return k
	}
	base := KindMirror1NE
	if class == 2 {
		base = KindMirror2NE
	}
	switch o {
	case OrientNE:
		return base
	case OrientNW:
		return base + 1
	case OrientSE:
		return base + 2
	default:
		return base + 3
	}
}
