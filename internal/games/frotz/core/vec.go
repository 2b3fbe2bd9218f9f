// Package core provides the simulation core for the frotz puzzle game.
// It owns the 3D grid of entities and resolves movement, gravity, pulses,
// win/lose detection and undo. The package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"math"
)

// V3i is an integer grid coordinate. It is comparable and used directly as a map key.
// X grows to the right, Y grows toward the viewer (back), Z grows upward.
type V3i struct {
	X int
	Y int
	Z int
}

// Grid directions.
var (
	Zero    = V3i{0, 0, 0}
	Up      = V3i{0, 0, 1}
	Down    = V3i{0, 0, -1}
	Forward = V3i{0, -1, 0}
	Back    = V3i{0, 1, 0}
	Right   = V3i{1, 0, 0}
	Left    = V3i{-1, 0, 0}
)

// V is a convenience constructor for V3i.
func V(x, y, z int) V3i {
	return V3i{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v V3i) Add(o V3i) V3i {
	return V3i{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v V3i) Sub(o V3i) V3i {
	return V3i{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Neg returns -v.
func (v V3i) Neg() V3i {
	return V3i{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// IsZero reports whether all components are zero.
func (v V3i) IsZero() bool {
	return v == Zero
}

// Less orders coordinates bottom layer first, then row, then column.
func (v V3i) Less(o V3i) bool {
	if v.Z != o.Z {
		return v.Z < o.Z
	}
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.X < o.X
}

// Float converts to a presentation vector.
func (v V3i) Float() V3 {
	return V3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// String returns a string representation of the coordinate.
func (v V3i) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// V3 is a real-valued vector carried for the presentation layer.
// The simulation never reads it.
type V3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns v + o.
func (v V3) Add(o V3) V3 {
	return V3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v V3) Sub(o V3) V3 {
	return V3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Mul scales v by n.
func (v V3) Mul(n float64) V3 {
	return V3{X: v.X * n, Y: v.Y * n, Z: v.Z * n}
}

// Round snaps to the nearest grid coordinate.
func (v V3) Round() V3i {
	return V3i{
		X: int(math.Round(v.X)),
		Y: int(math.Round(v.Y)),
		Z: int(math.Round(v.Z)),
	}
}

// Bounds is an inclusive axis-aligned box of grid cells.
type Bounds struct {
	Min V3i
	Max V3i
}

// Span returns the number of cells along each axis.
func (b Bounds) Span() V3i {
	return V3i{
		X: b.Max.X - b.Min.X + 1,
		Y: b.Max.Y - b.Min.Y + 1,
		Z: b.Max.Z - b.Min.Z + 1,
	}
}

// LongestAxis returns the largest span.
func (b Bounds) LongestAxis() int {
	s := b.Span()
	return max(s.X, s.Y, s.Z)
}

// Contains reports whether p lies inside the box.
func (b Bounds) Contains(p V3i) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// RotatePos turns p a quarter turn clockwise (seen from above) inside b.
// The x range of the result is b's y range and vice versa, so four turns
// with freshly computed bounds return every cell to where it started.
func RotatePos(b Bounds, p V3i) V3i {
	return V3i{
		X: b.Max.Y + b.Min.Y - p.Y,
		Y: p.X,
		Z: p.Z,
	}
}

// RotateVisual applies the same quarter turn to a presentation vector.
func RotateVisual(b Bounds, p V3) V3 {
	return V3{
		X: float64(b.Max.Y+b.Min.Y) - p.Y,
		Y: p.X,
		Z: p.Z,
	}
}

// RotateDir turns a direction vector a quarter turn, matching RotatePos.
func RotateDir(d V3i) V3i {
	return V3i{X: -d.Y, Y: d.X, Z: d.Z}
}
