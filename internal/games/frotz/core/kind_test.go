package core_test

import (
	"testing"

	"github.com/vovakirdan/frotz/internal/games/frotz/core"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		tag      string
		expected core.Kind
		ok       bool
	}{
		{"WIZARD", core.KindWizard, true},
		{"wizard", core.KindWizard, true},
		{" BLOCK_2 ", core.KindBlock2, true},
		{"MIRROR_2_SW", core.KindMirror2SW, true},
		{"MIRROR_NE", core.KindMirror1NE, true},
		{"mirror_sw", core.KindMirror1SW, true},
		{"PULSE", core.KindPulse, true},
		{"DRAGON", core.KindNone, false},
		{"", core.KindNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := core.ParseKind(tt.tag)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("got (%s, %v), expected (%s, %v)", got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestKindTagsResolveBack(t *testing.T) {
	for _, k := range core.Kinds() {
		got, ok := core.ParseKind(k.Tag())
		if !ok || got != k {
			t.Errorf("tag %q resolved to %s, expected %s", k.Tag(), got, k)
		}
	}
}

func TestKindCapabilities(t *testing.T) {
	tests := []struct {
		kind        core.Kind
		actor       bool
		movable     bool
		gravity     bool
		mirrorClass int
	}{
		{core.KindWizard, true, true, true, 0},
		{core.KindBox, true, true, true, 0},
		{core.KindBlock1, false, false, false, 0},
		{core.KindMirror1NW, true, true, true, 1},
		{core.KindMirror2SE, true, true, true, 2},
		{core.KindPower, false, false, false, 0},
		{core.KindElevator, true, false, false, 0},
		{core.KindExit, false, false, false, 0},
		{core.KindPulse, true, true, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsActor(); got != tt.actor {
				t.Errorf("IsActor: got %v, expected %v", got, tt.actor)
			}
			if got := tt.kind.IsMovable(); got != tt.movable {
				t.Errorf("IsMovable: got %v, expected %v", got, tt.movable)
			}
			if got := tt.kind.HasGravity(); got != tt.gravity {
				t.Errorf("HasGravity: got %v, expected %v", got, tt.gravity)
			}
			if got := tt.kind.MirrorClass(); got != tt.mirrorClass {
				t.Errorf("MirrorClass: got %d, expected %d", got, tt.mirrorClass)
			}
		})
	}
}

func TestWithOrientationKeepsClass(t *testing.T) {
	if got := core.KindMirror2NE.WithOrientation(core.OrientSW); got != core.KindMirror2SW {
		t.Errorf("got %s, expected %s", got, core.KindMirror2SW)
	}
	if got := core.KindMirror1SW.WithOrientation(core.OrientNW); got != core.KindMirror1NW {
		t.Errorf("got %s, expected %s", got, core.KindMirror1NW)
	}
	if got := core.KindBox.WithOrientation(core.OrientNE); got != core.KindBox {
		t.Errorf("non-mirror changed kind: got %s", got)
	}
}

func TestOrientationRotatesFullCircle(t *testing.T) {
	o := core.OrientNE
	seen := []core.Orientation{o}
	for range 3 {
		o = o.RotateRight()
		seen = append(seen, o)
	}
	expected := []core.Orientation{core.OrientNE, core.OrientSE, core.OrientSW, core.OrientNW}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("step %d: got %s, expected %s", i, seen[i], expected[i])
		}
	}
	if o.RotateRight() != core.OrientNE {
		t.Errorf("four turns did not return to NE")
	}
}
