package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/frotz/internal/games/frotz/core"
)

func TestPushChain(t *testing.T) {
	p := newPuzzle(t, append(floor(6),
		at(core.KindWizard, 0, 0, 1),
		at(core.KindBox, 1, 0, 1),
		at(core.KindBox, 2, 0, 1),
	)...)

	moved, err := p.MovePlayer(core.Right)
	if err != nil || !moved {
		t.Fatalf("MovePlayer: got (%v, %v), expected (true, nil)", moved, err)
	}
	expected := map[core.V3i]core.Kind{
		core.V(0, 0, 1): core.KindNone,
		core.V(1, 0, 1): core.KindWizard,
		core.V(2, 0, 1): core.KindBox,
		core.V(3, 0, 1): core.KindBox,
	}
	for pos, kind := range expected {
		if got := kindAt(p, pos); got != kind {
			t.Errorf("at %s: got %s, expected %s", pos, got, kind)
		}
	}
	if !hasEvent(p.DrainEvents(), core.EventPush) {
		t.Error("expected a push event")
	}
}

func TestPushChainBlockedByTerrain(t *testing.T) {
	p := newPuzzle(t, append(floor(4),
		at(core.KindWizard, 0, 0, 1),
		at(core.KindBox, 1, 0, 1),
		at(core.KindBox, 2, 0, 1),
		at(core.KindBlock2, 3, 0, 1),
	)...)
	before := p.HistoryLen()

	moved, err := p.MovePlayer(core.Right)
	if err != nil {
		t.Fatal(err)
	}
	if moved {
		t.Error("expected the move to be blocked")
	}
	if got := p.Player().Pos; got != core.V(0, 0, 1) {
		t.Errorf("player at %s, expected (0,0,1)", got)
	}
	if p.HistoryLen() != before {
		t.Errorf("blocked move pushed history: got %d, expected %d", p.HistoryLen(), before)
	}
}

func TestElevatorCannotBePushed(t *testing.T) {
	p := newPuzzle(t, append(floor(3),
		at(core.KindWizard, 0, 0, 1),
		at(core.KindElevator, 1, 0, 1),
	)...)
	if moved, _ := p.MovePlayer(core.Right); moved {
		t.Error("elevator should block the player")
	}
}

func TestRiderIsCarried(t *testing.T) {
	p := newPuzzle(t, append(floor(3),
		at(core.KindWizard, 0, 0, 1),
		at(core.KindBox, 0, 0, 2),
		at(core.KindBox, 0, 0, 3),
	)...)
	if moved, _ := p.MovePlayer(core.Right); !moved {
		t.Fatal("expected the move to succeed")
	}
	for _, pos := range []core.V3i{core.V(1, 0, 2), core.V(1, 0, 3)} {
		if got := kindAt(p, pos); got != core.KindBox {
			t.Errorf("at %s: got %s, expected box", pos, got)
		}
	}
}

func TestRiderBlockedStaysBehind(t *testing.T) {
	p := newPuzzle(t, append(floor(3),
		at(core.KindWizard, 0, 0, 1),
		at(core.KindBox, 0, 0, 2),
		at(core.KindBlock3, 1, 0, 2),
	)...)
	if moved, _ := p.MovePlayer(core.Right); !moved {
		t.Fatal("expected the move to succeed")
	}
	if got := kindAt(p, core.V(0, 0, 2)); got != core.KindBox {
		t.Errorf("blocked rider moved: got %s at (0,0,2)", got)
	}
	// Nothing supports it now.
	p.Tick()
	if got := kindAt(p, core.V(0, 0, 1)); got != core.KindBox {
		t.Errorf("rider did not fall: got %s at (0,0,1)", got)
	}
}

func TestPulseDoesNotCarryRider(t *testing.T) {
	w := core.NewWorld()
	pulse := &core.Entity{Kind: core.KindPulse, Pos: core.V(0, 0, 1), Momentum: core.Right}
	box := &core.Entity{Kind: core.KindBox, Pos: core.V(0, 0, 2)}
	for _, e := range []*core.Entity{pulse, box} {
		if err := w.Insert(e); err != nil {
			t.Fatal(err)
		}
	}
	if !w.CanMove(pulse, core.Right) {
		t.Fatal("pulse should be able to move")
	}
	w.Move(pulse, core.Right)
	if box.Pos != core.V(0, 0, 2) {
		t.Errorf("box carried by pulse to %s", box.Pos)
	}
	if err := w.Check(); err != nil {
		t.Error(err)
	}
}

func TestZeroDirectionNeverMoves(t *testing.T) {
	w := core.NewWorld()
	e := &core.Entity{Kind: core.KindBox, Pos: core.V(0, 0, 0)}
	if err := w.Insert(e); err != nil {
		t.Fatal(err)
	}
	if w.CanMove(e, core.Zero) {
		t.Error("CanMove with zero direction should be false")
	}
}

func TestMovePlayerWithoutPlayer(t *testing.T) {
	p := newPuzzle(t, at(core.KindBox, 0, 0, 0))
	if _, err := p.MovePlayer(core.Left); !errors.Is(err, core.ErrNoPlayer) {
		t.Errorf("got %v, expected ErrNoPlayer", err)
	}
	if _, err := p.Fire(core.Left); !errors.Is(err, core.ErrNoPlayer) {
		t.Errorf("got %v, expected ErrNoPlayer", err)
	}
	if _, err := p.IsGameOver(); !errors.Is(err, core.ErrNoPlayer) {
		t.Errorf("got %v, expected ErrNoPlayer", err)
	}
}

func TestGravityConverges(t *testing.T) {
	p := newPuzzle(t,
		at(core.KindBlock1, 0, 0, 1),
		at(core.KindBox, 0, 0, 4),
		at(core.KindMirror2NE, 0, 0, 6),
		at(core.KindBox, 3, 3, 5),
	)
	ticks, settled := p.RunUntilIdle(20)
	if !settled {
		t.Fatalf("world did not settle within 20 ticks")
	}
	// The free box falls five cells; one more tick observes no change.
	if ticks != 6 {
		t.Errorf("got %d ticks, expected 6", ticks)
	}
	expected := map[core.V3i]core.Kind{
		core.V(0, 0, 2): core.KindBox,
		core.V(0, 0, 3): core.KindMirror2NE,
		core.V(3, 3, 0): core.KindBox,
	}
	for pos, kind := range expected {
		if got := kindAt(p, pos); got != kind {
			t.Errorf("at %s: got %s, expected %s", pos, got, kind)
		}
	}
	if p.Tick() {
		t.Error("settled world reported activity")
	}
}

func TestGravityStopsAtGround(t *testing.T) {
	w := core.NewWorld()
	e := &core.Entity{Kind: core.KindWizard, Pos: core.V(0, 0, 0)}
	if err := w.Insert(e); err != nil {
		t.Fatal(err)
	}
	if w.ApplyGravity(e) {
		t.Error("entity at ground level should not fall")
	}
}
