package core

import (
	"errors"
	"testing"
)

// pushRow places a wizard at x=0 followed by n boxes.
func pushRow(t *testing.T, n int) (*World, *Entity, *[]error) {
	t.Helper()
	var violations []error
	w := NewWorld()
	w.onViolation = func(err error) { violations = append(violations, err) }

	wiz := &Entity{Kind: KindWizard, Pos: V(0, 0, 0)}
	if err := w.Insert(wiz); err != nil {
		t.Fatal(err)
	}
	for x := 1; x <= n; x++ {
		if err := w.Insert(&Entity{Kind: KindBox, Pos: V(x, 0, 0)}); err != nil {
			t.Fatal(err)
		}
	}
	return w, wiz, &violations
}

func TestChainLimitCoversLegalChains(t *testing.T) {
	w, wiz, violations := pushRow(t, 3)
	if !w.CanMove(wiz, Right) {
		t.Fatal("wizard should push three boxes into open space")
	}
	w.Move(wiz, Right)
	if wiz.Pos != V(1, 0, 0) {
		t.Errorf("wizard at %s, expected (1,0,0)", wiz.Pos)
	}
	if len(*violations) != 0 {
		t.Errorf("got violations %v, expected none", *violations)
	}
}

func TestChainTooDeep(t *testing.T) {
	w, wiz, violations := pushRow(t, 3)

	if w.canMove(wiz, Right, 2) {
		t.Error("chain longer than the budget should be blocked")
	}
	if len(*violations) != 1 || !errors.Is((*violations)[0], ErrChainTooDeep) {
		t.Fatalf("got violations %v, expected one ErrChainTooDeep", *violations)
	}

	*violations = nil
	w.move(wiz, Right, 2)
	if wiz.Pos != V(0, 0, 0) {
		t.Errorf("wizard at %s, expected it to stay at (0,0,0)", wiz.Pos)
	}
	for x := 1; x <= 3; x++ {
		if e := w.At(V(x, 0, 0)); e == nil || e.Kind != KindBox {
			t.Errorf("box at x=%d moved", x)
		}
	}
	if len(*violations) != 1 || !errors.Is((*violations)[0], ErrChainTooDeep) {
		t.Errorf("got violations %v, expected one ErrChainTooDeep", *violations)
	}
	if err := w.Check(); err != nil {
		t.Errorf("index corrupt after blocked move: %v", err)
	}
}
