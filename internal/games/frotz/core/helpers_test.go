package core_test

import (
	"testing"

	"github.com/vovakirdan/frotz/internal/games/frotz/core"
)

type placed struct {
	kind core.Kind
	pos  core.V3i
}

func at(kind core.Kind, x, y, z int) placed {
	return placed{kind: kind, pos: core.V(x, y, z)}
}

// newPuzzle builds an initialized puzzle and fails the test on any
// invariant violation.
func newPuzzle(t *testing.T, items ...placed) *core.Puzzle {
	t.Helper()
	p := core.New(core.WithViolationHandler(func(err error) {
		t.Errorf("unexpected violation: %v", err)
	}))
	for _, it := range items {
		if _, err := p.CreateEntity(it.kind, it.pos); err != nil {
			t.Fatalf("CreateEntity(%s, %s): %v", it.kind, it.pos, err)
		}
	}
	p.Init()
	return p
}

// floor returns a row of terrain blocks at z=0 from x=0 to x=n-1.
func floor(n int) []placed {
	out := make([]placed, 0, n)
	for x := range n {
		out = append(out, at(core.KindBlock1, x, 0, 0))
	}
	return out
}

func kindAt(p *core.Puzzle, pos core.V3i) core.Kind {
	if e := p.At(pos); e != nil {
		return e.Kind
	}
	return core.KindNone
}

func hasEvent(events []core.Event, t core.EventType) bool {
	for _, ev := range events {
		if ev.Type == t {
			return true
		}
	}
	return false
}
