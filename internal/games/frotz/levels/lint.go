package levels

import (
	"fmt"

	"github.com/vovakirdan/frotz/internal/games/frotz/core"
)

// Lint builds the level and reports design problems that parse cleanly but
// make the puzzle unplayable. A non-nil error means the level does not
// build at all.
func Lint(lvl Level) ([]string, error) {
	var problems []string
	p, err := lvl.NewPuzzle(core.WithViolationHandler(func(err error) {
		problems = append(problems, err.Error())
	}))
	if err != nil {
		return nil, err
	}
	if err := p.Check(); err != nil {
		problems = append(problems, err.Error())
	}

	var wizards, exits int
	mirrors := map[int]int{}
	for _, e := range p.Entities() {
		switch {
		case e.Kind == core.KindWizard:
			wizards++
		case e.Kind == core.KindExit:
			exits++
		case e.Kind.IsMirror():
			mirrors[e.Kind.MirrorClass()]++
		}
	}

	switch {
	case wizards == 0:
		problems = append(problems, "no wizard")
	case wizards > 1:
		problems = append(problems, fmt.Sprintf("%d wizards, expected one", wizards))
	}
	if exits == 0 {
		problems = append(problems, "no exit")
	}
	for class := 1; class <= 2; class++ {
		if n := mirrors[class]; n != 0 && n != 2 {
			problems = append(problems, fmt.Sprintf("mirror class %d has %d mirrors, expected 0 or 2", class, n))
		}
	}
	if wizards > 0 {
		if won, _ := p.DidPlayerWin(); won {
			problems = append(problems, "starts solved")
		} else if lost, _ := p.DidPlayerLose(); lost {
			problems = append(problems, "starts lost")
		}
	}
	return problems, nil
}
