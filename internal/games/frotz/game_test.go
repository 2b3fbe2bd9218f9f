package frotz

import (
	"strings"
	"testing"

	"github.com/vovakirdan/frotz/internal/core"
	sim "github.com/vovakirdan/frotz/internal/games/frotz/core"
	"github.com/vovakirdan/frotz/internal/games/frotz/levels"
	"github.com/vovakirdan/frotz/internal/registry"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.StepEvery = 1
	return cfg
}

func level(id, name string, ents ...sim.EntityData) levels.Level {
	return levels.Level{Data: sim.Data{ID: id, Name: name, Entities: ents}}
}

func ent(tag string, x, y, z int) sim.EntityData {
	return sim.EntityData{Type: tag, Pos: [3]int{x, y, z}}
}

// walkLevel is solved by a single step right.
func walkLevel(id string) levels.Level {
	return level(id, "Walk "+id,
		ent("BLOCK_1", 0, 0, 0),
		ent("EXIT", 1, 0, 0),
		ent("WIZARD", 0, 0, 1),
	)
}

// cliffLevel is lost by a single step right.
func cliffLevel() levels.Level {
	return level("cliff", "Cliff",
		ent("BLOCK_1", 0, 0, 0),
		ent("EXIT", 0, 2, 0),
		ent("WIZARD", 0, 0, 1),
	)
}

func newTestGame(t *testing.T, s Settings) *Game {
	t.Helper()
	g := NewWithSettings(s)
	g.Reset(testConfig())
	if g.Err() != nil {
		t.Fatalf("Reset failed: %v", g.Err())
	}
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// idle steps empty frames until the queue drains and the world settles.
func idle(t *testing.T, g *Game) {
	t.Helper()
	for range 1000 {
		if !g.settling && len(g.queue) == 0 {
			return
		}
		press(g)
	}
	t.Fatal("game never became idle")
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Frotz" {
		t.Errorf("got title %q, expected %q", g.Title(), "Frotz")
	}
}

func TestBuiltinCampaignByDefault(t *testing.T) {
	var opened []string
	g := newTestGame(t, Settings{OnLevel: func(id string) { opened = append(opened, id) }})

	if g.Level().ID != "01-first-steps" {
		t.Errorf("got level %s, expected 01-first-steps", g.Level().ID)
	}
	if len(opened) != 1 || opened[0] != "01-first-steps" {
		t.Errorf("got OnLevel calls %v", opened)
	}
	if st := g.State(); st.GameOver || st.Won || st.Score != 0 {
		t.Errorf("got fresh state %+v", st)
	}
}

func TestSolveFirstLevelThroughFrames(t *testing.T) {
	var solved []Solved
	g := newTestGame(t, Settings{OnSolve: func(s Solved) { solved = append(solved, s) }})

	for range 4 {
		press(g, core.ActionRight)
		idle(t, g)
	}

	st := g.State()
	if !st.Won || !st.GameOver {
		t.Fatalf("got state %+v, expected a win", st)
	}
	if st.Score != 4 {
		t.Errorf("got score %d, expected 4", st.Score)
	}
	if len(solved) != 1 {
		t.Fatalf("got %d solve callbacks, expected 1", len(solved))
	}
	if solved[0].PuzzleID != "01-first-steps" || solved[0].Stats.Moves != 4 {
		t.Errorf("got %+v", solved[0])
	}

	// Moves are ignored once solved.
	press(g, core.ActionLeft)
	idle(t, g)
	if g.Puzzle().Stats().Moves != 4 {
		t.Errorf("move after win was applied")
	}

	press(g, core.ActionNext)
	if g.Level().ID != "02-fill-the-gap" {
		t.Errorf("got level %s after next, expected 02-fill-the-gap", g.Level().ID)
	}
	if g.State().GameOver {
		t.Error("next level starts finished")
	}
}

func TestInputQueuedWhileSettling(t *testing.T) {
	g := newTestGame(t, Settings{})

	res := press(g, core.ActionRight, core.ActionRight, core.ActionRight, core.ActionRight)
	if !res.State.Settling {
		t.Fatal("expected the first move to start settling")
	}
	if len(g.queue) != 3 {
		t.Errorf("got %d queued actions, expected 3", len(g.queue))
	}
	idle(t, g)

	if !g.State().Won {
		t.Errorf("queued moves did not solve the level, player at %s", g.Puzzle().Player().Pos)
	}
}

func TestStepEveryPacesTicks(t *testing.T) {
	g := NewWithSettings(Settings{Campaign: levels.Merge([]levels.Level{cliffLevel()})})
	cfg := testConfig()
	cfg.StepEvery = 4
	g.Reset(cfg)

	press(g, core.ActionRight)
	for i := range 3 {
		press(g)
		if g.Puzzle().Stats().Ticks != 0 {
			t.Fatalf("frame %d: ticked before step_every frames", i+1)
		}
	}
	press(g)
	if g.Puzzle().Stats().Ticks != 1 {
		t.Errorf("got %d ticks, expected 1", g.Puzzle().Stats().Ticks)
	}
}

func TestLoseAndUndo(t *testing.T) {
	g := newTestGame(t, Settings{Campaign: levels.Merge([]levels.Level{cliffLevel()})})

	press(g, core.ActionRight)
	idle(t, g)
	st := g.State()
	if !st.GameOver || st.Won {
		t.Fatalf("got state %+v, expected a loss", st)
	}

	press(g, core.ActionLeft)
	idle(t, g)
	if g.Puzzle().Stats().Moves != 1 {
		t.Error("move after loss was applied")
	}

	press(g, core.ActionUndo)
	if g.State().GameOver {
		t.Error("undo did not clear the loss")
	}
	if pos := g.Puzzle().Player().Pos; pos != sim.V(0, 0, 1) {
		t.Errorf("got player at %s, expected (0,0,1)", pos)
	}
}

func TestFireRingsBell(t *testing.T) {
	g := newTestGame(t, Settings{Campaign: levels.Merge([]levels.Level{cliffLevel()})})

	res := press(g, core.ActionFireDown)
	if !res.Bell {
		t.Error("firing should ring the bell")
	}
	if !res.State.Settling {
		t.Error("a pulse in flight should keep the world settling")
	}
	idle(t, g)
	if g.Puzzle().Stats().Pulses != 1 {
		t.Errorf("got %d pulses, expected 1", g.Puzzle().Stats().Pulses)
	}
}

func TestPauseDropsInput(t *testing.T) {
	g := newTestGame(t, Settings{})

	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	press(g, core.ActionRight)
	press(g, core.ActionPause)
	idle(t, g)
	if g.Puzzle().Stats().Moves != 0 {
		t.Error("input while paused was applied")
	}
}

func TestStartByName(t *testing.T) {
	g := newTestGame(t, Settings{Start: "power up"})
	if g.Level().ID != "03-power-up" {
		t.Errorf("got %s, expected 03-power-up", g.Level().ID)
	}

	g = newTestGame(t, Settings{Start: "missing"})
	if g.Level().ID != "01-first-steps" {
		t.Errorf("got %s for an unknown start, expected the first level", g.Level().ID)
	}
}

func TestCampaignComplete(t *testing.T) {
	g := newTestGame(t, Settings{Campaign: levels.Merge([]levels.Level{walkLevel("only")})})

	press(g, core.ActionRight)
	idle(t, g)
	if !g.State().Won || !g.finished {
		t.Fatalf("expected the last level to finish the campaign")
	}

	press(g, core.ActionNext)
	if g.Level().ID != "only" || !g.State().Won {
		t.Error("next after the last level should stay on the solved puzzle")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Campaign complete!") {
		t.Errorf("missing completion overlay:\n%s", screen.String())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, Settings{})
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"First Steps", "@", "◎", "Puzzle 1/5", KeyHelp, g.Level().Hint} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q:\n%s", want, out)
		}
	}
}

func TestTooSmall(t *testing.T) {
	g := NewWithSettings(Settings{})
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 20, 6
	g.Reset(cfg)

	press(g, core.ActionRight)
	if g.Puzzle().Stats().Moves != 0 {
		t.Error("input applied on a too-small screen")
	}

	screen := core.NewScreen(20, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("got:\n%s", screen.String())
	}

	g.Resize(80, 24)
	if g.tooSmall {
		t.Error("resize did not clear the size warning")
	}
}

func TestGlyphs(t *testing.T) {
	tests := []struct {
		kind     sim.Kind
		active   bool
		expected rune
	}{
		{sim.KindWizard, false, '@'},
		{sim.KindBox, false, '#'},
		{sim.KindMirror1NE, false, '▲'},
		{sim.KindMirror2SW, false, '▼'},
		{sim.KindPower, false, '◇'},
		{sim.KindPower, true, '◆'},
		{sim.KindElevator, true, '≡'},
		{sim.KindExit, false, '◎'},
		{sim.KindPulse, false, '*'},
	}
	for _, tt := range tests {
		r, _ := Glyph(&sim.Entity{Kind: tt.kind, Active: tt.active})
		if r != tt.expected {
			t.Errorf("%s (active=%v): got %q, expected %q", tt.kind, tt.active, r, tt.expected)
		}
	}
}

// stripLevel is a 20x1 walkway.
func stripLevel() levels.Level {
	ents := make([]sim.EntityData, 0, 21)
	for x := range 19 {
		ents = append(ents, ent("BLOCK_1", x, 0, 0))
	}
	ents = append(ents, ent("EXIT", 19, 0, 0), ent("WIZARD", 0, 0, 1))
	return level("strip", "Strip", ents...)
}

func TestRotationRechecksScreenSize(t *testing.T) {
	g := NewWithSettings(Settings{Campaign: levels.Campaign{stripLevel()}})
	cfg := testConfig()
	cfg.ScreenW, cfg.ScreenH = 60, 10
	g.Reset(cfg)

	if g.tooSmall {
		t.Fatal("20x1 board should fit a 60x10 screen")
	}

	press(g, core.ActionRotateRight)
	if span := g.puzzle.BoardBounds().Span(); span.Y != 20 {
		t.Fatalf("got span %v after rotation, expected 20 rows", span)
	}
	if !g.tooSmall {
		t.Error("1x20 board should not fit a 60x10 screen")
	}

	g.Resize(60, 30)
	if g.tooSmall {
		t.Error("1x20 board should fit a 60x30 screen")
	}
}

func TestPulseDoesNotResizeBoard(t *testing.T) {
	g := newTestGame(t, Settings{Campaign: levels.Campaign{walkLevel("01")}})
	before := g.puzzle.BoardBounds()

	press(g, core.ActionFireLeft)
	if !g.settling {
		t.Fatal("fire should start settling")
	}
	if g.puzzle.Bounds().Min.X >= before.Min.X {
		t.Fatalf("pulse should extend the grid bounds, got %v", g.puzzle.Bounds())
	}
	if got := g.puzzle.BoardBounds(); got != before {
		t.Errorf("got board bounds %v, expected %v", got, before)
	}
	idle(t, g)
	if g.tooSmall {
		t.Error("board should still fit after the shot")
	}
}
