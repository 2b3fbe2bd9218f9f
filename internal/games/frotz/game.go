// Package frotz adapts the puzzle simulation to the arcade runtime.
// It turns input actions into discrete puzzle commands, drives the tick
// engine until the world settles, and draws a top-down height map.
package frotz

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frotz/internal/core"
	sim "github.com/vovakirdan/frotz/internal/games/frotz/core"
	"github.com/vovakirdan/frotz/internal/games/frotz/levels"
	"github.com/vovakirdan/frotz/internal/registry"
)

// GameID is the registry key of the puzzle game.
const GameID = "frotz"

const (
	defaultMaxSettleTicks = 256
	maxQueuedActions      = 16
)

// Solved describes a finished puzzle.
type Solved struct {
	PuzzleID string
	Name     string
	Stats    sim.Stats
}

// Settings configures games created through the registry.
type Settings struct {
	Campaign       levels.Campaign // Empty means the built-in campaign
	Start          string          // Level ID or name to open first
	PulseLifetime  int
	MaxSettleTicks int
	Logger         *log.Logger

	OnLevel func(id string) // Called whenever a level starts
	OnSolve func(Solved)    // Called once per solved level
}

// Levels returns the configured campaign, or the built-in one.
func (s Settings) Levels() (levels.Campaign, error) {
	if len(s.Campaign) > 0 {
		return s.Campaign, nil
	}
	all, err := levels.Builtin().LoadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, errors.New("no levels available")
	}
	return levels.Campaign(all), nil
}

var (
	settingsMu sync.RWMutex
	settings   Settings
)

// Configure sets the settings used by games created afterwards.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

// CurrentSettings returns the settings set by Configure.
func CurrentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game for frotz puzzles.
type Game struct {
	settings Settings
	logger   *log.Logger
	campaign levels.Campaign
	level    levels.Level
	puzzle   *sim.Puzzle
	loadErr  error

	screenW   int
	screenH   int
	stepEvery int

	queue       []core.Action
	settling    bool
	settleFrame int
	settleTicks int

	won      bool
	lost     bool
	finished bool // Nothing follows the solved level
	recorded bool
	paused   bool
	tooSmall bool
	bell     bool
	lastTurn []sim.Event
}

// New creates a game with the settings set by Configure.
func New() *Game {
	return NewWithSettings(CurrentSettings())
}

// NewWithSettings creates a game with explicit settings.
func NewWithSettings(s Settings) *Game {
	if s.MaxSettleTicks <= 0 {
		s.MaxSettleTicks = defaultMaxSettleTicks
	}
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{settings: s, logger: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Frotz" }

// Reset loads the campaign and opens the start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.stepEvery = max(cfg.StepEvery, 1)
	g.paused = false

	if err := g.loadCampaign(); err != nil {
		g.fail(err)
		return
	}
	start := g.campaign[0]
	if ref := g.settings.Start; ref != "" {
		lvl, err := g.campaign.Resolve(ref)
		if err != nil {
			g.logger.Warn("start level not found, using first", "ref", ref)
		} else {
			start = lvl
		}
	}
	g.open(start)
}

// Resize adapts to a new screen size without restarting the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) loadCampaign() error {
	if len(g.campaign) > 0 {
		return nil
	}
	c, err := g.settings.Levels()
	if err != nil {
		return err
	}
	g.campaign = c
	return nil
}

// open replaces the current puzzle with a fresh copy of lvl.
func (g *Game) open(lvl levels.Level) {
	p, err := lvl.NewPuzzle(
		sim.WithLogger(g.logger),
		sim.WithPulseLifetime(g.settings.PulseLifetime),
	)
	if err != nil {
		g.fail(err)
		return
	}
	g.level = lvl
	g.puzzle = p
	g.loadErr = nil
	g.queue = g.queue[:0]
	g.settling = false
	g.won, g.lost, g.finished, g.recorded = false, false, false, false
	g.lastTurn = nil
	g.checkScreenSize()
	g.logger.Debug("level opened", "id", lvl.ID, "name", lvl.Name)
	if g.settings.OnLevel != nil {
		g.settings.OnLevel(lvl.ID)
	}
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.puzzle = nil
	g.logger.Error("cannot open level", "err", err)
}

// checkScreenSize checks if the board, HUD and footer fit.
func (g *Game) checkScreenSize() {
	if g.puzzle == nil {
		g.tooSmall = false
		return
	}
	span := g.puzzle.BoardBounds().Span()
	minW := max(span.X*cellW+2, minScreenW)
	minH := span.Y + 2 + hudRows + footerRows
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances one frame. Actions are queued and applied one per frame
// while the world is idle; while it settles, the tick engine runs every
// stepEvery frames.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.bell = false

	// Pause applies at once; everything else waits its turn
	for _, a := range in.Actions {
		if a == core.ActionPause {
			g.paused = !g.paused
			continue
		}
		if len(g.queue) < maxQueuedActions {
			g.queue = append(g.queue, a)
		}
	}

	if g.tooSmall || g.paused || g.puzzle == nil {
		g.queue = g.queue[:0]
		return core.StepResult{State: g.State()}
	}

	// Let the world settle before the next command
	if g.settling {
		g.settle()
	}
	if !g.settling && len(g.queue) > 0 {
		a := g.queue[0]
		g.queue = g.queue[1:]
		g.apply(a)
	}

	return core.StepResult{State: g.State(), Bell: g.bell}
}

// apply runs one command against the puzzle.
func (g *Game) apply(a core.Action) {
	p := g.puzzle
	if g.won {
		switch a {
		case core.ActionNext, core.ActionConfirm:
			g.advance()
		case core.ActionUndo, core.ActionReset:
		default:
			return
		}
	} else if g.lost && a != core.ActionUndo && a != core.ActionReset {
		return
	}

	switch {
	case a.IsMove():
		moved, err := p.MovePlayer(moveDir(a))
		if err != nil {
			g.logger.Warn("move rejected", "err", err)
			return
		}
		if moved {
			g.startSettling()
		}
	case a.IsFire():
		pulse, err := p.Fire(fireDir(a))
		if err != nil {
			g.logger.Warn("fire rejected", "err", err)
			return
		}
		if pulse != nil {
			g.startSettling()
		}
	case a == core.ActionUndo:
		p.Undo()
		g.endTurn()
	case a == core.ActionReset:
		p.Reset()
		g.endTurn()
	case a == core.ActionRotateLeft:
		p.RotateLeft()
		g.endTurn()
	case a == core.ActionRotateRight:
		p.RotateRight()
		g.endTurn()
	}
}

func (g *Game) startSettling() {
	g.settling = true
	g.settleFrame = 0
	g.settleTicks = 0
	g.collectEvents()
}

// settle runs one tick when the frame budget allows it.
func (g *Game) settle() {
	g.settleFrame++
	if g.settleFrame < g.stepEvery {
		return
	}
	g.settleFrame = 0

	active := g.puzzle.Tick()
	g.puzzle.Prune()
	g.settleTicks++
	g.collectEvents()

	if !active {
		g.endTurn()
		return
	}
	if g.settleTicks >= g.settings.MaxSettleTicks {
		g.logger.Warn("world did not settle", "level", g.level.ID, "ticks", g.settleTicks)
		g.endTurn()
	}
}

// endTurn refreshes the outcome once the world is idle.
func (g *Game) endTurn() {
	g.settling = false
	g.collectEvents()
	g.checkScreenSize()

	g.won, _ = g.puzzle.DidPlayerWin()
	g.lost, _ = g.puzzle.DidPlayerLose()
	if g.won {
		g.lost = false
	}
	if !g.won || g.recorded {
		return
	}
	g.recorded = true
	if _, err := g.campaign.Next(g.level); err != nil {
		g.finished = true
	}
	g.logger.Info("level solved", "id", g.level.ID, "moves", g.puzzle.Stats().Moves)
	if g.settings.OnSolve != nil {
		g.settings.OnSolve(Solved{
			PuzzleID: g.level.ID,
			Name:     g.level.Name,
			Stats:    g.puzzle.Stats(),
		})
	}
}

// advance opens the level after the solved one.
func (g *Game) advance() {
	next, err := g.campaign.Next(g.level)
	if err != nil {
		g.finished = true
		return
	}
	g.open(next)
}

func (g *Game) collectEvents() {
	events := g.puzzle.DrainEvents()
	if len(events) == 0 {
		return
	}
	g.lastTurn = events
	for _, ev := range events {
		switch ev.Type {
		case sim.EventPulseFired, sim.EventReflect, sim.EventPowerToggled,
			sim.EventWin, sim.EventLose:
			g.bell = true
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Paused:   g.paused,
		Settling: g.settling,
	}
	if g.puzzle != nil {
		st.Score = g.puzzle.Stats().Moves
	}
	st.Won = g.won && !g.settling
	st.GameOver = (g.won || g.lost) && !g.settling
	return st
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

// Puzzle returns the puzzle being played, or nil if loading failed.
func (g *Game) Puzzle() *sim.Puzzle {
	return g.puzzle
}

// Err returns the error that prevented the last level from opening.
func (g *Game) Err() error {
	return g.loadErr
}

func moveDir(a core.Action) sim.V3i {
	switch a {
	case core.ActionUp:
		return sim.Forward
	case core.ActionDown:
		return sim.Back
	case core.ActionLeft:
		return sim.Left
	default:
		return sim.Right
	}
}

func fireDir(a core.Action) sim.V3i {
	switch a {
	case core.ActionFireUp:
		return sim.Forward
	case core.ActionFireDown:
		return sim.Back
	case core.ActionFireLeft:
		return sim.Left
	default:
		return sim.Right
	}
}
