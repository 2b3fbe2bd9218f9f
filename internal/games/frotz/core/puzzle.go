package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Stats counts player-visible activity on a puzzle since Init.
type Stats struct {
	Moves     int
	Pulses    int
	Undos     int
	Resets    int
	Rotations int
	Ticks     uint64
}

// Puzzle is the aggregate root of one level: the world, its history and the
// public command surface the input and presentation layers talk to.
type Puzzle struct {
	ID   string
	Name string
	Next string // ID or name of the puzzle that follows this one
	Hint string

	world    *World
	history  []Snapshot
	initial  Snapshot
	dirty    bool
	lifetime int
	outcome  EventType // EventWin, EventLose or zero while playing
	stats    Stats

	logger      *log.Logger
	onViolation func(error)
}

// Option configures a Puzzle.
type Option func(*Puzzle)

// WithLogger sets the logger used for lifecycle and invariant messages.
func WithLogger(l *log.Logger) Option {
	return func(p *Puzzle) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithPulseLifetime sets how many ticks a pulse survives.
func WithPulseLifetime(ticks int) Option {
	return func(p *Puzzle) {
		if ticks > 0 {
			p.lifetime = ticks
		}
	}
}

// WithViolationHandler installs a callback for structural invariant
// violations (broken index, unpaired mirrors, runaway push chains). The
// simulation always fails safe; tests use this to fail loudly.
func WithViolationHandler(fn func(error)) Option {
	return func(p *Puzzle) {
		p.onViolation = fn
	}
}

// New creates an empty puzzle.
func New(opts ...Option) *Puzzle {
	p := &Puzzle{
		Name:     "New Puzzle",
		world:    NewWorld(),
		lifetime: DefaultPulseLifetime,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.world.onViolation = p.reportViolation
	return p
}

// Init derives the classification sets and captures the initial state.
// History is reset to hold only that state, which acts as the undo floor.
func (p *Puzzle) Init() {
	p.world.Rebuild()
	p.initial = p.world.Capture(ScopeAll)
	p.history = []Snapshot{p.initial}
	p.outcome = 0
	p.stats = Stats{}
	p.world.events = nil
	p.logger.Debug("puzzle initialized", "id", p.ID, "entities", p.world.Len(), "actors", len(p.world.actors))
}

// CreateEntity places a new entity at pos, replacing any current occupant.
func (p *Puzzle) CreateEntity(kind Kind, pos V3i) (*Entity, error) {
	if !kind.Valid() {
		return nil, &UnknownKindError{Tag: fmt.Sprintf("kind(%d)", kind), Index: -1}
	}
	e, err := p.spawn(kind, pos)
	if err != nil {
		return nil, err
	}
	p.dirty = true
	return e, nil
}

func (p *Puzzle) spawn(kind Kind, pos V3i) (*Entity, error) {
	p.world.Remove(pos)
	e := &Entity{
		Kind:    kind,
		Pos:     pos,
		PrevPos: pos,
		Visual:  pos.Float(),
	}
	if err := p.world.Insert(e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEntity removes the entity at pos, if any.
func (p *Puzzle) DeleteEntity(pos V3i) {
	if p.world.Remove(pos) != nil {
		p.dirty = true
	}
}

// MovePlayer steps the player one cell in dir if the push chain allows it.
// A history snapshot is taken only when the move happens.
func (p *Puzzle) MovePlayer(dir V3i) (bool, error) {
	pl := p.world.Player()
	if pl == nil {
		return false, ErrNoPlayer
	}
	if !p.world.CanMove(pl, dir) {
		return false, nil
	}
	p.pushHistory()
	p.world.Move(pl, dir)
	p.world.emit(EventStep, pl)
	p.stats.Moves++
	p.checkOutcome()
	return true, nil
}

// ShootPulse launches a pulse into the cell next to origin. Nothing happens
// when origin is empty or the launch cell is taken.
func (p *Puzzle) ShootPulse(origin, dir V3i) *Entity {
	if dir.IsZero() || p.world.At(origin) == nil {
		return nil
	}
	dest := origin.Add(dir)
	if p.world.At(dest) != nil {
		return nil
	}
	p.pushHistory()
	e, err := p.spawn(KindPulse, dest)
	if err != nil {
		p.reportViolation(err)
		return nil
	}
	e.Momentum = dir
	p.world.emit(EventPulseFired, e)
	p.stats.Pulses++
	return e
}

// Fire shoots a pulse from the player's cell.
func (p *Puzzle) Fire(dir V3i) (*Entity, error) {
	pl := p.world.Player()
	if pl == nil {
		return nil, ErrNoPlayer
	}
	return p.ShootPulse(pl.Pos, dir), nil
}

// Tick advances the simulation one step. See World.Tick.
func (p *Puzzle) Tick() bool {
	p.stats.Ticks++
	active := p.world.Tick(p.lifetime)
	p.checkOutcome()
	return active
}

// RunUntilIdle ticks until the world stops changing or maxTicks is reached,
// pruning destroyed entities along the way. It returns the ticks run and
// whether the world settled.
func (p *Puzzle) RunUntilIdle(maxTicks int) (int, bool) {
	for n := 0; n < maxTicks; n++ {
		active := p.Tick()
		p.Prune()
		if !active {
			return n + 1, true
		}
	}
	return maxTicks, false
}

// Prune removes destroyed entities from the index and returns them.
func (p *Puzzle) Prune() []*Entity {
	return p.world.Prune()
}

// RotateRight turns the whole grid a quarter turn clockwise.
func (p *Puzzle) RotateRight() {
	p.pushHistoryAll()
	p.world.rotate()
	p.finishRotation()
}

// RotateLeft turns the whole grid a quarter turn counterclockwise.
func (p *Puzzle) RotateLeft() {
	p.pushHistoryAll()
	for range 3 {
		p.world.rotate()
	}
	p.finishRotation()
}

func (p *Puzzle) finishRotation() {
	p.stats.Rotations++
	p.world.emit(EventRotate, nil)
}

// DidPlayerWin reports whether the player stands on an exit.
func (p *Puzzle) DidPlayerWin() (bool, error) {
	pl := p.world.Player()
	if pl == nil {
		return false, ErrNoPlayer
	}
	below := p.world.Below(pl.Pos)
	return below != nil && below.Kind == KindExit, nil
}

// DidPlayerLose reports whether the player reached the ground plane.
func (p *Puzzle) DidPlayerLose() (bool, error) {
	pl := p.world.Player()
	if pl == nil {
		return false, ErrNoPlayer
	}
	return pl.Pos.Z <= Ground, nil
}

// IsGameOver reports whether the player has won or lost.
func (p *Puzzle) IsGameOver() (bool, error) {
	won, err := p.DidPlayerWin()
	if err != nil {
		return false, err
	}
	if won {
		return true, nil
	}
	return p.DidPlayerLose()
}

// Undo restores the latest snapshot. The last remaining snapshot is kept as
// the floor, so repeated undos settle on the initial state.
func (p *Puzzle) Undo() {
	if !p.undo() {
		return
	}
	p.stats.Undos++
	p.world.emit(EventUndo, nil)
}

// Reset returns to the state captured by Init, expressed as an undo of the
// initial snapshot. It counts as a reset, not as an undo.
func (p *Puzzle) Reset() {
	p.history = append(p.history, p.initial)
	p.undo()
	p.stats.Resets++
	p.world.emit(EventReset, nil)
}

func (p *Puzzle) undo() bool {
	if len(p.history) == 0 {
		return false
	}
	top := p.history[len(p.history)-1]
	p.world.Restore(top)
	if len(p.history) > 1 {
		p.history = p.history[:len(p.history)-1]
	}
	p.outcome = 0
	p.checkOutcome()
	return true
}

// HistoryLen returns the number of stored snapshots.
func (p *Puzzle) HistoryLen() int {
	return len(p.history)
}

// At returns the live entity at pos, or nil.
func (p *Puzzle) At(pos V3i) *Entity {
	return p.world.At(pos)
}

// Player returns the controlled wizard, or nil.
func (p *Puzzle) Player() *Entity {
	return p.world.Player()
}

// Entities returns every registered entity in id order, including destroyed
// ones that have not been pruned.
func (p *Puzzle) Entities() []*Entity {
	return p.world.Entities()
}

// Bounds returns the extent of the occupied grid.
func (p *Puzzle) Bounds() Bounds {
	return p.world.Bounds()
}

// BoardBounds returns the extent of the grid without pulses in flight.
func (p *Puzzle) BoardBounds() Bounds {
	return p.world.BoardBounds()
}

// Check verifies the world index invariants.
func (p *Puzzle) Check() error {
	return p.world.Check()
}

// DrainEvents returns and clears the events recorded since the last call.
func (p *Puzzle) DrainEvents() []Event {
	ev := p.world.events
	p.world.events = nil
	return ev
}

// Stats returns activity counters since Init.
func (p *Puzzle) Stats() Stats {
	return p.stats
}

// Dirty reports whether the layout was edited since the last MarkClean.
func (p *Puzzle) Dirty() bool {
	return p.dirty
}

// MarkClean clears the dirty flag after the puzzle was saved.
func (p *Puzzle) MarkClean() {
	p.dirty = false
}

func (p *Puzzle) pushHistory() {
	p.history = append(p.history, p.world.Capture(ScopeActors))
}

func (p *Puzzle) pushHistoryAll() {
	p.history = append(p.history, p.world.Capture(ScopeAll))
}

// checkOutcome emits a win or lose event the first time either holds.
func (p *Puzzle) checkOutcome() {
	if p.outcome != 0 {
		return
	}
	pl := p.world.Player()
	if pl == nil {
		return
	}
	if won, _ := p.DidPlayerWin(); won {
		p.outcome = EventWin
	} else if lost, _ := p.DidPlayerLose(); lost {
		p.outcome = EventLose
	} else {
		return
	}
	p.world.emit(p.outcome, pl)
	p.logger.Debug("puzzle finished", "id", p.ID, "outcome", p.outcome, "moves", p.stats.Moves)
}

func (p *Puzzle) reportViolation(err error) {
	p.logger.Warn("invariant violation", "puzzle", p.ID, "err", err)
	if p.onViolation != nil {
		p.onViolation(err)
	}
}
