// Package storage provides SQLite-based persistence for puzzles and solves.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The schema is versioned with goose migrations embedded in the binary.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/frotz/internal/games/frotz/core"
	"github.com/vovakirdan/frotz/internal/games/frotz/levels/formats"
)

//go:embed migrations/*.sql
var migrations embed.FS

// blobName picks the encoding of stored puzzle documents.
const blobName = "puzzle.json" + formats.CompressedSuffix

const keyLastPuzzle = "last_puzzle"

// ErrNotFound is returned when a requested puzzle does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes store and migration output to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// PuzzleEntry is one row of the puzzle manifest.
type PuzzleEntry struct {
	ID        string
	Name      string
	Next      string
	UpdatedAt time.Time
}

// Solve records one completed puzzle.
type Solve struct {
	ID        int64
	PuzzleID  string
	Player    string
	Moves     int
	Pulses    int
	Undos     int
	Ticks     uint64
	CreatedAt time.Time
}

// PuzzleStats aggregates the solves of one puzzle.
type PuzzleStats struct {
	PuzzleID   string
	Solves     int
	BestMoves  int
	BestTicks  uint64
	LastSolved time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string, opts ...Option) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(store)
	}

	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	store.logger.Debug("database ready", "path", dbPath)
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	goose.SetLogger(s.logger)
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SavePuzzle inserts or replaces the puzzle with d.ID.
func (s *Store) SavePuzzle(d core.Data) error {
	if d.ID == "" {
		return errors.New("storage: puzzle has no id")
	}
	if d.Entities == nil {
		d.Entities = []core.EntityData{}
	}
	if err := formats.Validate(d); err != nil {
		return fmt.Errorf("storage: puzzle %s: %w", d.ID, err)
	}
	blob, err := formats.Encode(d, blobName)
	if err != nil {
		return fmt.Errorf("storage: cannot encode puzzle %s: %w", d.ID, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO puzzles (id, name, next, hint, data, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   next = excluded.next,
		   hint = excluded.hint,
		   data = excluded.data,
		   updated_at = CURRENT_TIMESTAMP`,
		d.ID, d.Name, d.Next, d.Hint, blob,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save puzzle %s: %w", d.ID, err)
	}
	return nil
}

// LoadPuzzle returns the puzzle stored under id.
func (s *Store) LoadPuzzle(id string) (core.Data, error) {
	return s.loadPuzzle("SELECT id, data FROM puzzles WHERE id = ?", id)
}

// LoadPuzzleByName returns the puzzle whose display name matches name,
// ignoring ASCII case.
func (s *Store) LoadPuzzleByName(name string) (core.Data, error) {
	return s.loadPuzzle(
		"SELECT id, data FROM puzzles WHERE name = ? COLLATE NOCASE ORDER BY id LIMIT 1",
		name,
	)
}

func (s *Store) loadPuzzle(query, arg string) (core.Data, error) {
	var (
		id   string
		blob []byte
	)
	err := s.db.QueryRow(query, arg).Scan(&id, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Data{}, fmt.Errorf("%w: puzzle %q", ErrNotFound, arg)
	}
	if err != nil {
		return core.Data{}, fmt.Errorf("storage: cannot query puzzle: %w", err)
	}
	d, err := formats.Parse(blob, blobName)
	if err != nil {
		return core.Data{}, fmt.Errorf("storage: puzzle %s is corrupt: %w", id, err)
	}
	d.ID = id
	return d, nil
}

// ListPuzzles returns the manifest ordered by id.
func (s *Store) ListPuzzles() ([]PuzzleEntry, error) {
	rows, err := s.db.Query("SELECT id, name, next, updated_at FROM puzzles ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzles: %w", err)
	}
	defer rows.Close()

	var entries []PuzzleEntry
	for rows.Next() {
		var (
			e       PuzzleEntry
			updated any
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Next, &updated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan puzzle row: %w", err)
		}
		e.UpdatedAt = parseTime(updated)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating puzzles: %w", err)
	}
	return entries, nil
}

// DeletePuzzle removes the puzzle with id. Its solves are kept.
func (s *Store) DeletePuzzle(id string) error {
	res, err := s.db.Exec("DELETE FROM puzzles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete puzzle %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: puzzle %q", ErrNotFound, id)
	}
	return nil
}

// SetLastPuzzle remembers the puzzle the player was last on.
func (s *Store) SetLastPuzzle(id string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		keyLastPuzzle, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save last puzzle: %w", err)
	}
	return nil
}

// LastPuzzle returns the id stored by SetLastPuzzle, or "" if none.
func (s *Store) LastPuzzle() (string, error) {
	var id string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", keyLastPuzzle).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query last puzzle: %w", err)
	}
	return id, nil
}

// RecordSolve stores a completed puzzle and returns the new row id.
func (s *Store) RecordSolve(sv Solve) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO solves (puzzle_id, player, moves, pulses, undos, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sv.PuzzleID, sv.Player, sv.Moves, sv.Pulses, sv.Undos, int64(sv.Ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record solve: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get solve id: %w", err)
	}
	return id, nil
}

// BestSolves returns up to limit solves of puzzleID, fewest moves first.
// Ties go to fewer ticks, then to the earlier solve.
func (s *Store) BestSolves(puzzleID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, puzzle_id, player, moves, pulses, undos, ticks, created_at
		 FROM solves
		 WHERE puzzle_id = ?
		 ORDER BY moves ASC, ticks ASC, id ASC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var (
			sv      Solve
			ticks   int64
			created any
		)
		if err := rows.Scan(&sv.ID, &sv.PuzzleID, &sv.Player, &sv.Moves, &sv.Pulses, &sv.Undos, &ticks, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan solve row: %w", err)
		}
		sv.Ticks = uint64(ticks)
		sv.CreatedAt = parseTime(created)
		solves = append(solves, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating solves: %w", err)
	}
	return solves, nil
}

// AllPuzzleStats returns solve statistics keyed by puzzle id.
func (s *Store) AllPuzzleStats() (map[string]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT puzzle_id, COUNT(*), MIN(moves), MIN(ticks), MAX(created_at)
		 FROM solves
		 GROUP BY puzzle_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PuzzleStats)
	for rows.Next() {
		var (
			ps    PuzzleStats
			ticks int64
			last  any
		)
		if err := rows.Scan(&ps.PuzzleID, &ps.Solves, &ps.BestMoves, &ticks, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.BestTicks = uint64(ticks)
		ps.LastSolved = parseTime(last)
		stats[ps.PuzzleID] = &ps
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating stats: %w", err)
	}
	return stats, nil
}

// ClearSolves deletes all solves of puzzleID.
func (s *Store) ClearSolves(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// parseTime accepts whatever the driver hands back for a DATETIME column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
