package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/frotz/internal/games/frotz/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func samplePuzzle(id, name string) core.Data {
	return core.Data{
		ID:   id,
		Name: name,
		Next: "second",
		Hint: "push it",
		Entities: []core.EntityData{
			{Type: "BLOCK_1", Pos: [3]int{0, 0, 0}},
			{Type: "WIZARD", Pos: [3]int{0, 0, 1}},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SavePuzzle(samplePuzzle("first", "First")); err != nil {
		t.Fatalf("SavePuzzle() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent on an existing database.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	d, err := store.LoadPuzzle("first")
	if err != nil {
		t.Fatalf("LoadPuzzle() failed: %v", err)
	}
	if d.Name != "First" {
		t.Errorf("got name %q, expected %q", d.Name, "First")
	}
}

func TestStoreSaveAndLoadPuzzle(t *testing.T) {
	store := openTestStore(t)

	want := samplePuzzle("first", "First Steps")
	if err := store.SavePuzzle(want); err != nil {
		t.Fatalf("SavePuzzle() failed: %v", err)
	}

	got, err := store.LoadPuzzle("first")
	if err != nil {
		t.Fatalf("LoadPuzzle() failed: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name || got.Next != want.Next || got.Hint != want.Hint {
		t.Errorf("got %+v, expected %+v", got, want)
	}
	if len(got.Entities) != len(want.Entities) {
		t.Fatalf("got %d entities, expected %d", len(got.Entities), len(want.Entities))
	}
	for i := range want.Entities {
		if got.Entities[i] != want.Entities[i] {
			t.Errorf("entity %d: got %+v, expected %+v", i, got.Entities[i], want.Entities[i])
		}
	}
}

func TestStoreSavePuzzleReplaces(t *testing.T) {
	store := openTestStore(t)

	store.SavePuzzle(samplePuzzle("first", "Old"))
	updated := samplePuzzle("first", "New")
	updated.Entities = updated.Entities[:1]
	if err := store.SavePuzzle(updated); err != nil {
		t.Fatalf("SavePuzzle() failed: %v", err)
	}

	got, err := store.LoadPuzzle("first")
	if err != nil {
		t.Fatalf("LoadPuzzle() failed: %v", err)
	}
	if got.Name != "New" {
		t.Errorf("got name %q, expected %q", got.Name, "New")
	}
	if len(got.Entities) != 1 {
		t.Errorf("got %d entities, expected 1", len(got.Entities))
	}

	entries, _ := store.ListPuzzles()
	if len(entries) != 1 {
		t.Errorf("got %d manifest rows, expected 1", len(entries))
	}
}

func TestStoreSavePuzzleRejectsInvalid(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		data core.Data
	}{
		{"no id", core.Data{Name: "x"}},
		{"no name", core.Data{ID: "x"}},
		{"bad id", core.Data{ID: "a b", Name: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.SavePuzzle(tt.data); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestStoreLoadPuzzleByName(t *testing.T) {
	store := openTestStore(t)

	store.SavePuzzle(samplePuzzle("a", "Fill the Gap"))
	store.SavePuzzle(samplePuzzle("b", "Power Up"))

	got, err := store.LoadPuzzleByName("fill THE gap")
	if err != nil {
		t.Fatalf("LoadPuzzleByName() failed: %v", err)
	}
	if got.ID != "a" {
		t.Errorf("got id %q, expected %q", got.ID, "a")
	}

	_, err = store.LoadPuzzleByName("Missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, expected ErrNotFound", err)
	}
}

func TestStoreLoadPuzzleNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadPuzzle("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, expected ErrNotFound", err)
	}
}

func TestStoreListAndDeletePuzzles(t *testing.T) {
	store := openTestStore(t)

	store.SavePuzzle(samplePuzzle("b", "Beta"))
	store.SavePuzzle(samplePuzzle("a", "Alpha"))

	entries, err := store.ListPuzzles()
	if err != nil {
		t.Fatalf("ListPuzzles() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, expected 2", len(entries))
	}
	if entries[0].ID != "a" || entries[1].ID != "b" {
		t.Errorf("got order %s,%s, expected a,b", entries[0].ID, entries[1].ID)
	}
	if entries[0].UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}

	if err := store.DeletePuzzle("a"); err != nil {
		t.Fatalf("DeletePuzzle() failed: %v", err)
	}
	if err := store.DeletePuzzle("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, expected ErrNotFound", err)
	}

	entries, _ = store.ListPuzzles()
	if len(entries) != 1 {
		t.Errorf("got %d entries after delete, expected 1", len(entries))
	}
}

func TestStoreLastPuzzle(t *testing.T) {
	store := openTestStore(t)

	id, err := store.LastPuzzle()
	if err != nil {
		t.Fatalf("LastPuzzle() failed: %v", err)
	}
	if id != "" {
		t.Errorf("got %q on empty store, expected empty", id)
	}

	store.SetLastPuzzle("01-first-steps")
	store.SetLastPuzzle("02-fill-the-gap")

	id, err = store.LastPuzzle()
	if err != nil {
		t.Fatalf("LastPuzzle() failed: %v", err)
	}
	if id != "02-fill-the-gap" {
		t.Errorf("got %q, expected %q", id, "02-fill-the-gap")
	}
}

func TestStoreBestSolves(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve(Solve{PuzzleID: "p", Moves: 9, Ticks: 40})
	store.RecordSolve(Solve{PuzzleID: "p", Moves: 5, Ticks: 30})
	store.RecordSolve(Solve{PuzzleID: "p", Moves: 5, Ticks: 20, Player: "ssh"})
	store.RecordSolve(Solve{PuzzleID: "q", Moves: 1, Ticks: 1})

	solves, err := store.BestSolves("p", 2)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(solves) != 2 {
		t.Fatalf("got %d solves, expected 2", len(solves))
	}
	if solves[0].Moves != 5 || solves[0].Ticks != 20 || solves[0].Player != "ssh" {
		t.Errorf("first: got %+v, expected 5 moves / 20 ticks by ssh", solves[0])
	}
	if solves[1].Moves != 5 || solves[1].Ticks != 30 {
		t.Errorf("second: got %+v, expected 5 moves / 30 ticks", solves[1])
	}
	if solves[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStorePuzzleStats(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve(Solve{PuzzleID: "p", Moves: 9, Ticks: 40})
	store.RecordSolve(Solve{PuzzleID: "p", Moves: 5, Ticks: 60})
	store.RecordSolve(Solve{PuzzleID: "q", Moves: 3, Ticks: 7})

	stats, err := store.AllPuzzleStats()
	if err != nil {
		t.Fatalf("AllPuzzleStats() failed: %v", err)
	}
	p := stats["p"]
	if p == nil {
		t.Fatal("missing stats for p")
	}
	if p.Solves != 2 || p.BestMoves != 5 || p.BestTicks != 40 {
		t.Errorf("got %+v, expected 2 solves, 5 moves, 40 ticks", p)
	}
	if stats["q"] == nil || stats["q"].Solves != 1 {
		t.Errorf("got %+v for q, expected one solve", stats["q"])
	}

	if err := store.ClearSolves("p"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}
	solves, _ := store.BestSolves("p", 10)
	if len(solves) != 0 {
		t.Errorf("got %d solves after clear, expected 0", len(solves))
	}
}
