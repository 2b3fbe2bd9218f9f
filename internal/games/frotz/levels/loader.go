// Package levels loads puzzles from directories, single files and the
// embedded built-in campaign. This package depends on core but core does
// not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"

	"github.com/vovakirdan/frotz/internal/games/frotz/core"
	"github.com/vovakirdan/frotz/internal/games/frotz/levels/formats"
)

//go:embed builtin
var builtinFS embed.FS

// ErrNotFound is returned when no level matches a lookup.
var ErrNotFound = errors.New("level not found")

// Level is a parsed puzzle file.
type Level struct {
	core.Data
	FilePath string
}

// NewPuzzle builds a fresh, initialized puzzle from the level.
func (l Level) NewPuzzle(opts ...core.Option) (*core.Puzzle, error) {
	p, err := core.Deserialize(l.Data, opts...)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return p, nil
}

// Loader handles loading levels from a file tree.
type Loader struct {
	Root   string
	fsys   fs.FS
	Logger *log.Logger // Optional; skipped files are reported at warn level
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over any file system, rooted at its top.
func NewFSLoader(fsys fs.FS, name string) *Loader {
	return &Loader{Root: name, fsys: fsys}
}

// Builtin returns a loader over the embedded campaign.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return NewFSLoader(sub, "builtin")
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. Files that fail
// to parse are skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.IsSupported(p) {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return err
		}
		level, err := parseLevel(data, p)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level", "file", p, "err", err)
			}
			return nil
		}
		level.FilePath = path.Join(filepath.ToSlash(l.Root), p)
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file from disk.
func LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	level, err := parseLevel(data, p)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return findByID(levels, id)
}

// LoadByName loads a level by its display name, ignoring case.
func (l *Loader) LoadByName(name string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return findByName(levels, name)
}

// Resolve looks a reference up as an ID first, then as a display name.
func (l *Loader) Resolve(ref string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return resolve(levels, ref)
}

// Next returns the level that follows cur. See Campaign.Next.
func (l *Loader) Next(cur Level) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Campaign(levels).Next(cur)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return Campaign(levels).IDs(), nil
}

func parseLevel(data []byte, p string) (Level, error) {
	d, err := formats.Parse(data, p)
	if err != nil {
		return Level{}, err
	}
	if d.ID == "" {
		d.ID = baseID(p)
	}
	return Level{Data: d}, nil
}

// baseID derives an ID from a file name with all extensions stripped.
func baseID(p string) string {
	name := filepath.Base(p)
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}

func findByID(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func findByName(levels []Level, name string) (Level, error) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(name))
	for _, lvl := range levels {
		if fold.String(lvl.Name) == want {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

func resolve(levels []Level, ref string) (Level, error) {
	if lvl, err := findByID(levels, ref); err == nil {
		return lvl, nil
	}
	return findByName(levels, ref)
}
