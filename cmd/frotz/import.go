package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frotz/internal/games/frotz/levels"
)

var flagImportID string

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Store puzzle files in the database",
	Long: `Reads puzzle files in any supported format (.json, .yaml, .toml,
optionally .zst compressed), builds each puzzle and stores its normalized
form. Imported puzzles join the campaign and replace built-in levels with
the same ID.

Examples:
  frotz import ./my-puzzle.yaml
  frotz import ./pack/*.toml
  frotz import ./draft.json --id 10-my-level`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagImportID, "id", "", "Store under this ID (single file only)")
}

func runImport(_ *cobra.Command, args []string) error {
	if flagImportID != "" && len(args) > 1 {
		return errors.New("--id needs exactly one file")
	}

	store := openStore()
	if store == nil {
		return errors.New("database unavailable")
	}
	defer store.Close()

	failed := 0
	for _, path := range args {
		lvl, err := levels.LoadFile(path)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		if flagImportID != "" {
			lvl.ID = flagImportID
		}
		if problems, err := levels.Lint(lvl); err != nil || len(problems) > 0 {
			if err == nil {
				err = errors.New(strings.Join(problems, "; "))
			}
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}

		p, err := lvl.NewPuzzle()
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		d := p.Serialize()
		if err := store.SavePuzzle(d); err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		logger.Debug("imported", "file", path, "id", d.ID)
		fmt.Printf("ok    %s -> %s (%d entities)\n", path, d.ID, len(d.Entities))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
