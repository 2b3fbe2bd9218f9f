package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frotz/internal/games/frotz/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check puzzle files",
	Long: `Parses each file, checks it against the puzzle schema, builds the
puzzle and reports design problems: a missing wizard or exit, unpaired
mirrors, or a puzzle that starts already solved or lost.

Examples:
  frotz validate ./levels/*.yaml
  frotz validate relay.json.zst`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		lvl, err := levels.LoadFile(path)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		problems, err := levels.Lint(lvl)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		if len(problems) > 0 {
			fmt.Printf("FAIL  %s: %s\n", path, strings.Join(problems, "; "))
			failed++
			continue
		}
		fmt.Printf("ok    %s (%s, %d entities)\n", path, lvl.ID, len(lvl.Entities))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
