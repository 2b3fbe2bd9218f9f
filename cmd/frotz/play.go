package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frotz/internal/games/frotz"
	"github.com/vovakirdan/frotz/internal/games/frotz/levels"
	"github.com/vovakirdan/frotz/internal/platform/tui"
	"github.com/vovakirdan/frotz/internal/registry"
)

var flagPlayFile string

var playCmd = &cobra.Command{
	Use:   "play [puzzle]",
	Short: "Play a puzzle",
	Long: `Start playing a puzzle, given by ID or display name. Without an
argument the last puzzle played is resumed.

Controls:
  Arrows/hjkl  - Walk
  W/A/S/D      - Fire a pulse
  U            - Undo
  R            - Reset puzzle
  [ ]          - Rotate the view
  N            - Next puzzle (after solving)
  P            - Pause
  Q/Ctrl+C     - Quit

Examples:
  frotz play
  frotz play 02-fill-the-gap
  frotz play "Power Up" --pace relaxed
  frotz play --file ./my-puzzle.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayFile, "file", "", "Play a single puzzle file")
}

func runPlay(_ *cobra.Command, args []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var campaign levels.Campaign
	if flagPlayFile != "" {
		lvl, err := levels.LoadFile(flagPlayFile)
		if err != nil {
			return err
		}
		campaign = levels.Campaign{lvl}
	} else {
		var err error
		campaign, err = loadCampaign(store)
		if err != nil {
			return err
		}
	}

	settings := gameSettings(campaign)
	switch {
	case len(args) == 1:
		if _, err := campaign.Resolve(args[0]); err != nil {
			return fmt.Errorf("unknown puzzle %q, run 'frotz list' to see available puzzles", args[0])
		}
		settings.Start = args[0]
	case settings.Start == "" && store != nil:
		if last, err := store.LastPuzzle(); err == nil {
			settings.Start = last
		}
	}

	frotz.Configure(tui.PersistentSettings(store, settings, playerName()))
	game, err := registry.Create(frotz.GameID)
	if err != nil {
		return err
	}
	if err := tui.Run(game, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
