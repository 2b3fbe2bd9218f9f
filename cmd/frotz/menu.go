package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/frotz/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick puzzles interactively",
	Long: `Opens the puzzle picker. Solved puzzles are marked with their best
move count; Tab opens the solve board.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	campaign, err := loadCampaign(store)
	if err != nil {
		return err
	}
	return tui.RunSession(store, gameSettings(campaign), runtimeConfig(), playerName())
}
