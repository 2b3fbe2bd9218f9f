package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long: `Shows every puzzle in the campaign: the built-in levels, puzzles
imported into the database and the configured level directory.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	campaign, err := loadCampaign(store)
	if err != nil {
		return err
	}
	if len(campaign) == 0 {
		fmt.Println("No puzzles available.")
		return nil
	}

	solved := map[string]int{}
	if store != nil {
		if stats, err := store.AllPuzzleStats(); err == nil {
			for id, st := range stats {
				solved[id] = st.BestMoves
			}
		}
	}

	maxIDLen := 2 // "ID" header
	for _, lvl := range campaign {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Println("Available puzzles:")
	fmt.Println()
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Name", "Best")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "----", "----")
	for _, lvl := range campaign {
		best := "-"
		if moves, ok := solved[lvl.ID]; ok {
			best = fmt.Sprintf("%d moves", moves)
		}
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, lvl.ID, lvl.Name, best)
	}

	fmt.Println()
	fmt.Println("Run 'frotz play <id>' to play a puzzle.")
	return nil
}
