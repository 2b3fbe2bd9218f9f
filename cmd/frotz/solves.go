package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frotz/internal/platform/tui"
	"github.com/vovakirdan/frotz/internal/storage"
)

var (
	flagSolvesLimit int
	flagSolvesTUI   bool
)

var solvesCmd = &cobra.Command{
	Use:   "solves [puzzle]",
	Short: "Show recorded solves",
	Long: `Without an argument, shows a summary of every solved puzzle.
With a puzzle ID or name, lists its best solves, fewest moves first.

Examples:
  frotz solves
  frotz solves 03-power-up --limit 5
  frotz solves --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolves,
}

func init() {
	solvesCmd.Flags().IntVar(&flagSolvesLimit, "limit", 10, "Number of solves to show")
	solvesCmd.Flags().BoolVar(&flagSolvesTUI, "tui", false, "Open the interactive solve board")
}

func runSolves(_ *cobra.Command, args []string) error {
	store := openStore()
	if store == nil {
		return errors.New("database unavailable")
	}
	defer store.Close()

	campaign, err := loadCampaign(store)
	if err != nil {
		return err
	}

	if flagSolvesTUI {
		cfg := runtimeConfig()
		return tui.RunSolves(store, gameSettings(campaign), cfg.ScreenW, cfg.ScreenH)
	}

	if len(args) == 0 {
		return printSummary(store, campaign.IDs())
	}

	lvl, err := campaign.Resolve(args[0])
	if err != nil {
		return fmt.Errorf("unknown puzzle %q", args[0])
	}
	solves, err := store.BestSolves(lvl.ID, flagSolvesLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Solves - %s\n", lvl.Name)
	fmt.Println()
	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'frotz play %s' to set the first one!\n", lvl.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-6s  %-12s  %s\n", "Rank", "Moves", "Pulses", "Undos", "Ticks", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-6s  %-12s  %s\n", "----", "-----", "------", "-----", "-----", "------", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-5d  %-6d  %-5d  %-6d  %-12s  %s\n",
			i+1, s.Moves, s.Pulses, s.Undos, s.Ticks, s.Player, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store, ids []string) error {
	stats, err := store.AllPuzzleStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	fmt.Printf("  %-24s  %-6s  %-10s  %s\n", "Puzzle", "Solves", "Best", "Last solved")
	fmt.Printf("  %-24s  %-6s  %-10s  %s\n", "------", "------", "----", "-----------")
	for _, id := range ids {
		st, ok := stats[id]
		if !ok {
			continue
		}
		fmt.Printf("  %-24s  %-6d  %-10s  %s\n",
			id, st.Solves, fmt.Sprintf("%d moves", st.BestMoves), st.LastSolved.Format("2006-01-02 15:04"))
	}
	return nil
}
