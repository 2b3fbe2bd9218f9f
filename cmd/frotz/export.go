package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frotz/internal/games/frotz/levels/formats"
)

var flagExportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <puzzle> <file|->",
	Short: "Write a puzzle in any supported format",
	Long: `Resolves a puzzle by ID or name and writes its normalized form.
The format follows the output file extension; append .zst to compress.
Use "-" to write to stdout in the format given by --format.

Examples:
  frotz export 03-power-up power.toml
  frotz export "Mirror, Mirror" mirror.json.zst
  frotz export 05-relay - --format yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "yaml", "Format for stdout: json, yaml, toml")
}

func runExport(_ *cobra.Command, args []string) error {
	ref, out := args[0], args[1]

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	campaign, err := loadCampaign(store)
	if err != nil {
		return err
	}
	lvl, err := campaign.Resolve(ref)
	if err != nil {
		return fmt.Errorf("unknown puzzle %q", ref)
	}

	p, err := lvl.NewPuzzle()
	if err != nil {
		return err
	}

	name := out
	if out == "-" {
		name = "stdout." + flagExportFormat
	}
	if !formats.IsSupported(name) {
		return fmt.Errorf("unsupported format for %s", name)
	}
	data, err := formats.Encode(p.Serialize(), name)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, len(data))
	return nil
}
