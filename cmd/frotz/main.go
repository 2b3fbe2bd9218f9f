// frotz is a terminal puzzle game about a wizard who walks, pushes and fires
// pulses across a small voxel world.
//
// Usage:
//
//	frotz list                     - List available puzzles
//	frotz play [puzzle]            - Play a puzzle (default: resume)
//	frotz menu                     - Pick puzzles interactively
//	frotz serve                    - Start SSH server for remote play
//	frotz solves [puzzle]          - Show recorded solves
//	frotz import <file>...         - Store puzzle files in the database
//	frotz export <puzzle> <file>   - Write a puzzle in any supported format
//	frotz validate <file>...       - Check puzzle files
//
// Global flags:
//
//	--config <path>     - Config file (YAML or TOML)
//	--log-level <lvl>   - debug, info, warn, error
//	--pace <preset>     - relaxed, normal, brisk, instant
//	--db <path>         - Database path (default: ~/.frotz/frotz.db)
//	--levels <dir>      - Extra level directory
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/frotz/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagPace     string
	flagFPS      int
	flagDBPath   string
	flagLevels   string

	appConfig config.FrotzConfig
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frotz",
	Short: "Frotz - a pulse-wizard puzzle game for your terminal",
	Long: `Frotz is a turn-based puzzle game played on a small voxel grid.
Walk the wizard to the exit by pushing boxes and mirrors, riding elevators
and firing pulses that toggle power blocks.

Available commands:
  list      - Show all puzzles
  play      - Play a puzzle directly
  menu      - Interactive puzzle picker
  serve     - Start SSH server for remote play
  solves    - View recorded solves
  import    - Store puzzle files in the database
  export    - Convert a puzzle to another format
  validate  - Check puzzle files

Examples:
  frotz menu
  frotz play 03-power-up
  frotz play "Mirror, Mirror" --pace brisk
  frotz export 05-relay relay.yaml.zst
  frotz serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Simulation pace: relaxed, normal, brisk, instant")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Extra level directory")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(solvesCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrotz(flagConfig)
	if err != nil {
		return err
	}

	if flagPace != "" {
		if config.StepEveryForPace(config.Pace(flagPace)) == 0 {
			return fmt.Errorf("unknown pace %q", flagPace)
		}
		config.ApplyPace(&cfg, config.Pace(flagPace))
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", cfg.Logging.Level)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "frotz",
		Level:           level,
	})

	appConfig = cfg
	return nil
}
