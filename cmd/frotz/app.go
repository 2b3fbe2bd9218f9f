package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/frotz/internal/config"
	"github.com/vovakirdan/frotz/internal/core"
	"github.com/vovakirdan/frotz/internal/games/frotz"
	"github.com/vovakirdan/frotz/internal/games/frotz/levels"
	"github.com/vovakirdan/frotz/internal/storage"
)

// openStore opens the configured database. Failures are logged and play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(
		config.ExpandHome(appConfig.Storage.DBPath),
		storage.WithLogger(logger.WithPrefix("frotz-db")),
	)
	if err != nil {
		logger.Warn("could not open database", "err", err)
		return nil
	}
	return store
}

// loadCampaign merges the built-in campaign, puzzles imported into store
// and the configured level directory. Later sources override earlier ones
// by ID.
func loadCampaign(store *storage.Store) (levels.Campaign, error) {
	builtin, err := levels.Builtin().LoadAll()
	if err != nil {
		return nil, err
	}
	sets := [][]levels.Level{builtin}

	if store != nil {
		stored, err := storedLevels(store)
		if err != nil {
			logger.Warn("could not read stored puzzles", "err", err)
		}
		sets = append(sets, stored)
	}

	if dir := appConfig.Levels.Dir; dir != "" {
		loader := levels.NewLoader(config.ExpandHome(dir))
		loader.Logger = logger
		extra, err := loader.LoadAll()
		if err != nil {
			return nil, err
		}
		sets = append(sets, extra)
	}
	return levels.Merge(sets...), nil
}

func storedLevels(store *storage.Store) ([]levels.Level, error) {
	entries, err := store.ListPuzzles()
	if err != nil {
		return nil, err
	}
	out := make([]levels.Level, 0, len(entries))
	for _, e := range entries {
		d, err := store.LoadPuzzle(e.ID)
		if err != nil {
			logger.Warn("skipping stored puzzle", "id", e.ID, "err", err)
			continue
		}
		out = append(out, levels.Level{Data: d, FilePath: "db:" + e.ID})
	}
	return out, nil
}

// gameSettings builds the puzzle settings from the config.
func gameSettings(campaign levels.Campaign) frotz.Settings {
	return frotz.Settings{
		Campaign:       campaign,
		Start:          appConfig.Levels.Start,
		PulseLifetime:  appConfig.Gameplay.PulseLifetime,
		MaxSettleTicks: appConfig.Gameplay.MaxSettleTicks,
		Logger:         logger.WithPrefix("frotz-game"),
	}
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.Timing.TickRate
	cfg.StepEvery = appConfig.Timing.StepEvery
	return cfg
}

// playerName identifies the local player in solve records.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
