package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/morse-invader/internal/audio"
	"github.com/vovakirdan/morse-invader/internal/core"
	"github.com/vovakirdan/morse-invader/internal/games/invader"
	"github.com/vovakirdan/morse-invader/internal/storage"
)

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGames passes --config and --difficulty to the game package.
// Must run before games are created.
func configureGames() {
	invader.SetConfigPath(flagConfig)
	invader.SetDifficultyPreset(flagDifficulty)

	if _, err := invader.LoadConfig(); err != nil {
		logger.Warn("config unusable, falling back to defaults", "error", err)
	}
}

// openStore opens the scores database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newPlayer returns the audio player for local play.
func newPlayer() audio.Player {
	if flagMute {
		return audio.Nop{}
	}

	cfg, _ := invader.LoadConfig()
	player, err := audio.New(cfg.Audio)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	return player
}
