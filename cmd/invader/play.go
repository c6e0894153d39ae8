package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/morse-invader/internal/games/invader"
	"github.com/vovakirdan/morse-invader/internal/platform/tui"
	"github.com/vovakirdan/morse-invader/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: invader).

Controls:
  R          - Sound a new random target
  Left       - Dot
  Right      - Dash
  Enter      - Check your code
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow target, long pause before it moves
  normal - Default timing, speeds up with your matches
  hard   - Fast target, short pause
  fixed  - No progression, stays at config's initial level

Examples:
  invader play
  invader play invader_digits
  invader play --difficulty hard
  invader play --mute --config ./my-invader.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := invader.ModeFull.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invader list' to see available modes.")
		os.Exit(1)
	}

	configureGames()

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	store := openStore()
	player := newPlayer()

	runErr := tui.Run(game, store, player, runtimeConfig())

	// Close before potential exit
	//nolint:errcheck // Best-effort cleanup
	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Fatal("error running game", "error", runErr)
	}
}
