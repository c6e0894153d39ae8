package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/morse-invader/internal/morse"
	"github.com/vovakirdan/morse-invader/internal/registry"
	"github.com/vovakirdan/morse-invader/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [mode]",
	Short: "Show per-character accuracy",
	Long: `Display how often each target character was keyed correctly,
weakest first. Without a mode, rounds from every mode are combined.
With a mode, the latest rounds are listed as well.

Examples:
  invader stats
  invader stats invader_letters --recent 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

var flagRecent int

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of latest rounds to list for a mode")
}

func runStats(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'invader list' to see available modes.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "error", err)
	}
	defer store.Close()

	printGameSummary(store, gameID)

	chars, err := store.CharacterStats(gameID)
	if err != nil {
		logger.Error("cannot retrieve character stats", "error", err)
		return
	}

	if len(chars) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %s\n", "Char", "Code", "Tries", "Hits", "Accuracy")
	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %s\n", "----", "----", "-----", "----", "--------")
	for _, c := range chars {
		code := ""
		for _, r := range c.Target {
			code, _ = morse.CodeFor(r)
		}
		fmt.Printf("  %-4s  %-7s  %-6d  %-5d  %.0f%%\n", c.Target, code, c.Attempts, c.Hits, c.Accuracy()*100)
	}

	if gameID != "" && flagRecent > 0 {
		if err := printRecentRounds(os.Stdout, store, gameID, flagRecent); err != nil {
			logger.Error("cannot retrieve recent rounds", "error", err)
		}
	}
}

// printRecentRounds lists the latest rounds of a mode, newest first.
func printRecentRounds(w io.Writer, store *storage.Store, gameID string, limit int) error {
	rounds, err := store.RecentRounds(gameID, limit)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\nRecent rounds:\n")
	for _, r := range rounds {
		mark := "miss"
		if r.Hit {
			mark = "hit"
		}
		entered := r.Entered
		if entered == "" {
			entered = "(none)"
		}
		fmt.Fprintf(w, "  %s  %-4s  %-8s  %s\n", r.CreatedAt.Format("01-02 15:04"), r.Target, entered, mark)
	}
	return nil
}

// printGameSummary prints finished-game totals for one mode or all of them.
func printGameSummary(store *storage.Store, gameID string) {
	all, err := store.GetAllGamesStats()
	if err != nil || len(all) == 0 {
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		if gameID == "" || id == gameID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		s := all[id]
		fmt.Printf("%s: %d games, best %d, last played %s\n",
			id, s.GamesCount, s.HighScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	if len(ids) > 0 {
		fmt.Println()
	}
}
