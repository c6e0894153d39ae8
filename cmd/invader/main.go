// invader is a terminal arcade game for learning Morse code.
//
// Usage:
//
//	invader play [mode]        - Play a mode (default: invader)
//	invader menu               - Start menu to pick modes interactively
//	invader list               - List available modes
//	invader scores <mode>      - Show high scores for a mode
//	invader stats [mode]       - Show per-character accuracy
//	invader serve              - Start SSH server for remote play
//	invader encode <text...>   - Print (and optionally sound) Morse code
//	invader decode <code...>   - Decode dot/dash groups
//	invader config [mode]      - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--mute                 - Disable audio
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/morse-invader/internal/games/invader"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "invader",
})

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invader",
	Short: "Morse Invader - learn Morse code in your terminal",
	Long: `Morse Invader sounds a random character in Morse code and animates it
across the screen. Key it back with LEFT (dot) and RIGHT (dash), then press
Enter to check your answer.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all available modes
  scores   - View high scores
  stats    - View per-character accuracy
  serve    - Start SSH server for remote play
  encode   - Translate text to Morse code
  decode   - Translate Morse code to text
  config   - Print the default config

Audio can be tuned with MORSE_AUDIO_ENABLED, MORSE_VOLUME (0-100),
MORSE_TONE_HZ and MORSE_DIT_MS, also read from a .env file.

Examples:
  invader play
  invader play invader_letters --difficulty easy
  invader encode SOS --play
  invader decode ... --- ...`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(configCmd)
}
