package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/morse-invader/internal/audio"
	"github.com/vovakirdan/morse-invader/internal/games/invader"
	"github.com/vovakirdan/morse-invader/internal/morse"
)

var flagPlay bool

var encodeCmd = &cobra.Command{
	Use:   "encode <text...>",
	Short: "Translate text to Morse code",
	Long: `Print the Morse code for the given text. Letters are separated by a
space and words by " / ". With --play the code is also sounded.

Examples:
  invader encode SOS
  invader encode hello world --play`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <code...>",
	Short: "Translate Morse code to text",
	Long: `Decode dot/dash groups. Separate letters with spaces and words with "/".
Unknown groups decode to '?'.

Examples:
  invader decode ... --- ...
  invader decode ".... .. / - .... . .-. ."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,

	// Groups such as "-.-" or "---" would otherwise be read as flags.
	DisableFlagParsing: true,
}

func init() {
	encodeCmd.Flags().BoolVar(&flagPlay, "play", false, "Sound the code through the speaker")
}

func runEncode(_ *cobra.Command, args []string) error {
	configureGames()

	text := strings.Join(args, " ")
	code, err := morse.EncodeText(text)
	if err != nil {
		return fmt.Errorf("encode %q: %w", text, err)
	}
	fmt.Println(code)

	if !flagPlay || flagMute {
		return nil
	}

	cfg, _ := invader.LoadConfig()
	audioCfg := cfg.Audio
	audioCfg.Enabled = true
	player, err := audio.New(audioCfg)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	defer player.Close()

	player.Play(text)
	// Playback is asynchronous; wait for the sequence plus the device buffer.
	time.Sleep(audio.Duration(text, audio.Dit(audioCfg)) + 200*time.Millisecond)
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		return cmd.Help()
	}
	fmt.Fprintln(cmd.OutOrStdout(), morse.DecodeText(strings.Join(args, " ")))
	return nil
}
