package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/morse-invader/internal/config"
	"github.com/vovakirdan/morse-invader/internal/games/invader"
	"github.com/vovakirdan/morse-invader/internal/registry"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default config YAML",
	Long: `Print the built-in config for a mode, ready to be copied to
~/.arcade/configs/invader.yaml and edited. With --effective the config
after files, presets and environment overrides is printed instead.

Examples:
  invader config > ~/.arcade/configs/invader.yaml
  invader config --effective --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved config instead of the defaults")
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := invader.ModeFull.ID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		os.Exit(1)
	}

	if !flagEffective {
		os.Stdout.Write(config.GetDefaultYAML(gameID))
		return
	}

	configureGames()
	cfg, _ := invader.LoadConfig()
	out, err := yaml.Marshal(cfg)
	if err != nil {
		logger.Fatal("cannot encode config", "error", err)
	}
	os.Stdout.Write(out)
}
