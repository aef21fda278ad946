package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snek/internal/config"
	"github.com/vovakirdan/tui-snek/internal/game"
	"github.com/vovakirdan/tui-snek/internal/platform/tui"
	"github.com/vovakirdan/tui-snek/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Esc            - Pause
  Enter/Space      - Start / restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower starting speed
  normal - Default starting speed
  hard   - Faster starting speed
  fixed  - Use the config file values as-is

Examples:
  snek play
  snek play --difficulty hard
  snek play --config ./my-snek.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The board is fixed-size, so refuse to start in a terminal that
	// cannot show a full frame.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < game.ScreenWidth || h < game.ScreenHeight {
			fmt.Fprintf(os.Stderr, "Error: terminal too small: need at least %dx%d, got %dx%d\n",
				game.ScreenWidth, game.ScreenHeight, w, h)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
