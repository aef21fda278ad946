// snek is a terminal snake game played on a fixed 30x100 board.
//
// Usage:
//
//	snek play            - Play in the current terminal
//	snek scores          - Show the high score table
//	snek serve           - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.snek/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "Snek - classic snake in your terminal",
	Long: `Snek is a terminal snake game. Eat snacks to grow and score,
grab power items for a big bonus, and watch out for the obstacles
that appear as your score climbs.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  snek play
  snek play --difficulty hard
  snek scores
  snek serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snek/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
