// plus2048 is 2048 with black holes, played in the terminal or over SSH.
//
// Usage:
//
//	plus2048 list              - List available modes
//	plus2048 play <mode>       - Play a mode
//	plus2048 menu              - Start menu to pick modes interactively
//	plus2048 serve             - Start SSH server for remote play
//	plus2048 scores <mode>     - Show high scores for a mode
//	plus2048 sim [script]      - Replay a move script headlessly
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.plus2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/plus2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "plus2048",
	Short: "2048 with black holes, in your terminal",
	Long: `plus2048 is the sliding-tile game 2048 with a twist: some boards
contain black holes that swallow any tile sliding towards them, and the
tile's value is taken off your score.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Replay a move script without a terminal UI

Examples:
  plus2048 list
  plus2048 play 2048_blackhole
  plus2048 menu
  plus2048 serve --ssh :2222
  plus2048 scores 2048
  plus2048 sim --seed 7 moves.txt`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.plus2048/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
