package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/plus2048/internal/core"
	"github.com/vovakirdan/plus2048/internal/games/t2048"
	"github.com/vovakirdan/plus2048/internal/platform/tui"
	"github.com/vovakirdan/plus2048/internal/registry"
	"github.com/vovakirdan/plus2048/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Without --difficulty or --level a setup screen lets you pick both.

Controls:
  Arrows/WASD/hjkl  - Shift the board
  Mouse drag        - Swipe
  :                 - Type a move ("up", "swipe left", "go north")
  P                 - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - No black holes
  normal - Boards as configured
  hard   - One more black hole on boards that have them
  fixed  - Every campaign level on the first level's board

Examples:
  plus2048 play 2048
  plus2048 play 2048 --level 4
  plus2048 play 2048_blackhole --difficulty hard
  plus2048 play 2048_endless --config ./my-2048.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-based)")
}

// terminalConfig builds the runtime config from the terminal size and
// global flags.
func terminalConfig() core.RuntimeConfig {
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

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'plus2048 list' to see available modes.")
		os.Exit(1)
	}

	cfg := terminalConfig()

	// Set config path and difficulty before the game is created
	t2048.SetConfigPath(flagConfig)
	t2048.SetDifficultyPreset(flagDifficulty)

	var sel *tui.T2048Selection
	if flagDifficulty == "" && flagLevel == 0 {
		var err error
		sel, _, err = tui.RunT2048Setup(gameID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User pressed back or quit
		if sel == nil {
			return
		}
	} else if flagLevel > 0 {
		if flagLevel > t2048.LevelCount() {
			fmt.Fprintf(os.Stderr, "Error: level %d out of range (1-%d)\n", flagLevel, t2048.LevelCount())
			os.Exit(1)
		}
		sel = &tui.T2048Selection{Level: flagLevel}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	tui.ApplySelection(game, sel)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
