package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/plus2048/internal/registry"
	"github.com/vovakirdan/plus2048/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode, followed by
totals over every finished game.

Examples:
  plus2048 scores 2048
  plus2048 scores 2048_blackhole --recent
  plus2048 scores 2048_endless --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent games instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'plus2048 list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	if flagRecent {
		printRecent(store, gameID, title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'plus2048 play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Printf("Best: %d   Games: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		if stats.BestTile > 0 {
			fmt.Printf("Best tile: %d   Swallowed by black holes: %d   Lost: %d\n",
				stats.BestTile, stats.Annihilations, stats.Losses)
		}
	}
}

func printRecent(store *storage.Store, gameID, title string) {
	games, err := store.RecentGames(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		return
	}

	fmt.Printf("Recent Games - %s\n", title)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-7s  %-5s  %-5s  %-5s  %-6s  %s\n", "Date", "Score", "Tile", "Moves", "Holes", "Result", "Session")
	for _, g := range games {
		result := "quit"
		if g.Lost {
			result = "lost"
		}
		session := g.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		fmt.Printf("  %-16s  %-7d  %-5d  %-5d  %-5d  %-6s  %s\n",
			g.CreatedAt.Format("2006-01-02 15:04"), g.Score, g.MaxTile, g.Moves, g.Annihilations, result, session)
	}
}
