package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/plus2048/internal/games/t2048"
	"github.com/vovakirdan/plus2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered game mode and the campaign levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Campaign levels:")
	for _, lvl := range t2048.Levels() {
		holes := ""
		if n := lvl.Hazards(); n > 0 {
			holes = fmt.Sprintf(", %d black holes", n)
		}
		fmt.Printf("  %2d. %-16s %dx%d, target %d%s\n",
			lvl.ID, lvl.Name, lvl.Board.Size, lvl.Board.Size, lvl.Target, holes)
	}

	fmt.Println()
	fmt.Println("Run 'plus2048 play <id>' to play a mode.")
}
