package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-jump/internal/registry"
	"github.com/vovakirdan/color-jump/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered Color Jump mode.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
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

	// Play counts are optional; a missing database just leaves them blank.
	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	fmt.Printf("  %-*s  %-20s  %5s  %5s\n", maxIDLen, "ID", "Title", "Runs", "Best")
	fmt.Printf("  %-*s  %-20s  %5s  %5s\n", maxIDLen, "--", "-----", "----", "----")

	for _, g := range games {
		runs, best := "-", "-"
		if st, ok := stats[g.ID]; ok {
			runs = fmt.Sprint(st.GamesCount)
			best = fmt.Sprint(st.HighScore)
		}
		fmt.Printf("  %-*s  %-20s  %5s  %5s\n", maxIDLen, g.ID, g.Title, runs, best)
	}

	fmt.Println()
	fmt.Println("Run 'colorjump play <id>' to play a mode.")
}
