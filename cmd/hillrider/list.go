package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hillrider/internal/registry"
	"github.com/vovakirdan/hillrider/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all registered ride modes with their ride count and best score.`,
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

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	stats := map[string]*storage.GameStats{}
	if store := openStore(); store != nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		} else {
			logger.Warn("could not load ride stats", "err", err)
		}
		store.Close()
	}

	fmt.Printf("  %-*s  %-12s  %5s  %s\n", maxIDLen, "ID", "Title", "Rides", "Best")
	fmt.Printf("  %-*s  %-12s  %5s  %s\n", maxIDLen, "--", "-----", "-----", "----")

	for _, g := range games {
		rides, best := 0, "-"
		if st, ok := stats[g.ID]; ok {
			rides = st.GamesCount
			best = fmt.Sprint(st.HighScore)
		}
		fmt.Printf("  %-*s  %-12s  %5d  %s\n", maxIDLen, g.ID, g.Title, rides, best)
	}

	fmt.Println()
	fmt.Println("Run 'hillrider play <id>' to ride.")
}
