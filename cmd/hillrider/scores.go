package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hillrider/internal/games/ride"
	"github.com/vovakirdan/hillrider/internal/registry"
	"github.com/vovakirdan/hillrider/internal/storage"
)

var (
	flagSeedOnly  bool
	flagAllScores bool
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 rides for the given mode (default: ride).

Each ride lists its terrain seed; pass it to --seed to ride the same hills.
With --seed and --same-seed, only rides on that terrain are listed.
--all lists every recorded ride and --clear deletes them.

Examples:
  hillrider scores
  hillrider scores daily
  hillrider scores ride --seed 1712345678 --same-seed
  hillrider scores ride --all
  hillrider scores daily --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagSeedOnly, "same-seed", false, "Only list rides on the --seed terrain")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded ride instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded ride for the mode")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "same-seed")
	scoresCmd.MarkFlagsMutuallyExclusive("clear", "all")
	scoresCmd.MarkFlagsMutuallyExclusive("clear", "same-seed")
}

func runScores(_ *cobra.Command, args []string) error {
	mode := ride.ModeRide
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'hillrider list' to see available modes", mode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		logger.Debug("scores cleared", "mode", mode)
		fmt.Printf("Cleared all rides for %s.\n", mode)
		return nil
	}

	var scores []storage.ScoreEntry
	switch {
	case flagSeedOnly:
		scores, err = store.TopScoresForSeed(mode, flagSeed, 10)
	case flagAllScores:
		scores, err = store.AllScores(mode)
	default:
		scores, err = store.TopScores(mode, 10)
	}
	if err != nil {
		return err
	}

	title := mode
	for _, g := range registry.List() {
		if g.ID == mode {
			title = g.Title
		}
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No rides recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'hillrider play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-20s  %s\n", "Rank", "Score", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-20s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-20d  %s\n", i+1, entry.Score, entry.Seed, dateStr)
	}

	stats, err := store.GetGameStats(mode)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Rides: %d  Best: %d  Average: %.1f  Total: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalScore)
	return nil
}
