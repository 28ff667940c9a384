// hillrider-window rides the hills in a desktop window.
//
// Usage:
//
//	hillrider-window [--mode ride|daily] [--seed N] [--difficulty preset] [--mute]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hillrider/internal/audio"
	"github.com/vovakirdan/hillrider/internal/config"
	"github.com/vovakirdan/hillrider/internal/games/ride"
	"github.com/vovakirdan/hillrider/internal/platform/window"
	"github.com/vovakirdan/hillrider/internal/storage"
)

var (
	flagMode       string
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVerbose    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "hillrider",
})

var rootCmd = &cobra.Command{
	Use:   "hillrider-window",
	Short: "Hill Rider in a desktop window",
	Long: `Ride the hills in a window.

Controls:
  Up/W       - Throttle
  Down/S     - Brake
  Left/A     - Lean back
  Right/D    - Lean forward
  P          - Pause
  Space/R    - Ride again (after a wipeout)
  Esc/Q      - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagMode, "mode", ride.ModeRide, "Mode: ride or daily")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Terrain seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rider config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	if flagMode != ride.ModeRide && flagMode != ride.ModeDaily {
		return fmt.Errorf("unknown mode %q, expected %s or %s", flagMode, ride.ModeRide, ride.ModeDaily)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	riderCfg, err := config.LoadRider(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyRiderPreset(&riderCfg, preset)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	sink := audio.Open(flagMute, logger)
	defer sink.Close()

	return window.Run(ride.New(flagMode, riderCfg), window.Options{
		Seed:   flagSeed,
		Store:  store,
		Audio:  sink,
		Logger: logger,
	})
}
