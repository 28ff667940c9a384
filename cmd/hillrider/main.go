// hillrider is a terminal hill riding game: keep the rider upright over
// endless rolling terrain for as long as you can.
//
// Usage:
//
//	hillrider list              - List available modes
//	hillrider play [mode]       - Ride (default mode: ride)
//	hillrider menu              - Pick a mode interactively
//	hillrider serve             - Start SSH server for remote play
//	hillrider scores [mode]     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Ride the terrain of a recorded seed
//	--db <path>           - Set database path (default: ~/.hillrider/scores.db)
//	--config <path>       - Custom rider config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound
//	--verbose             - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hillrider/internal/config"
	"github.com/vovakirdan/hillrider/internal/core"
	_ "github.com/vovakirdan/hillrider/internal/games/ride" // Registers ride and daily
	"github.com/vovakirdan/hillrider/internal/storage"
)

var (
	// Global flags
	flagFPS        int
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

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hillrider",
	Short: "Hill Rider - ride endless hills in your terminal",
	Long: `Hill Rider scrolls endless rolling hills under a rider you steer.
Throttle up slopes, catch air off the crests, and land wheels down:
touch the ground upside down and it's a wipeout.

Available commands:
  list     - Show all available modes
  play     - Start riding
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hillrider play
  hillrider play daily
  hillrider play --seed 1712345678 --difficulty hard
  hillrider serve --ssh :2222
  hillrider scores ride`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Terrain seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rider config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadRiderConfig resolves the rider config from --config and --difficulty.
func loadRiderConfig() (config.RiderConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RiderConfig{}, err
	}

	cfg, err := config.LoadRider(flagConfig)
	if err != nil {
		return config.RiderConfig{}, err
	}

	config.ApplyRiderPreset(&cfg, preset)
	logger.Debug("rider config loaded", "difficulty", preset, "level", cfg.Difficulty.InitialLevel)
	return cfg, nil
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Riding works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}
