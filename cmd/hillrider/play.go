package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hillrider/internal/audio"
	"github.com/vovakirdan/hillrider/internal/games/ride"
	"github.com/vovakirdan/hillrider/internal/platform/tui"
	"github.com/vovakirdan/hillrider/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Start riding",
	Long: `Start riding in the given mode (default: ride).

Controls:
  Up/W       - Throttle
  Down/S     - Brake
  Left/A     - Lean back
  Right/D    - Lean forward
  P          - Pause
  R/Space    - Ride again (after a wipeout)
  B/Esc      - Back (while paused or after a wipeout)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Base physics, longer key holds
  normal - 30% faster and heavier
  hard   - 70% faster and heavier
  fixed  - Stays at the config's initial level

Examples:
  hillrider play
  hillrider play daily
  hillrider play --seed 1712345678
  hillrider play --difficulty hard
  hillrider play --config ./my-rider.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := ride.ModeRide
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'hillrider list' to see available modes", mode)
	}

	riderCfg, err := loadRiderConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(mode, riderCfg)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sink := audio.Open(flagMute, logger)
	defer sink.Close()

	_, err = tui.Run(game, runtimeConfig(), tui.Options{
		Store:         store,
		Audio:         sink,
		Input:         riderCfg.Input,
		Logger:        logger,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	})
	return err
}
