package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hillrider/internal/audio"
	"github.com/vovakirdan/hillrider/internal/platform/tui"
	"github.com/vovakirdan/hillrider/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to ride, Tab for high scores.
After a wipeout, press B to come back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  hillrider menu
  hillrider menu --fps 30
  hillrider menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	riderCfg, err := loadRiderConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sink := audio.Open(flagMute, logger)
	defer sink.Close()

	opts := tui.Options{
		Store:         store,
		Audio:         sink,
		Input:         riderCfg.Input,
		Logger:        logger,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	}
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID, riderCfg)
		if err != nil {
			logger.Error("cannot create mode", "mode", menuResult.GameID, "err", err)
			continue
		}

		// Every ride from the menu gets fresh terrain unless --seed pins it.
		cfg.Seed = flagSeed
		backToMenu, err := tui.Run(game, cfg, opts)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
