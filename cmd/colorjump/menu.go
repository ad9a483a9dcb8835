package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-jump/internal/config"
	"github.com/vovakirdan/color-jump/internal/platform/tui"
	"github.com/vovakirdan/color-jump/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start Color Jump in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty and
Enter to play. After a run ends press B to return to the menu.
The last chosen difficulty is remembered unless --difficulty is given.

Controls:
  Up/Down/j/k     - Pick mode
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  colorjump menu
  colorjump menu --fps 30
  colorjump menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	store := openStore()
	prefs := openPrefs()

	preset, _ := config.ParsePreset(flagDifficulty)
	if prefs != nil && !cmd.Flags().Changed("difficulty") {
		if last, err := prefs.LastDifficulty(); err == nil && last != "" {
			if p, perr := config.ParsePreset(last); perr == nil {
				preset = p
			}
		}
	}

	cfg := terminalConfig()
	svc := tui.Services{
		Store:  store,
		Prefs:  prefs,
		Player: flagPlayer,
		Logger: logger,
	}

	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, prefs, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if ds, ok := game.(registry.DifficultySetter); ok {
			ds.SetDifficulty(string(preset))
		}
		if prefs != nil {
			if err := prefs.SetLastDifficulty(string(preset)); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save difficulty: %v\n", err)
			}
		}

		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, svc, runCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
