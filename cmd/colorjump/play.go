package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/color-jump/internal/core"
	"github.com/vovakirdan/color-jump/internal/games/colorjump"
	"github.com/vovakirdan/color-jump/internal/platform/tui"
	"github.com/vovakirdan/color-jump/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: colorjump).

Controls:
  Left/Right, A/D  - Steer
  Space/Up/W       - Switch colour
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Leave (when paused or after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer hazards and moving platforms, longer recovery
  normal - Config file settings
  hard   - More hazards and moving platforms, shorter recovery
  fixed  - No progression with score

Examples:
  colorjump play
  colorjump play colorjump_classic
  colorjump play --difficulty hard --seed 42
  colorjump play --config ./my-colorjump.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := colorjump.ModeStandard
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'colorjump list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	svc := tui.Services{
		Store:  store,
		Prefs:  openPrefs(),
		Player: flagPlayer,
		Logger: logger,
	}

	runErr := tui.Run(game, svc, terminalConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
