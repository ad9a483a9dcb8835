// colorjump is a terminal colour-matching vertical jumper.
//
// Usage:
//
//	colorjump list              - List game modes
//	colorjump play [mode]       - Play a mode (default: colorjump)
//	colorjump menu              - Start menu to pick a mode and difficulty
//	colorjump serve             - Start SSH server for remote play
//	colorjump scores <mode>     - Show high scores for a mode
//	colorjump level             - Print a generated level without playing it
//
// Global flags default from COLORJUMP_* environment variables:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.colorjump/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--player <name>      - Name scores are recorded under
//	--log <path>         - Write game diagnostics to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-jump/internal/config"
	"github.com/vovakirdan/color-jump/internal/games/colorjump"
	"github.com/vovakirdan/color-jump/internal/storage"
)

const defaultDBPath = "~/.colorjump/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagLogFile    string

	settings config.Settings
	logFile  *os.File
	logger   *log.Logger // nil unless --log is set
)

func main() {
	s, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	settings = s
	registerGlobalFlags(settings)
	registerServeFlags(settings)

	err = rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorjump",
	Short: "Color Jump - bounce upward on platforms that match your colour",
	Long: `Color Jump is a vertical jumper for the terminal. You bounce
automatically; steer left and right and switch colour so every platform
you land on matches you. Land on the wrong colour and you shrink; do it
again before you recover and the run is over.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  level    - Print a generated level

Examples:
  colorjump play
  colorjump play colorjump_classic --difficulty hard
  colorjump menu
  colorjump serve --ssh :2222
  colorjump level --seed 42 --height 60`,
	PersistentPreRunE: setupGlobals,
	SilenceUsage:      true,
}

func registerGlobalFlags(s config.Settings) {
	dbPath := s.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	player := os.Getenv("USER")
	if player == "" {
		player = "player"
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", s.FPS, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", s.Seed, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", dbPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", s.ConfigPath, "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", s.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagPlayer, "player", player, "Name scores are recorded under")
	pf.StringVar(&flagLogFile, "log", s.LogFile, "Write game diagnostics to this file")
}

// setupGlobals validates global flags and configures the game package.
func setupGlobals(_ *cobra.Command, _ []string) error {
	if flagFPS < 1 || flagFPS > 240 {
		return fmt.Errorf("--fps must be in [1, 240], got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return fmt.Errorf("--difficulty: %w", err)
	}

	colorjump.SetConfigPath(flagConfig)
	colorjump.SetDifficultyPreset(flagDifficulty)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "colorjump",
			Level:           log.DebugLevel,
		})
		colorjump.SetLogger(logger)
	}
	return nil
}

// openPrefs opens the best-score store. Failure is not fatal.
func openPrefs() *storage.Prefs {
	prefs, err := storage.OpenPrefs(settings.PrefsApp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open preferences: %v\n", err)
		return nil
	}
	return prefs
}

// openStore opens the score database. Failure is not fatal.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelCmd)
}
