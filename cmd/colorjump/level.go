package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/color-jump/internal/config"
	"github.com/vovakirdan/color-jump/internal/games/colorjump"
	"github.com/vovakirdan/color-jump/internal/levelgen"
	"github.com/vovakirdan/color-jump/internal/registry"
)

var (
	flagLevelMode   string
	flagLevelHeight float64
	flagLevelStep   float64
	flagLevelScore  int
	flagLevelFormat string
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Print a generated level without playing it",
	Long: `Run the level generator headlessly and print every spawn command.

The viewport is raised by --step until its top reaches --height. The score
passed to the generator follows the viewport height unless --score is set.

Examples:
  colorjump level --seed 42
  colorjump level --seed 42 --height 200 --score 150
  colorjump level --mode colorjump_classic --format yaml`,
	Args: cobra.NoArgs,
	RunE: runLevel,
}

func init() {
	levelCmd.Flags().StringVar(&flagLevelMode, "mode", colorjump.ModeStandard, "Mode whose generator config to use")
	levelCmd.Flags().Float64Var(&flagLevelHeight, "height", 50, "Viewport top to climb to")
	levelCmd.Flags().Float64Var(&flagLevelStep, "step", 1, "Viewport rise per generator call")
	levelCmd.Flags().IntVar(&flagLevelScore, "score", -1, "Fixed score (-1 = follow height)")
	levelCmd.Flags().StringVar(&flagLevelFormat, "format", "text", "Output format: text or yaml")
}

// levelEntry is one spawn command in printable form.
type levelEntry struct {
	Kind        string  `yaml:"kind"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Color       string  `yaml:"color,omitempty"`
	MovingRange float64 `yaml:"moving_range,omitempty"`
	MovingSpeed float64 `yaml:"moving_speed,omitempty"`
	Attempts    int     `yaml:"attempts,omitempty"`
	Fallback    bool    `yaml:"fallback,omitempty"`
}

func toEntry(cmd levelgen.SpawnCommand) levelEntry {
	switch c := cmd.(type) {
	case levelgen.PlacePlatform:
		e := levelEntry{
			Kind:     "platform",
			X:        c.X,
			Y:        c.Y,
			Color:    c.Color.String(),
			Attempts: c.Attempts,
			Fallback: c.Fallback,
		}
		if c.Moving != nil {
			e.MovingRange = c.Moving.Range
			e.MovingSpeed = c.Moving.Speed
		}
		return e
	case levelgen.PlaceHazard:
		return levelEntry{Kind: "hazard", X: c.X, Y: c.Y}
	default:
		p := cmd.Position()
		return levelEntry{Kind: "unknown", X: p.X, Y: p.Y}
	}
}

// levelRequest describes one headless generator run.
type levelRequest struct {
	Config levelgen.Config
	Seed   int64
	Height float64
	Step   float64
	Score  int // negative follows the viewport height
}

// generateLevel drives a generator the way the game host does and collects
// every command it emits.
func generateLevel(req levelRequest, logger *log.Logger) []levelEntry {
	gen := levelgen.New(rand.New(rand.NewSource(req.Seed)), levelgen.WithLogger(logger))

	var entries []levelEntry
	for _, c := range gen.Initialize(req.Config) {
		entries = append(entries, toEntry(c))
	}

	step := req.Step
	if step <= 0 {
		step = 1
	}
	for top := step; top <= req.Height; top += step {
		score := req.Score
		if score < 0 {
			score = int(top)
		}
		for _, c := range gen.Advance(top, score) {
			entries = append(entries, toEntry(c))
		}
	}
	return entries
}

func writeLevel(w io.Writer, entries []levelEntry, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode level: %w", err)
		}
		return enc.Close()
	case "text":
		fmt.Fprintf(w, "%-8s  %7s  %7s  %-9s  %s\n", "KIND", "X", "Y", "COLOR", "NOTES")
		for _, e := range entries {
			notes := ""
			if e.MovingSpeed > 0 {
				notes = fmt.Sprintf("moving range=%.2f speed=%.2f", e.MovingRange, e.MovingSpeed)
			}
			if e.Fallback {
				notes += " fallback"
			}
			fmt.Fprintf(w, "%-8s  %7.2f  %7.2f  %-9s  %s\n", e.Kind, e.X, e.Y, e.Color, notes)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}

// checkMode rejects modes no generator config is registered for.
func checkMode(mode string) error {
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q (want %s or %s)", mode, colorjump.ModeStandard, colorjump.ModeClassic)
	}
	return nil
}

func runLevel(_ *cobra.Command, _ []string) error {
	if err := checkMode(flagLevelMode); err != nil {
		return err
	}
	cfg, err := config.Load(flagLevelMode, flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Fallback placements go to stderr so they never mix with the level.
	genLogger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "levelgen"})
	entries := generateLevel(levelRequest{
		Config: cfg.Generator,
		Seed:   seed,
		Height: flagLevelHeight,
		Step:   flagLevelStep,
		Score:  flagLevelScore,
	}, genLogger)

	if flagLevelFormat == "text" {
		fmt.Printf("# mode=%s seed=%d preset=%s\n", flagLevelMode, seed, preset)
	}
	return writeLevel(os.Stdout, entries, flagLevelFormat)
}
