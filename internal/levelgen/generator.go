// Package levelgen decides where platforms and hazards appear as the view
// climbs. It owns only the placement frontier and a window of recent
// positions; the host materializes and destroys the obstacles.
package levelgen

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-jump/internal/core"
)

// State is the mutable part of a generator.
type State struct {
	HighestSpawnedY float64
	Placed          []core.Vec2 // platforms and hazards, oldest first
}

// Generator places platforms ahead of the viewport.
// It is not safe for concurrent use; one host tick loop owns it.
type Generator struct {
	cfg         Config
	rng         *rand.Rand
	state       State
	logger      *log.Logger
	initialized bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger routes placement diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a generator drawing from rng. Call Initialize before Advance.
func New(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Initialize resets the generator and returns the starting ladder:
// cfg.InitialPlatforms platforms at y = i*MaxY.
// It panics if cfg is invalid.
func (g *Generator) Initialize(cfg Config) []SpawnCommand {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	g.cfg = cfg
	g.state = State{Placed: make([]core.Vec2, 0, cfg.InitialPlatforms*2)}
	g.initialized = true

	cmds := make([]SpawnCommand, 0, cfg.InitialPlatforms)
	for i := 0; i < cfg.InitialPlatforms; i++ {
		cmds = g.spawnAt(cmds, float64(i)*cfg.VerticalGap.Max, 0)
	}

	g.logger.Debug("level initialized", "platforms", cfg.InitialPlatforms, "highest", g.state.HighestSpawnedY)
	return cmds
}

// Advance spawns until the frontier is LookaheadMargin above viewportTopY.
// score is the current score snapshot used for difficulty.
func (g *Generator) Advance(viewportTopY float64, score int) []SpawnCommand {
	if !g.initialized {
		panic("levelgen: Advance called before Initialize")
	}

	var cmds []SpawnCommand
	for viewportTopY+g.cfg.LookaheadMargin > g.state.HighestSpawnedY {
		y := g.state.HighestSpawnedY + g.uniform(g.cfg.VerticalGap)
		cmds = g.spawnAt(cmds, y, score)
	}

	g.evictBelow(viewportTopY - g.cfg.PositionWindow)
	return cmds
}

// spawnAt places one platform at height y and possibly a hazard above it.
// Random draws happen in a fixed order: x candidates, color, moving roll,
// moving speed, then (when eligible) hazard roll, hazard x, hazard height.
func (g *Generator) spawnAt(cmds []SpawnCommand, y float64, score int) []SpawnCommand {
	x, attempts, ok := g.sampleX(y)
	if !ok {
		g.logger.Info("spacing budget exhausted, placing anyway",
			"x", x, "y", y, "attempts", attempts)
	}

	p := PlacePlatform{
		X:        x,
		Y:        y,
		Color:    g.pickColor(),
		Attempts: attempts,
		Fallback: !ok,
	}

	moving := g.rng.Float64() < g.MovingChance(score)
	speed := g.uniform(g.cfg.MovingSpeed)
	if moving {
		p.Moving = &MovingParams{Range: g.cfg.LevelWidth / 2, Speed: speed}
	}

	g.state.Placed = append(g.state.Placed, core.Vec2{X: x, Y: y})
	cmds = append(cmds, p)

	if g.HazardEligible(score) && g.rng.Float64() < g.cfg.HazardBaseChance {
		h := PlaceHazard{
			X: g.uniform(g.halfWidth()),
			Y: y + g.uniform(g.cfg.HazardOffset),
		}
		g.state.Placed = append(g.state.Placed, core.Vec2{X: h.X, Y: h.Y})
		cmds = append(cmds, h)
	}

	// Direct assignment: y is always above the previous frontier because
	// every step adds a positive gap.
	g.state.HighestSpawnedY = y
	return cmds
}

// sampleX draws x candidates until one keeps its distance from every
// recorded position. On budget exhaustion it returns the last candidate.
func (g *Generator) sampleX(y float64) (x float64, attempts int, ok bool) {
	for attempts < g.cfg.AttemptCap {
		x = g.uniform(g.halfWidth())
		attempts++
		if !g.tooClose(x, y) {
			return x, attempts, true
		}
	}
	return x, attempts, false
}

// tooClose reports whether (x, y) is near some position on both axes at once.
func (g *Generator) tooClose(x, y float64) bool {
	for _, p := range g.state.Placed {
		if math.Abs(p.X-x) < g.cfg.MinHorizontalSpacing && math.Abs(p.Y-y) < g.cfg.VerticalGap.Min {
			return true
		}
	}
	return false
}

func (g *Generator) evictBelow(y float64) {
	i := 0
	for i < len(g.state.Placed) && g.state.Placed[i].Y < y {
		i++
	}
	if i > 0 {
		g.state.Placed = append(g.state.Placed[:0], g.state.Placed[i:]...)
	}
}

func (g *Generator) pickColor() ColorTag {
	if g.rng.Intn(2) == 0 {
		return ColorPrimary
	}
	return ColorSecondary
}

func (g *Generator) uniform(r Range) float64 {
	return r.Min + g.rng.Float64()*(r.Max-r.Min)
}

func (g *Generator) halfWidth() Range {
	return Range{Min: -g.cfg.LevelWidth / 2, Max: g.cfg.LevelWidth / 2}
}

// Tier returns the difficulty tier for score.
func (g *Generator) Tier(score int) int {
	return core.FloorDiv(score, g.cfg.ScoreTier)
}

// MovingChance returns the probability that a platform spawned at score moves.
func (g *Generator) MovingChance(score int) float64 {
	p := g.cfg.MovingPlatformBaseChance + float64(g.Tier(score))*g.cfg.MovingPlatformChancePerScoreTier
	return core.ClampF(p, 0, 1)
}

// HazardEligible reports whether hazards may spawn at score.
func (g *Generator) HazardEligible(score int) bool {
	return score >= g.cfg.HazardScoreThreshold
}

// HighestSpawnedY returns the placement frontier.
func (g *Generator) HighestSpawnedY() float64 {
	return g.state.HighestSpawnedY
}

// PlacedPositions returns a copy of the retained positions.
func (g *Generator) PlacedPositions() []core.Vec2 {
	out := make([]core.Vec2, len(g.state.Placed))
	copy(out, g.state.Placed)
	return out
}

// Config returns the active configuration.
func (g *Generator) Config() Config {
	return g.cfg
}
