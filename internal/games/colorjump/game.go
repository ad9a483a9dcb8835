// Package colorjump implements a color-matching vertical jumper.
// The player bounces off platforms and must match their color; the level is
// laid out ahead of the camera by levelgen.
package colorjump

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-jump/internal/config"
	"github.com/vovakirdan/color-jump/internal/core"
	"github.com/vovakirdan/color-jump/internal/levelgen"
	"github.com/vovakirdan/color-jump/internal/registry"
)

// Game IDs of the registered modes.
const (
	ModeStandard = "colorjump"
	ModeClassic  = "colorjump_classic"
)

// DeathCause records why a run ended.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseHazard
	CauseFall
	CausePenalty
)

// String returns a message for the game over box.
func (c DeathCause) String() string {
	switch c {
	case CauseHazard:
		return "hit a spike"
	case CauseFall:
		return "fell"
	case CausePenalty:
		return "wrong color"
	default:
		return ""
	}
}

// Game implements the Color Jump logic.
type Game struct {
	id         string
	runtime    core.RuntimeConfig
	cfg        config.ColorJumpConfig
	difficulty *config.DifficultyManager
	gen        *levelgen.Generator
	space      *ContactSpace
	world      *World
	player     Player
	camera     Camera
	startY     float64
	score      int
	highScore  int
	preset     config.DifficultyPreset
	gameOver   bool
	paused     bool
	cause      DeathCause
	tickCount  int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's settings.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes game and generator diagnostics to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a standard Color Jump game.
func New() *Game {
	return &Game{id: ModeStandard}
}

// NewClassic creates a game using the classic generator settings.
func NewClassic() *Game {
	return &Game{id: ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.id == ModeClassic {
		return "Color Jump Classic"
	}
	return "Color Jump"
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// SetDifficulty overrides the package-wide preset for this instance.
// Unknown names clear the override.
func (g *Game) SetDifficulty(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		g.preset = ""
		return
	}
	g.preset = p
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.Load(g.id, configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "game", g.id, "err", err)
		cfg = config.DefaultFor(g.id)
	}

	// Apply difficulty preset if set
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.gen = levelgen.New(rng, levelgen.WithLogger(logger.WithPrefix("levelgen")))
	g.space = NewContactSpace(cfg.World, cfg.Generator.LookaheadMargin)
	g.world = NewWorld(cfg.World, g.space)

	ladder := g.gen.Initialize(cfg.Generator)
	g.world.Spawn(ladder)

	// Start above the first rung, matching its color.
	start := core.Vec2{Y: cfg.Player.StartY}
	color := levelgen.ColorPrimary
	if len(ladder) > 0 {
		if first, ok := ladder[0].(levelgen.PlacePlatform); ok {
			start.X = first.X
			color = first.Color
		}
	}
	g.player = NewPlayer(cfg.Player, start, color)
	g.startY = start.Y

	g.camera = Camera{
		ViewHeight: cfg.World.ViewHeight,
		Smoothing:  cfg.World.CameraSmoothing,
	}
	g.camera.Y = g.camera.ViewHeight/2 - 1

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.cause = CauseNone
	g.tickCount = 0

	logger.Debug("game reset", "game", g.id, "seed", runtime.Seed, "preset", preset)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.DeltaTime()

	// Input
	if in.Has(core.ActionSwitch) {
		g.player.SwitchColor()
	}
	if in.Has(core.ActionLeft) {
		g.player.Steer(-1)
	}
	if in.Has(core.ActionRight) {
		g.player.Steer(1)
	}

	// Integrate
	p := &g.player
	prev := centeredBox(p.Pos.X, p.Pos.Y, p.Size(), p.Size())
	p.Tick(dt)
	p.Vel.Y -= g.cfg.Physics.Gravity * dt
	p.Pos.X = core.WrapF(p.Pos.X+p.Vel.X*dt, g.cfg.World.WrapWidth/2)
	p.Pos.Y += p.Vel.Y * dt

	g.world.Update(dt)

	// Contacts
	for _, c := range g.detectContacts(prev) {
		g.dispatch(c)
		if g.gameOver {
			return core.StepResult{State: g.State()}
		}
	}

	g.camera.Follow(p.Pos.Y)

	if climbed := int(math.Floor(p.Pos.Y - g.startY)); climbed > g.score {
		g.score = climbed
	}

	g.world.Spawn(g.gen.Advance(g.camera.Top(), g.score))
	g.world.Cull(g.camera.Bottom() - g.cfg.World.CullMargin)

	return core.StepResult{State: g.State()}
}

func (g *Game) endGame(cause DeathCause) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.cause = cause
	logger.Info("game over", "game", g.id, "score", g.score, "cause", cause.String(), "ticks", g.tickCount)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game modes with the registry
func init() {
	registry.Register(ModeStandard, func() registry.Game {
		return New()
	})
	registry.Register(ModeClassic, func() registry.Game {
		return NewClassic()
	})
}
