package colorjump

import (
	"testing"

	"github.com/vovakirdan/color-jump/internal/core"
	"github.com/vovakirdan/color-jump/internal/levelgen"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(testRuntime(seed))
	return g
}

// clearObstacles empties the world so a test can place its own obstacles.
func clearObstacles(g *Game) {
	for _, p := range g.world.Platforms {
		g.space.Remove(p.obj)
	}
	for _, h := range g.world.Hazards {
		g.space.Remove(h.obj)
	}
	g.world.Platforms = g.world.Platforms[:0]
	g.world.Hazards = g.world.Hazards[:0]
}

// stepUntil steps with no input until done returns true or max ticks pass.
func stepUntil(g *Game, max int, done func() bool) bool {
	for i := 0; i < max; i++ {
		g.Step(core.NewInputFrame())
		if done() {
			return true
		}
	}
	return false
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must give identical runs
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 == 0:
			inputs[i].Set(core.ActionSwitch)
		case i%7 == 0:
			inputs[i].Set(core.ActionLeft)
		case i%11 == 0:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() *Game {
		g := newTestGame(t, 12345)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g
	}
	g1, g2 := run(), run()

	if g1.score != g2.score {
		t.Errorf("scores differ: %d vs %d", g1.score, g2.score)
	}
	if g1.tickCount != g2.tickCount {
		t.Errorf("tick counts differ: %d vs %d", g1.tickCount, g2.tickCount)
	}
	if g1.player.Pos != g2.player.Pos {
		t.Errorf("player positions differ: %+v vs %+v", g1.player.Pos, g2.player.Pos)
	}
	if len(g1.world.Platforms) != len(g2.world.Platforms) {
		t.Errorf("platform counts differ: %d vs %d", len(g1.world.Platforms), len(g2.world.Platforms))
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 42)

	if got := len(g.world.Platforms); got != 10 {
		t.Errorf("initial platforms = %d, want 10", got)
	}
	first := g.world.Platforms[0]
	if g.player.Pos.X != first.X || g.player.Color != first.Color {
		t.Error("player should start above the first rung with its color")
	}

	stepUntil(g, 300, func() bool { return g.gameOver })
	g.Reset(testRuntime(42))

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("unexpected state after reset: %+v", state)
	}
	if g.player.State != PenaltyNormal {
		t.Errorf("player state after reset = %v", g.player.State)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	pos := g.player.Pos
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.player.Pos != pos {
		t.Error("player moved while paused")
	}

	g.Step(in)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestMatchingLandingBounces(t *testing.T) {
	g := newTestGame(t, 7)
	clearObstacles(g)
	p := &g.player
	g.world.Spawn([]levelgen.SpawnCommand{
		levelgen.PlacePlatform{X: p.Pos.X, Y: 0, Color: p.Color},
	})
	p.Penalize()

	if !stepUntil(g, 120, func() bool { return p.Vel.Y > 0 }) {
		t.Fatal("player never landed")
	}
	if p.Vel.Y != g.cfg.Physics.BaseBounce {
		t.Errorf("bounce velocity = %v, want %v", p.Vel.Y, g.cfg.Physics.BaseBounce)
	}
	if p.Scale != 1 {
		t.Errorf("matching landing should regrow the player, scale=%v", p.Scale)
	}
	if p.State != PenaltyShrunk || p.Grace <= 0 {
		t.Errorf("grace window should keep running, state=%v grace=%v", p.State, p.Grace)
	}
	if g.world.Platforms[0].Breaking {
		t.Error("matching platform should not break")
	}
}

func TestWrongColorLandingPenalizes(t *testing.T) {
	g := newTestGame(t, 7)
	clearObstacles(g)
	p := &g.player
	g.world.Spawn([]levelgen.SpawnCommand{
		levelgen.PlacePlatform{X: p.Pos.X, Y: 0, Color: p.Color.Other()},
	})

	if !stepUntil(g, 120, func() bool { return p.Vel.Y > 0 }) {
		t.Fatal("player never landed")
	}
	if p.State != PenaltyShrunk {
		t.Errorf("state = %v, want shrunk", p.State)
	}
	if g.gameOver {
		t.Fatal("first penalty should not end the game")
	}
	if !g.world.Platforms[0].Breaking {
		t.Error("wrong-color platform should break")
	}

	stepUntil(g, 30, func() bool { return len(g.world.Platforms) == 0 })
	if len(g.world.Platforms) != 0 {
		t.Error("broken platform should be removed")
	}
}

func TestSecondPenaltyDuringGraceKills(t *testing.T) {
	g := newTestGame(t, 7)
	clearObstacles(g)
	p := &g.player
	p.Penalize()
	g.world.Spawn([]levelgen.SpawnCommand{
		levelgen.PlacePlatform{X: p.Pos.X, Y: 0, Color: p.Color.Other()},
	})

	if !stepUntil(g, 120, func() bool { return g.gameOver }) {
		t.Fatal("expected game over")
	}
	if g.cause != CausePenalty {
		t.Errorf("cause = %v, want penalty", g.cause)
	}
}

func TestHazardKills(t *testing.T) {
	g := newTestGame(t, 3)
	clearObstacles(g)
	p := &g.player
	g.world.Spawn([]levelgen.SpawnCommand{
		levelgen.PlaceHazard{X: p.Pos.X, Y: p.Pos.Y - 0.3},
	})

	if !stepUntil(g, 30, func() bool { return g.gameOver }) {
		t.Fatal("expected hazard death")
	}
	if g.cause != CauseHazard || g.player.State != PenaltyDead {
		t.Errorf("cause = %v, state = %v", g.cause, g.player.State)
	}
}

func TestFallKills(t *testing.T) {
	g := newTestGame(t, 3)
	clearObstacles(g)

	if !stepUntil(g, 600, func() bool { return g.gameOver }) {
		t.Fatal("expected fall death")
	}
	if g.cause != CauseFall {
		t.Errorf("cause = %v, want fall", g.cause)
	}
	if g.player.Pos.Y >= g.camera.Bottom()-g.cfg.World.FallMargin {
		t.Error("player died above the fall line")
	}
}

func TestStepAfterGameOverIsNoop(t *testing.T) {
	g := newTestGame(t, 3)
	clearObstacles(g)
	stepUntil(g, 600, func() bool { return g.gameOver })

	pos, ticks := g.player.Pos, g.tickCount
	g.Step(core.NewInputFrame())
	if g.player.Pos != pos || g.tickCount != ticks {
		t.Error("game advanced after game over")
	}
}

func TestCameraAndScoreMonotonic(t *testing.T) {
	g := newTestGame(t, 99)

	prevCam, prevScore := g.camera.Y, g.score
	for i := 0; i < 1200 && !g.gameOver; i++ {
		in := core.NewInputFrame()
		// Steer toward the next platform above.
		for _, pl := range g.world.Platforms {
			if pl.Y > g.player.Pos.Y {
				if pl.X < g.player.Pos.X-0.2 {
					in.Set(core.ActionLeft)
				} else if pl.X > g.player.Pos.X+0.2 {
					in.Set(core.ActionRight)
				}
				if pl.Color != g.player.Color && g.player.Vel.Y < 0 {
					in.Set(core.ActionSwitch)
				}
				break
			}
		}
		g.Step(in)

		if g.camera.Y < prevCam {
			t.Fatalf("tick %d: camera moved down", i)
		}
		if g.score < prevScore {
			t.Fatalf("tick %d: score went down", i)
		}
		prevCam, prevScore = g.camera.Y, g.score
	}
}

func TestCullKeepsWorldBounded(t *testing.T) {
	g := newTestGame(t, 5)
	g.cfg.Generator.HazardBaseChance = 0
	g.cfg.Generator.MovingPlatformBaseChance = 0
	g.cfg.Generator.MovingPlatformChancePerScoreTier = 0
	g.gen.Initialize(g.cfg.Generator)
	clearObstacles(g)

	// Force the camera up and let the generator fill in. The player hugs
	// the wall, clear of every static platform.
	for i := 0; i < 50; i++ {
		g.camera.Y += 5
		g.player.Pos = core.Vec2{X: g.cfg.World.WrapWidth/2 - 0.1, Y: g.camera.Y}
		g.player.Vel.Y = 0
		g.Step(core.NewInputFrame())
	}
	if g.gameOver {
		t.Fatalf("unexpected game over: %v", g.cause)
	}

	minY := g.camera.Bottom() - g.cfg.World.CullMargin
	for _, p := range g.world.Platforms {
		if p.Y < minY {
			t.Errorf("platform at %v below cull line %v", p.Y, minY)
		}
	}
	for _, pl := range g.world.Platforms {
		if pl.Y > g.gen.HighestSpawnedY() {
			t.Errorf("platform at %v above generator frontier", pl.Y)
		}
	}
	if len(g.world.Platforms) == 0 {
		t.Error("generator should have filled the view")
	}
}

func TestRenderDrawsScene(t *testing.T) {
	g := newTestGame(t, 11)
	g.SetHighScore(120)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.Row(0) == "" {
		t.Fatal("empty HUD row")
	}

	var platforms, player int
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			switch screen.Get(x, y) {
			case PlatformChar:
				platforms++
			case PlayerChar:
				player++
			}
		}
	}
	if platforms == 0 {
		t.Error("no platforms rendered")
	}
	if player == 0 {
		t.Error("player not rendered")
	}
}

func TestModes(t *testing.T) {
	if New().ID() != ModeStandard || NewClassic().ID() != ModeClassic {
		t.Error("unexpected mode IDs")
	}

	t.Setenv("HOME", t.TempDir())
	g := NewClassic()
	g.Reset(testRuntime(1))
	if g.cfg.Generator.MinHorizontalSpacing != 0 {
		t.Error("classic mode should load the classic generator config")
	}
}
