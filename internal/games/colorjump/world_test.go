package colorjump

import (
	"math"
	"testing"

	"github.com/vovakirdan/color-jump/internal/config"
	"github.com/vovakirdan/color-jump/internal/levelgen"
)

func testWorld() *World {
	cfg := config.DefaultColorJumpConfig()
	return NewWorld(cfg.World, NewContactSpace(cfg.World, cfg.Generator.LookaheadMargin))
}

func TestWorldSpawn(t *testing.T) {
	w := testWorld()
	w.Spawn([]levelgen.SpawnCommand{
		levelgen.PlacePlatform{X: 1, Y: 2, Color: levelgen.ColorSecondary},
		levelgen.PlaceHazard{X: -1, Y: 3},
		levelgen.PlacePlatform{X: 0, Y: 4, Moving: &levelgen.MovingParams{Range: 1, Speed: 1}},
	})

	if len(w.Platforms) != 2 || len(w.Hazards) != 1 {
		t.Fatalf("got %d platforms, %d hazards", len(w.Platforms), len(w.Hazards))
	}
	if w.Platforms[0].tween != nil {
		t.Error("static platform should have no tween")
	}
	if w.Platforms[1].tween == nil {
		t.Error("moving platform should have a tween")
	}
	if w.Platforms[0].obj.Data != w.Platforms[0] {
		t.Error("contact object should point back at its platform")
	}
}

func TestMovingPlatformOscillates(t *testing.T) {
	w := testWorld()
	w.Spawn([]levelgen.SpawnCommand{
		levelgen.PlacePlatform{X: 0, Y: 0, Moving: &levelgen.MovingParams{Range: 1, Speed: 1}},
	})
	p := w.Platforms[0]

	// Period is 4s: +1 at 1s, -1 at 3s, back home at 4s.
	checkpoints := []struct {
		after float64
		want  float64
	}{
		{1, 1},
		{2, 0},
		{3, -1},
		{4, 0},
		{5, 1},
	}

	elapsed := 0.0
	for _, cp := range checkpoints {
		for elapsed < cp.after {
			w.Update(0.25)
			elapsed += 0.25
		}
		if math.Abs(p.X-cp.want) > 1e-3 {
			t.Errorf("at %vs x = %v, want %v", cp.after, p.X, cp.want)
		}
	}
}

func TestBreakingPlatformRemoved(t *testing.T) {
	w := testWorld()
	w.Spawn([]levelgen.SpawnCommand{
		levelgen.PlacePlatform{X: 0, Y: 0},
		levelgen.PlacePlatform{X: 1, Y: 2},
	})
	w.Break(w.Platforms[0])

	w.Update(0.1)
	if len(w.Platforms) != 2 {
		t.Fatalf("platform removed before break delay")
	}
	w.Update(0.15)
	if len(w.Platforms) != 1 {
		t.Fatalf("expected 1 platform after break delay, got %d", len(w.Platforms))
	}
	if w.Platforms[0].Y != 2 {
		t.Errorf("wrong platform removed")
	}
}

func TestCull(t *testing.T) {
	w := testWorld()
	w.Spawn([]levelgen.SpawnCommand{
		levelgen.PlacePlatform{X: 0, Y: -20},
		levelgen.PlaceHazard{X: 0, Y: -15},
		levelgen.PlacePlatform{X: 0, Y: 0},
		levelgen.PlaceHazard{X: 0, Y: 1},
	})

	if n := w.Cull(-10); n != 2 {
		t.Errorf("Cull removed %d, want 2", n)
	}
	if len(w.Platforms) != 1 || len(w.Hazards) != 1 {
		t.Errorf("left %d platforms, %d hazards", len(w.Platforms), len(w.Hazards))
	}
	for _, p := range w.Platforms {
		if p.Y < -10 {
			t.Errorf("platform at %v survived cull", p.Y)
		}
	}
}

func TestMovingPlatformStaysInField(t *testing.T) {
	w := testWorld()
	half := w.cfg.WrapWidth / 2
	w.Spawn([]levelgen.SpawnCommand{
		levelgen.PlacePlatform{X: 2.5, Y: 0, Moving: &levelgen.MovingParams{Range: 2.5, Speed: 2}},
		levelgen.PlacePlatform{X: -2.5, Y: 1, Moving: &levelgen.MovingParams{Range: 2.5, Speed: 3}},
	})

	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := 0; i < 400; i++ {
		w.Update(0.05)
		for _, p := range w.Platforms {
			b := w.platformBox(p)
			if b.MinX < -half-1e-6 || b.MaxX > half+1e-6 {
				t.Fatalf("step %d: platform box [%v, %v] leaves the field", i, b.MinX, b.MaxX)
			}
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
		}
	}

	// Both edges are reached, so the swing is clamped rather than frozen.
	edge := half - w.cfg.PlatformWidth/2
	if maxX < edge-0.2 || minX > -edge+0.2 {
		t.Errorf("swing [%v, %v], want [%v, %v]", minX, maxX, -edge, edge)
	}
}

func TestCameraFollowsUpOnly(t *testing.T) {
	c := Camera{Y: 0, ViewHeight: 12, Smoothing: 0.125}

	c.Follow(8)
	if c.Y != 1 {
		t.Errorf("Y = %v, want 1", c.Y)
	}

	c.Follow(-50)
	if c.Y != 1 {
		t.Errorf("camera moved down to %v", c.Y)
	}

	if c.Top() != 7 || c.Bottom() != -5 {
		t.Errorf("Top/Bottom = %v/%v, want 7/-5", c.Top(), c.Bottom())
	}
}
