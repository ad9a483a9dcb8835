package colorjump

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/color-jump/internal/config"
	"github.com/vovakirdan/color-jump/internal/core"
	"github.com/vovakirdan/color-jump/internal/levelgen"
)

// Platform is a materialized PlacePlatform command.
type Platform struct {
	X, Y     float64 // center, X after motion
	Color    levelgen.ColorTag
	Moving   *levelgen.MovingParams
	Breaking bool
	BreakIn  float64 // seconds until a breaking platform disappears

	originX float64
	tween   *gween.Sequence
	obj     *resolv.Object
}

// Hazard is a materialized PlaceHazard command.
type Hazard struct {
	X, Y float64
	obj  *resolv.Object
}

// World owns every live obstacle and keeps the contact space in sync.
type World struct {
	cfg       config.ColorJumpWorld
	space     *ContactSpace
	Platforms []*Platform
	Hazards   []*Hazard
}

// NewWorld creates an empty world backed by space.
func NewWorld(cfg config.ColorJumpWorld, space *ContactSpace) *World {
	return &World{
		cfg:       cfg,
		space:     space,
		Platforms: make([]*Platform, 0, 32),
		Hazards:   make([]*Hazard, 0, 8),
	}
}

// Spawn materializes generator commands in order.
func (w *World) Spawn(cmds []levelgen.SpawnCommand) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case levelgen.PlacePlatform:
			w.addPlatform(c)
		case levelgen.PlaceHazard:
			w.addHazard(c)
		}
	}
}

func (w *World) addPlatform(c levelgen.PlacePlatform) {
	p := &Platform{
		X:       c.X,
		Y:       c.Y,
		Color:   c.Color,
		Moving:  c.Moving,
		originX: c.X,
	}
	if c.Moving != nil {
		lo, hi := w.swingBounds()
		p.tween = newOscillation(c.X, *c.Moving, lo, hi)
	}
	p.obj = resolv.NewObject(0, 0, 1, 1, tagPlatform)
	p.obj.Data = p
	w.space.Add(p.obj)
	w.Platforms = append(w.Platforms, p)
}

func (w *World) addHazard(c levelgen.PlaceHazard) {
	h := &Hazard{X: c.X, Y: c.Y}
	h.obj = resolv.NewObject(0, 0, 1, 1, tagHazard)
	h.obj.Data = h
	w.space.Add(h.obj)
	w.Hazards = append(w.Hazards, h)
}

// newOscillation moves from start to start+range, over to start-range and
// back to start, forever. The swing is clamped to [lo, hi] so the platform
// never crosses the wrap edge.
func newOscillation(start float64, m levelgen.MovingParams, lo, hi float64) *gween.Sequence {
	x := float32(core.ClampF(start, lo, hi))
	right := float32(core.ClampF(start+m.Range, lo, hi))
	left := float32(core.ClampF(start-m.Range, lo, hi))
	if right <= left || m.Speed <= 0 {
		return nil
	}
	v := float32(m.Speed)

	var legs []*gween.Tween
	if right > x {
		legs = append(legs, gween.New(x, right, (right-x)/v, ease.Linear))
	}
	legs = append(legs, gween.New(right, left, (right-left)/v, ease.Linear))
	if x > left {
		legs = append(legs, gween.New(left, x, (x-left)/v, ease.Linear))
	}
	seq := gween.NewSequence(legs...)
	seq.SetLoop(-1)
	return seq
}

// swingBounds is the range of centers that keeps a platform inside the field.
func (w *World) swingBounds() (lo, hi float64) {
	half := (w.cfg.WrapWidth - w.cfg.PlatformWidth) / 2
	if half < 0 {
		half = 0
	}
	return -half, half
}

// Update advances moving platforms and break timers by dt seconds.
func (w *World) Update(dt float64) {
	kept := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.tween != nil {
			x, _, _ := p.tween.Update(float32(dt))
			p.X = float64(x)
		}
		if p.Breaking {
			p.BreakIn -= dt
			if p.BreakIn <= 0 {
				w.space.Remove(p.obj)
				continue
			}
		}
		kept = append(kept, p)
	}
	clearTail(w.Platforms, len(kept))
	w.Platforms = kept
}

// Break schedules p for removal after the configured delay.
func (w *World) Break(p *Platform) {
	if p.Breaking {
		return
	}
	p.Breaking = true
	p.BreakIn = w.cfg.BreakDelay
}

// Cull removes obstacles whose center is below minY and returns how many
// were removed.
func (w *World) Cull(minY float64) int {
	removed := 0

	platforms := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.Y < minY {
			w.space.Remove(p.obj)
			removed++
			continue
		}
		platforms = append(platforms, p)
	}
	clearTail(w.Platforms, len(platforms))
	w.Platforms = platforms

	hazards := w.Hazards[:0]
	for _, h := range w.Hazards {
		if h.Y < minY {
			w.space.Remove(h.obj)
			removed++
			continue
		}
		hazards = append(hazards, h)
	}
	clearTail(w.Hazards, len(hazards))
	w.Hazards = hazards

	return removed
}

// platformBox returns the world-space box of p.
func (w *World) platformBox(p *Platform) box {
	return centeredBox(p.X, p.Y, w.cfg.PlatformWidth, w.cfg.PlatformHeight)
}

// hazardBox returns the world-space box of h.
func (w *World) hazardBox(h *Hazard) box {
	return centeredBox(h.X, h.Y, w.cfg.HazardSize, w.cfg.HazardSize)
}

// clearTail drops references past n so removed obstacles can be collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
