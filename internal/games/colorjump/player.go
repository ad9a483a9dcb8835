package colorjump

import (
	"github.com/vovakirdan/color-jump/internal/config"
	"github.com/vovakirdan/color-jump/internal/core"
	"github.com/vovakirdan/color-jump/internal/levelgen"
)

// PenaltyState tracks how many wrong-color landings the player can still take.
type PenaltyState int

const (
	PenaltyNormal     PenaltyState = iota // full size
	PenaltyShrunk                         // penalized; a penalty during grace kills, after grace it demotes
	PenaltyLastChance                     // next penalty kills
	PenaltyDead
)

// String returns a short HUD label.
func (s PenaltyState) String() string {
	switch s {
	case PenaltyNormal:
		return "ok"
	case PenaltyShrunk:
		return "shrunk"
	case PenaltyLastChance:
		return "last chance"
	case PenaltyDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player is the bouncing square. Pos is the center of its box.
type Player struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Color levelgen.ColorTag
	State PenaltyState
	Grace float64 // seconds left in the grace window
	Scale float64

	cfg       config.ColorJumpPlayer
	steerDir  float64
	steerLeft float64
}

// NewPlayer creates a player standing at pos.
func NewPlayer(cfg config.ColorJumpPlayer, pos core.Vec2, color levelgen.ColorTag) Player {
	return Player{
		Pos:   pos,
		Color: color,
		State: PenaltyNormal,
		Scale: 1,
		cfg:   cfg,
	}
}

// Size returns the current edge length of the player box.
func (p *Player) Size() float64 {
	return p.cfg.Size * p.Scale
}

// Bottom returns the y of the player's feet.
func (p *Player) Bottom() float64 {
	return p.Pos.Y - p.Size()/2
}

// Steer starts or refreshes horizontal movement in dir (-1 or 1).
func (p *Player) Steer(dir float64) {
	p.steerDir = dir
	p.steerLeft = p.cfg.SteerHold
}

// SwitchColor toggles between the two palette colors.
func (p *Player) SwitchColor() {
	p.Color = p.Color.Other()
}

// Tick advances steering and the grace window by dt seconds.
func (p *Player) Tick(dt float64) {
	if p.steerLeft > 0 {
		p.Vel.X = p.steerDir * p.cfg.MoveSpeed
		p.steerLeft -= dt
	} else {
		p.Vel.X = 0
	}

	if p.State == PenaltyShrunk && p.Grace > 0 {
		p.Grace -= dt
		if p.Grace <= 0 {
			p.Grace = 0
			// Regrown during grace: the penalty lapses with the window.
			if p.Scale >= 1 {
				p.State = PenaltyNormal
			}
		}
	}
}

// Penalize applies a wrong-color landing and reports whether it killed.
func (p *Player) Penalize() bool {
	switch p.State {
	case PenaltyNormal:
		p.State = PenaltyShrunk
		p.Grace = p.cfg.PenaltyDuration
		p.Scale = p.cfg.ShrinkScale
	case PenaltyShrunk:
		if p.Grace > 0 {
			p.State = PenaltyDead
		} else {
			p.State = PenaltyLastChance
		}
	case PenaltyLastChance:
		p.State = PenaltyDead
	}
	return p.State == PenaltyDead
}

// Restore regrows the player after a matching landing. It does not lift a
// penalty: a running grace window keeps counting and LastChance stays.
func (p *Player) Restore() {
	if p.State == PenaltyDead {
		return
	}
	p.Scale = 1
	if p.State == PenaltyShrunk && p.Grace <= 0 {
		p.State = PenaltyNormal
	}
}

// Kill marks the player dead.
func (p *Player) Kill() {
	p.State = PenaltyDead
}
