package colorjump

import "github.com/vovakirdan/color-jump/internal/core"

// Camera tracks the vertical window shown to the player. Y is the center.
type Camera struct {
	Y          float64
	ViewHeight float64
	Smoothing  float64
}

// Follow eases toward targetY, but only upward.
func (c *Camera) Follow(targetY float64) {
	if targetY > c.Y {
		c.Y = core.Lerp(c.Y, targetY, c.Smoothing)
	}
}

// Top returns the highest visible world y.
func (c *Camera) Top() float64 {
	return c.Y + c.ViewHeight/2
}

// Bottom returns the lowest visible world y.
func (c *Camera) Bottom() float64 {
	return c.Y - c.ViewHeight/2
}
