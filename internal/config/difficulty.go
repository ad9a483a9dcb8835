package config

import "math"

// DifficultyManager maps score to difficulty tiers and the values derived
// from them.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Tier returns floor(score / tierSize), capped by MaxTier.
// It is always 0 when progression is disabled.
func (d *DifficultyManager) Tier(score int) int {
	if !d.cfg.Enabled || d.cfg.TierSize <= 0 || score <= 0 {
		return 0
	}
	tier := score / d.cfg.TierSize
	if d.cfg.MaxTier > 0 && tier > d.cfg.MaxTier {
		tier = d.cfg.MaxTier
	}
	return tier
}

// Bounce returns the upward velocity applied on a platform landing at score.
func (d *DifficultyManager) Bounce(p ColorJumpPhysics, score int) float64 {
	v := math.Min(p.BaseBounce+float64(d.Tier(score))*p.BounceIncrement, p.MaxBounce)
	return clampF(v, -p.MaxCollisionVelocity, p.MaxCollisionVelocity)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
