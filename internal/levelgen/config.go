package levelgen

import (
	"errors"
	"fmt"
)

// Range is a closed interval of world units.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Config controls platform spacing and difficulty scaling.
type Config struct {
	VerticalGap                      Range   `yaml:"vertical_gap"`   // MinY/MaxY between consecutive platforms
	LevelWidth                       float64 `yaml:"level_width"`    // platforms spawn in [-W/2, W/2]
	MinHorizontalSpacing             float64 `yaml:"min_horizontal_spacing"`
	HazardBaseChance                 float64 `yaml:"hazard_base_chance"`
	HazardScoreThreshold             int     `yaml:"hazard_score_threshold"`
	MovingPlatformBaseChance         float64 `yaml:"moving_base_chance"`
	MovingPlatformChancePerScoreTier float64 `yaml:"moving_chance_per_tier"`

	ScoreTier        int     `yaml:"score_tier"`        // points per difficulty tier
	LookaheadMargin  float64 `yaml:"lookahead_margin"`  // spawn this far above the viewport top
	AttemptCap       int     `yaml:"attempt_cap"`       // rejection sampling budget per platform
	InitialPlatforms int     `yaml:"initial_platforms"` // ladder size at Initialize
	PositionWindow   float64 `yaml:"position_window"`   // keep positions this far below the viewport top
	HazardOffset     Range   `yaml:"hazard_offset"`     // hazard height above its platform
	MovingSpeed      Range   `yaml:"moving_speed"`
}

// DefaultConfig returns the tuning used by the standard game mode.
func DefaultConfig() Config {
	return Config{
		VerticalGap:                      Range{Min: 1.0, Max: 2.5},
		LevelWidth:                       5.0,
		MinHorizontalSpacing:             1.5,
		HazardBaseChance:                 0.3,
		HazardScoreThreshold:             50,
		MovingPlatformBaseChance:         0.2,
		MovingPlatformChancePerScoreTier: 0.05,
		ScoreTier:                        50,
		LookaheadMargin:                  10.0,
		AttemptCap:                       10,
		InitialPlatforms:                 10,
		PositionWindow:                   20.0,
		HazardOffset:                     Range{Min: 1.0, Max: 2.0},
		MovingSpeed:                      Range{Min: 0.5, Max: 1.5},
	}
}

// ClassicConfig returns the tuning of the early generator: no spacing
// constraint, no moving platforms and hazards from the first jump.
func ClassicConfig() Config {
	cfg := DefaultConfig()
	cfg.VerticalGap = Range{Min: 0.5, Max: 2.0}
	cfg.MinHorizontalSpacing = 0
	cfg.HazardScoreThreshold = 0
	cfg.MovingPlatformBaseChance = 0
	cfg.MovingPlatformChancePerScoreTier = 0
	return cfg
}

// Validate reports configuration mistakes.
func (c Config) Validate() error {
	var errs []error
	if c.VerticalGap.Min <= 0 || c.VerticalGap.Max <= 0 {
		errs = append(errs, fmt.Errorf("vertical gap must be positive, got [%g, %g]", c.VerticalGap.Min, c.VerticalGap.Max))
	}
	if c.VerticalGap.Min > c.VerticalGap.Max {
		errs = append(errs, fmt.Errorf("vertical gap min %g exceeds max %g", c.VerticalGap.Min, c.VerticalGap.Max))
	}
	if c.LevelWidth <= 0 {
		errs = append(errs, fmt.Errorf("level width must be positive, got %g", c.LevelWidth))
	}
	if c.MinHorizontalSpacing < 0 {
		errs = append(errs, fmt.Errorf("min horizontal spacing must not be negative, got %g", c.MinHorizontalSpacing))
	}
	if c.HazardBaseChance < 0 || c.MovingPlatformBaseChance < 0 || c.MovingPlatformChancePerScoreTier < 0 {
		errs = append(errs, errors.New("chances must not be negative"))
	}
	if c.HazardScoreThreshold < 0 {
		errs = append(errs, fmt.Errorf("hazard score threshold must not be negative, got %d", c.HazardScoreThreshold))
	}
	if c.ScoreTier <= 0 {
		errs = append(errs, fmt.Errorf("score tier must be positive, got %d", c.ScoreTier))
	}
	if c.LookaheadMargin < 0 || c.PositionWindow < 0 {
		errs = append(errs, errors.New("lookahead margin and position window must not be negative"))
	}
	if c.AttemptCap < 1 {
		errs = append(errs, fmt.Errorf("attempt cap must be at least 1, got %d", c.AttemptCap))
	}
	if c.InitialPlatforms < 0 {
		errs = append(errs, fmt.Errorf("initial platforms must not be negative, got %d", c.InitialPlatforms))
	}
	if c.HazardOffset.Min > c.HazardOffset.Max || c.MovingSpeed.Min > c.MovingSpeed.Max {
		errs = append(errs, errors.New("hazard offset and moving speed ranges must be ordered"))
	}
	if c.MovingSpeed.Min <= 0 {
		errs = append(errs, fmt.Errorf("moving speed must be positive, got %g", c.MovingSpeed.Min))
	}
	if len(errs) > 0 {
		return fmt.Errorf("levelgen: invalid config: %w", errors.Join(errs...))
	}
	return nil
}
