package levelgen

import "github.com/vovakirdan/color-jump/internal/core"

// ColorTag selects one of the two palette colors.
type ColorTag int

const (
	ColorPrimary ColorTag = iota
	ColorSecondary
)

// String returns the palette name of the tag.
func (c ColorTag) String() string {
	if c == ColorSecondary {
		return "secondary"
	}
	return "primary"
}

// Other returns the opposite palette color.
func (c ColorTag) Other() ColorTag {
	if c == ColorPrimary {
		return ColorSecondary
	}
	return ColorPrimary
}

// MovingParams describes horizontal oscillation around the spawn point.
type MovingParams struct {
	Range float64 // max distance from the spawn x, world units
	Speed float64 // world units per second
}

// SpawnCommand is an instruction for the host to materialize an obstacle.
// It is either a PlacePlatform or a PlaceHazard.
type SpawnCommand interface {
	Position() core.Vec2
	spawnCommand()
}

// PlacePlatform asks the host to create a platform.
type PlacePlatform struct {
	X, Y     float64
	Color    ColorTag
	Moving   *MovingParams // nil for static platforms
	Attempts int           // x candidates drawn before placement
	Fallback bool          // spacing budget ran out; position may overlap
}

// Position returns the platform center.
func (p PlacePlatform) Position() core.Vec2 { return core.Vec2{X: p.X, Y: p.Y} }

func (PlacePlatform) spawnCommand() {}

// PlaceHazard asks the host to create a hazard.
type PlaceHazard struct {
	X, Y float64
}

// Position returns the hazard center.
func (h PlaceHazard) Position() core.Vec2 { return core.Vec2{X: h.X, Y: h.Y} }

func (PlaceHazard) spawnCommand() {}
