package colorjump

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/color-jump/internal/config"
)

const (
	tagPlatform = "platform"
	tagHazard   = "hazard"
	tagPlayer   = "player"
)

const (
	spaceScale = 8 // space units per world unit
	spaceCell  = 4
)

// Contact is one collision event produced during a tick.
// It is one of PlatformContact, HazardContact or BoundaryContact.
type Contact interface {
	contact()
}

// PlatformContact is a landing on top of a platform while falling.
type PlatformContact struct {
	Platform *Platform
}

// HazardContact is any overlap with a hazard.
type HazardContact struct {
	Hazard *Hazard
}

// BoundaryContact is the player dropping below the bottom of the view.
type BoundaryContact struct {
	Depth float64 // how far below the camera bottom
}

func (PlatformContact) contact() {}
func (HazardContact) contact()   {}
func (BoundaryContact) contact() {}

// box is an axis-aligned rectangle in world units, y up.
type box struct {
	MinX, MinY, MaxX, MaxY float64
}

func centeredBox(x, y, w, h float64) box {
	return box{MinX: x - w/2, MinY: y - h/2, MaxX: x + w/2, MaxY: y + h/2}
}

func (b box) overlaps(o box) bool {
	return b.MinX < o.MaxX && b.MaxX > o.MinX && b.MinY < o.MaxY && b.MaxY > o.MinY
}

// sweptFrom extends b vertically to cover prev. Horizontal extent stays b's
// so a wrap across the level does not sweep the whole row.
func (b box) sweptFrom(prev box) box {
	b.MinY = math.Min(b.MinY, prev.MinY)
	b.MaxY = math.Max(b.MaxY, prev.MaxY)
	return b
}

// ContactSpace is a resolv grid covering the band of world around the
// camera. It gives the broad phase; exact tests run on world boxes.
type ContactSpace struct {
	space  *resolv.Space
	player *resolv.Object
	halfW  float64
	top    float64 // world y of space row 0
}

// NewContactSpace sizes the grid to cover the view plus the margins above
// and below it.
func NewContactSpace(cfg config.ColorJumpWorld, lookahead float64) *ContactSpace {
	height := cfg.ViewHeight + lookahead + cfg.CullMargin + cfg.FallMargin
	w := int(math.Ceil(cfg.WrapWidth * spaceScale))
	h := int(math.Ceil(height * spaceScale))

	cs := &ContactSpace{
		space: resolv.NewSpace(w, h, spaceCell, spaceCell),
		halfW: cfg.WrapWidth / 2,
	}
	cs.player = resolv.NewObject(0, 0, 1, 1, tagPlayer)
	cs.space.Add(cs.player)
	return cs
}

// Add registers an obstacle object.
func (cs *ContactSpace) Add(obj *resolv.Object) {
	cs.space.Add(obj)
}

// Remove unregisters an obstacle object.
func (cs *ContactSpace) Remove(obj *resolv.Object) {
	cs.space.Remove(obj)
}

// Anchor moves the grid so that row 0 sits at world y top.
func (cs *ContactSpace) Anchor(top float64) {
	cs.top = top
}

// place converts b to space coordinates (y down) and re-buckets obj.
// resolv treats the far edge as exclusive by one unit, so sizes are padded
// to keep shallow overlaps in the same cells.
func (cs *ContactSpace) place(obj *resolv.Object, b box) {
	obj.X = (b.MinX + cs.halfW) * spaceScale
	obj.Y = (cs.top - b.MaxY) * spaceScale
	obj.W = (b.MaxX-b.MinX)*spaceScale + 1
	obj.H = (b.MaxY-b.MinY)*spaceScale + 1
	obj.Update()
}

// sync re-buckets every obstacle after the anchor or positions changed.
func (cs *ContactSpace) sync(w *World) {
	for _, p := range w.Platforms {
		cs.place(p.obj, w.platformBox(p))
	}
	for _, h := range w.Hazards {
		cs.place(h.obj, w.hazardBox(h))
	}
}

// candidates returns obstacles sharing a grid cell with swept.
func (cs *ContactSpace) candidates(swept box) (platforms []*Platform, hazards []*Hazard) {
	cs.place(cs.player, swept)
	check := cs.player.Check(0, 0, tagPlatform, tagHazard)
	if check == nil {
		return nil, nil
	}
	for _, obj := range check.ObjectsByTags(tagPlatform) {
		if p, ok := obj.Data.(*Platform); ok {
			platforms = append(platforms, p)
		}
	}
	for _, obj := range check.ObjectsByTags(tagHazard) {
		if h, ok := obj.Data.(*Hazard); ok {
			hazards = append(hazards, h)
		}
	}
	return platforms, hazards
}

// detectContacts lists this tick's contacts. prev is the player box before
// the move. Boundary contacts short-circuit everything else.
func (g *Game) detectContacts(prev box) []Contact {
	p := &g.player
	floor := g.camera.Bottom() - g.cfg.World.FallMargin
	if p.Pos.Y < floor {
		return []Contact{BoundaryContact{Depth: floor - p.Pos.Y}}
	}

	cur := centeredBox(p.Pos.X, p.Pos.Y, p.Size(), p.Size())
	swept := cur.sweptFrom(prev)

	g.space.Anchor(g.camera.Top() + g.cfg.Generator.LookaheadMargin)
	g.space.sync(g.world)
	platforms, hazards := g.space.candidates(swept)

	var contacts []Contact
	for _, h := range hazards {
		if g.world.hazardBox(h).overlaps(swept) {
			contacts = append(contacts, HazardContact{Hazard: h})
			break
		}
	}

	// One-way platforms: only a falling player whose feet crossed the top
	// surface this tick lands.
	if p.Vel.Y < 0 {
		var best *Platform
		var bestTop float64
		for _, pl := range platforms {
			b := g.world.platformBox(pl)
			if prev.MinY < b.MaxY || cur.MinY > b.MaxY {
				continue
			}
			if cur.MaxX <= b.MinX || cur.MinX >= b.MaxX {
				continue
			}
			if best == nil || b.MaxY > bestTop {
				best, bestTop = pl, b.MaxY
			}
		}
		if best != nil {
			contacts = append(contacts, PlatformContact{Platform: best})
		}
	}

	return contacts
}

// dispatch routes a contact to the handler for its kind.
func (g *Game) dispatch(c Contact) {
	switch c := c.(type) {
	case PlatformContact:
		g.onPlatform(c)
	case HazardContact:
		g.onHazard(c)
	case BoundaryContact:
		g.onBoundary(c)
	}
}

func (g *Game) onPlatform(c PlatformContact) {
	p := &g.player
	top := g.world.platformBox(c.Platform).MaxY
	p.Pos.Y = top + p.Size()/2
	p.Vel.Y = g.difficulty.Bounce(g.cfg.Physics, g.score)

	if p.Color == c.Platform.Color {
		p.Restore()
		return
	}

	g.world.Break(c.Platform)
	if p.Penalize() {
		g.endGame(CausePenalty)
	}
}

func (g *Game) onHazard(HazardContact) {
	g.player.Kill()
	g.endGame(CauseHazard)
}

func (g *Game) onBoundary(BoundaryContact) {
	g.player.Kill()
	g.endGame(CauseFall)
}
