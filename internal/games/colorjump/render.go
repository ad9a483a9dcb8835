package colorjump

import (
	"fmt"
	"math"

	"github.com/vovakirdan/color-jump/internal/core"
	"github.com/vovakirdan/color-jump/internal/levelgen"
)

// Visual characters for rendering
const (
	PlayerChar      = '█'
	PlayerSmallChar = '▪'
	PlatformChar    = '▀'
	BreakingChar    = '░'
	HazardChar      = '✹'
	WallChar        = '│'
)

// cellAspect is how many columns match one row in world distance.
const cellAspect = 2.5

// viewport maps world coordinates to screen cells.
type viewport struct {
	left, top     int // screen cell of the field's top-left corner
	width, height int
	wrapWidth     float64
	camTop        float64
	viewHeight    float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	height := dst.Height() - 1 // HUD row
	width := int(float64(height) * g.cfg.World.WrapWidth / g.cfg.World.ViewHeight * cellAspect)
	width = core.Clamp(width, 1, core.Max(dst.Width()-2, 1))

	return viewport{
		left:       (dst.Width() - width) / 2,
		top:        1,
		width:      width,
		height:     height,
		wrapWidth:  g.cfg.World.WrapWidth,
		camTop:     g.camera.Top(),
		viewHeight: g.camera.ViewHeight,
	}
}

func (v viewport) col(x float64) int {
	return v.left + int(math.Floor((x+v.wrapWidth/2)/v.wrapWidth*float64(v.width)))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor((v.camTop-y)/v.viewHeight*float64(v.height)))
}

func (v viewport) span(w float64) int {
	return core.Max(1, int(math.Round(w/v.wrapWidth*float64(v.width))))
}

func (v viewport) inField(col, row int) bool {
	return col >= v.left && col < v.left+v.width && row >= v.top && row < v.top+v.height
}

func (v viewport) set(dst *core.Screen, col, row int, r rune, c core.Color) {
	if v.inField(col, row) {
		dst.SetWithColor(col, row, r, c)
	}
}

// paletteColor maps a palette tag to a screen color.
func paletteColor(c levelgen.ColorTag) core.Color {
	if c == levelgen.ColorSecondary {
		return core.ColorCream
	}
	return core.ColorCoral
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.viewport(dst)

	// Field walls
	dst.DrawVLine(v.left-1, v.top, v.height, WallChar, core.ColorGray)
	dst.DrawVLine(v.left+v.width, v.top, v.height, WallChar, core.ColorGray)

	for _, p := range g.world.Platforms {
		g.drawPlatform(dst, v, p)
	}
	for _, h := range g.world.Hazards {
		v.set(dst, v.col(h.X), v.row(h.Y), HazardChar, core.ColorMagenta)
	}
	g.drawPlayer(dst, v)

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("%s  |  Score: %d  |  R to restart", g.cause, g.score))
	}
}

func (g *Game) drawPlatform(dst *core.Screen, v viewport, p *Platform) {
	ch := PlatformChar
	if p.Breaking {
		ch = BreakingChar
	}
	n := v.span(g.cfg.World.PlatformWidth)
	start := v.col(p.X - g.cfg.World.PlatformWidth/2)
	row := v.row(p.Y)
	for i := 0; i < n; i++ {
		v.set(dst, start+i, row, ch, paletteColor(p.Color))
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := &g.player
	ch := PlayerChar
	if p.Scale < 1 {
		ch = PlayerSmallChar
	}
	n := v.span(p.Size())
	start := v.col(p.Pos.X - p.Size()/2)
	row := v.row(p.Pos.Y)
	for i := 0; i < n; i++ {
		v.set(dst, start+i, row, ch, paletteColor(p.Color))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	if g.highScore > 0 {
		dst.DrawTextWithColor(14, 0, fmt.Sprintf("Best: %d", core.Max(g.highScore, g.score)), core.ColorYellow)
	}

	color := fmt.Sprintf("■ %s", g.player.Color)
	dst.DrawTextWithColor(dst.Width()-len([]rune(color))-1, 0, color, paletteColor(g.player.Color))

	switch g.player.State {
	case PenaltyShrunk:
		label := "SHRUNK"
		if g.player.Scale >= 1 {
			label = "GRACE"
		}
		if g.player.Grace > 0 {
			label = fmt.Sprintf("%s %.1fs", label, g.player.Grace)
		}
		dst.DrawTextWithColor(28, 0, label, core.ColorRed)
	case PenaltyLastChance:
		dst.DrawTextWithColor(28, 0, "LAST CHANCE", core.ColorRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
