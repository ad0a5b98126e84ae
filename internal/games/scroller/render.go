package scroller

import (
	"fmt"

	"github.com/vovakirdan/blastpong/internal/core"
)

// Visual characters for rendering
const (
	GroundChar   = '▓'
	WallChar     = '█'
	RampChar     = '▒'
	HeadChar     = '◉'
	BodyChar     = '█'
	LegsIdleChar = '║'
	LegsWalkA    = '╱'
	LegsWalkB    = '╲'
	LegsAirChar  = 'Λ'
	AttackChar   = '━'
)

// hudRows is the number of screen rows reserved above the level view.
const hudRows = 2

// screenX maps a level X coordinate to a screen column through the
// camera window.
func (g *Game) screenX(dst *core.Screen, wx float64) int {
	return int((wx - g.camX) * float64(dst.Width()) / ViewW)
}

// screenY maps a level Y coordinate to a screen row below the HUD.
func (g *Game) screenY(dst *core.Screen, wy float64) int {
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return hudRows + int((wy-g.camY)*float64(rows)/ViewH)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderRects(dst)
	g.renderRamps(dst)
	g.renderPlayer(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the distance counter and course position.
func (g *Game) renderHUD(dst *core.Screen) {
	distText := fmt.Sprintf("DIST %d", g.currentScore())
	dst.DrawTextColored(1, 0, distText, core.ColorGreen)

	posText := fmt.Sprintf("%d/%d", int(g.x), int(g.level.Width))
	dst.DrawTextColored(dst.Width()-len(posText)-1, 0, posText, core.ColorGray)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderRects draws the solid features inside the camera window. Tall
// rectangles read as walls, flat ones as ground and platforms.
func (g *Game) renderRects(dst *core.Screen) {
	for _, r := range g.level.Rects {
		x0 := g.screenX(dst, r.X)
		x1 := g.screenX(dst, r.Right())
		y0 := g.screenY(dst, r.Y)
		y1 := g.screenY(dst, r.Bottom())
		if y1 <= y0 {
			y1 = y0 + 1 // thin platforms still get a full row
		}

		x0 = core.Max(x0, 0)
		x1 = core.Min(x1, dst.Width())
		y0 = core.Max(y0, hudRows)
		y1 = core.Min(y1, dst.Height())

		ch := GroundChar
		color := core.ColorGray
		if r.H > r.W {
			ch = WallChar
			color = core.ColorWhite
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				dst.SetCell(x, y, ch, color)
			}
		}
	}
}

// renderRamps fills each ramp column from its slope surface down to
// its base, sampling the surface at the column's center.
func (g *Game) renderRamps(dst *core.Screen) {
	for _, r := range g.level.Ramps {
		lo, hi := r.Span()
		x0 := core.Max(g.screenX(dst, lo), 0)
		x1 := core.Min(g.screenX(dst, hi), dst.Width())

		for x := x0; x < x1; x++ {
			wx := g.camX + (float64(x)+0.5)*ViewW/float64(dst.Width())
			sy, ok := r.SurfaceY(wx)
			if !ok {
				continue
			}
			y0 := g.screenY(dst, sy)
			y1 := g.screenY(dst, r.BaseY())
			if y1 <= y0 {
				y1 = y0 + 1
			}
			y0 = core.Max(y0, hudRows)
			y1 = core.Min(y1, dst.Height())
			for y := y0; y < y1; y++ {
				dst.SetCell(x, y, RampChar, core.ColorGray)
			}
		}
	}
}

// renderPlayer draws a three-cell figure anchored at the player's
// feet, with the legs animated by the walk cycle.
func (g *Game) renderPlayer(dst *core.Screen) {
	cx := g.screenX(dst, g.x+g.cfg.Player.Width/2)
	feetY := g.screenY(dst, g.y+g.cfg.Player.Height)

	legs := LegsIdleChar
	switch {
	case !g.grounded:
		legs = LegsAirChar
	case g.vx != 0 && (g.animFrame/6)%2 == 0:
		legs = LegsWalkA
	case g.vx != 0:
		legs = LegsWalkB
	}

	dst.SetCell(cx, feetY-1, legs, core.ColorCyan)
	dst.SetCell(cx, feetY-2, BodyChar, core.ColorCyan)
	dst.SetCell(cx, feetY-3, HeadChar, core.ColorBrightCyan)

	if g.clockMS() < g.attackUntilMS {
		dst.SetCell(cx+g.facing, feetY-2, AttackChar, core.ColorYellow)
	}
}

// renderOverlay draws pause and game-over message boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateStopped:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("DIST %d  |  Press R to restart", g.currentScore())
		g.drawCenteredMessage(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
