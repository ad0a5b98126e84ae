package duel

import (
	"fmt"

	"github.com/vovakirdan/blastpong/internal/core"
	"github.com/vovakirdan/blastpong/internal/match"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	BulletChar = '▪'
	NetChar    = '│'
)

// Right paddle fill glyphs, ordered by remaining solidity of the cell.
var paddleRamp = []rune{'░', '▒', '▓', '█'}

// hudRows is the number of screen rows reserved above the arena.
const hudRows = 2

// scaleX maps an arena X coordinate to a screen column.
func (g *Game) scaleX(dst *core.Screen, x float64) int {
	return int(x * float64(dst.Width()) / g.cfg.Arena.Width)
}

// scaleY maps an arena Y coordinate to a screen row below the HUD.
func (g *Game) scaleY(dst *core.Screen, y float64) int {
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return hudRows + int(y*float64(rows)/g.cfg.Arena.Height)
}

// blinkVisible reports whether the blinking paddle is shown this frame.
func (g *Game) blinkVisible() bool {
	if g.blinkSide == match.NoPlayer || g.cfg.Timing.BlinkCycleMS <= 0 {
		return true
	}
	return (g.blinkMS/g.cfg.Timing.BlinkCycleMS)%2 == 0
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
	g.renderNet(dst)
	g.renderLeftPaddle(dst)
	g.renderRightPaddle(dst)
	g.renderItem(dst)
	g.renderBullets(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws side healths, ammo, and the transient message row.
func (g *Game) renderHUD(dst *core.Screen) {
	hpText := fmt.Sprintf("HP %d", g.leftHealth)
	dst.DrawTextColored(1, 0, hpText, core.ColorGreen)

	if g.cfg.Features.Projectiles {
		ammoText := fmt.Sprintf("AMMO %d/%d", g.ammo, g.cfg.Bullets.MaxAmmo)
		dst.DrawText(len(hpText)+3, 0, ammoText)
	}

	cpuText := fmt.Sprintf("CPU %d", g.rightHealth)
	dst.DrawTextColored(dst.Width()-len(cpuText)-1, 0, cpuText, core.ColorRed)

	if g.message != "" && g.clockMS() < g.messageUntilMS {
		dst.DrawTextCenteredColored(1, g.message, core.ColorYellow)
		return
	}
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderNet draws the dashed center line.
func (g *Game) renderNet(dst *core.Screen) {
	centerX := dst.Width() / 2
	for y := hudRows; y < dst.Height(); y += 2 {
		dst.SetCell(centerX, y, NetChar, core.ColorGray)
	}
}

// renderLeftPaddle draws the player paddle as a solid column.
func (g *Game) renderLeftPaddle(dst *core.Screen) {
	if g.blinkSide == sideLeft && !g.blinkVisible() {
		return
	}
	x := g.scaleX(dst, g.cfg.Paddles.EdgeMargin)
	yTop := g.scaleY(dst, g.leftY)
	yBot := g.scaleY(dst, g.leftY+g.cfg.Paddles.Height)
	if yBot <= yTop {
		yBot = yTop + 1
	}
	for y := yTop; y < yBot; y++ {
		dst.SetCell(x, y, PaddleChar, core.ColorCyan)
	}
}

// renderRightPaddle draws the CPU paddle from its destructible grid.
// Each screen cell covers a band of grid rows; the glyph ramp shows how
// much of the band is still solid, so erosion is visible hit by hit.
func (g *Game) renderRightPaddle(dst *core.Screen) {
	if g.blinkSide == sideRight && !g.blinkVisible() {
		return
	}
	x := g.scaleX(dst, g.rightPaddleLeft())
	yTop := g.scaleY(dst, g.rightY)
	yBot := g.scaleY(dst, g.rightY+g.cfg.Paddles.Height)
	if yBot <= yTop {
		yBot = yTop + 1
	}
	span := yBot - yTop

	for y := yTop; y < yBot; y++ {
		rowLo := (y - yTop) * GridHeight / span
		rowHi := (y - yTop + 1) * GridHeight / span
		if rowHi <= rowLo {
			rowHi = rowLo + 1
		}

		solid, total := 0, 0
		for row := rowLo; row < rowHi; row++ {
			for col := range GridWidth {
				total++
				if g.grid.IsSolid(col, row) {
					solid++
				}
			}
		}
		if solid == 0 {
			continue
		}

		frac := float64(solid) / float64(total)
		idx := int(frac * float64(len(paddleRamp)))
		if idx >= len(paddleRamp) {
			idx = len(paddleRamp) - 1
		}
		dst.SetCell(x, y, paddleRamp[idx], core.ColorRed)
	}
}

// renderBall draws the ball at its scaled center.
func (g *Game) renderBall(dst *core.Screen) {
	if g.state == StateBlink {
		return
	}
	x := g.scaleX(dst, g.ballX+g.cfg.Ball.Size/2)
	y := g.scaleY(dst, g.ballY+g.cfg.Ball.Size/2)
	dst.SetCell(x, y, BallChar, core.ColorBrightWhite)
}

// renderBullets draws all live bullets.
func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.bullets {
		if !b.Active {
			continue
		}
		x := g.scaleX(dst, b.X+g.cfg.Bullets.Size/2)
		y := g.scaleY(dst, b.Y+g.cfg.Bullets.Size/2)
		dst.SetCell(x, y, BulletChar, core.ColorYellow)
	}
}

// renderItem draws the pickup slot if occupied.
func (g *Game) renderItem(dst *core.Screen) {
	if g.item == nil {
		return
	}
	x := g.scaleX(dst, g.item.X+g.cfg.Items.Size/2)
	y := g.scaleY(dst, g.item.Y+g.cfg.Items.Size/2)
	dst.SetCell(x, y, g.item.Kind.Glyph(), core.ColorBrightGreen)
}

// renderOverlay draws pause and game-over message boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateStopped:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		title := "CPU WINS!"
		if g.winner == sideLeft {
			title = "YOU WIN!"
		}
		subtitle := fmt.Sprintf("HP %d - %d  |  Press R to restart", g.leftHealth, g.rightHealth)
		g.drawCenteredMessage(dst, title, subtitle)
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
