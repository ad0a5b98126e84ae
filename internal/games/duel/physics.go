package duel

import (
	"github.com/vovakirdan/blastpong/internal/core"
)

// leftPaddleEdge returns the X coordinate of the left paddle's ball-facing
// side. The paddle body spans [EdgeMargin, leftPaddleEdge).
func (g *Game) leftPaddleEdge() float64 {
	return g.cfg.Paddles.EdgeMargin + g.cfg.Paddles.Width
}

// rightPaddleLeft returns the X coordinate of the right paddle's
// ball-facing side, mirroring the left paddle's edge margin.
func (g *Game) rightPaddleLeft() float64 {
	return g.cfg.Arena.Width - g.cfg.Paddles.EdgeMargin - g.cfg.Paddles.Width
}

// serve re-centers the ball and launches it. dir is +1 to send the ball
// toward the CPU, -1 toward the player. The vertical component is drawn
// fresh from the match RNG on every serve.
func (g *Game) serve(dir float64) {
	g.ballX = (g.cfg.Arena.Width - g.cfg.Ball.Size) / 2
	g.ballY = (g.cfg.Arena.Height - g.cfg.Ball.Size) / 2
	g.ballVX = dir * g.cfg.Ball.SpeedX
	g.ballVY = g.rng.Range(-g.cfg.Ball.SpeedY, g.cfg.Ball.SpeedY)
}

// applySpin sets the ball's vertical velocity from where its center
// struck the paddle face: dead center sends it flat, the extremes send
// it off at half the spin range up or down.
func (g *Game) applySpin(paddleTop float64) {
	hitY := g.ballY + g.cfg.Ball.Size/2
	offset := (hitY-paddleTop)/g.cfg.Paddles.Height - 0.5
	g.ballVY = offset * g.cfg.Ball.SpinRange
}

// updateBall integrates ball motion for one tick and resolves wall
// bounces, paddle hits and misses. Paddle tests are swept against the
// previous X so a fast ball cannot step over a paddle in a single tick.
func (g *Game) updateBall(events []core.Event) []core.Event {
	prevX := g.ballX
	g.ballX += g.ballVX * g.speedMult
	g.ballY += g.ballVY * g.speedMult

	// Top and bottom walls
	if g.ballY <= 0 {
		g.ballY = 0
		g.ballVY = -g.ballVY
		events = append(events, core.EventWallBounce)
	} else if g.ballY >= g.cfg.Arena.Height-g.cfg.Ball.Size {
		g.ballY = g.cfg.Arena.Height - g.cfg.Ball.Size
		g.ballVY = -g.ballVY
		events = append(events, core.EventWallBounce)
	}

	// Left paddle is a plain solid rectangle.
	leftEdge := g.leftPaddleEdge()
	if g.ballVX < 0 && prevX >= leftEdge && g.ballX < leftEdge &&
		g.ballY+g.cfg.Ball.Size > g.leftY && g.ballY < g.leftY+g.cfg.Paddles.Height {
		g.ballX = leftEdge
		g.ballVX = -g.ballVX
		g.applySpin(g.leftY)
		g.speedMult *= g.cfg.Ball.SpeedupPerHit
		events = append(events, core.EventPaddleHit)
	}

	// Right paddle bounces are gated by the destructible grid: if every
	// cell the ball crosses has been shot away, it sails through.
	rightLeft := g.rightPaddleLeft()
	if g.ballVX > 0 && prevX+g.cfg.Ball.Size <= rightLeft && g.ballX+g.cfg.Ball.Size > rightLeft &&
		g.rightPaddleBlocks(prevX) {
		g.ballX = rightLeft - g.cfg.Ball.Size
		g.ballVX = -g.ballVX
		g.applySpin(g.rightY)
		g.speedMult *= g.cfg.Ball.SpeedupPerHit
		events = append(events, core.EventPaddleHit)
	}

	// A ball out the side is a miss against that side.
	if g.ballX < 0 {
		events = g.handleMiss(sideLeft, events)
	} else if g.ballX > g.cfg.Arena.Width {
		events = g.handleMiss(sideRight, events)
	}

	return events
}

// rightPaddleBlocks reports whether the ball's pass across the right
// paddle this tick touches at least one solid grid cell. Columns come
// from the full swept horizontal span (a sped-up ball can cross the
// whole paddle in one step), rows from the ball's vertical extent.
func (g *Game) rightPaddleBlocks(prevX float64) bool {
	paddleLeft := g.rightPaddleLeft()
	paddleTop := g.rightY

	if g.ballY+g.cfg.Ball.Size <= paddleTop || g.ballY >= paddleTop+g.cfg.Paddles.Height {
		return false
	}

	colLo := core.Clamp(int(core.MinF(prevX, g.ballX)-paddleLeft), 0, GridWidth-1)
	colHi := core.Clamp(int(core.MaxF(prevX, g.ballX)+g.cfg.Ball.Size-paddleLeft), 0, GridWidth-1)
	rowLo := core.Clamp(int(g.ballY-paddleTop), 0, GridHeight-1)
	rowHi := core.Clamp(int(g.ballY+g.cfg.Ball.Size-paddleTop), 0, GridHeight-1)

	for col := colLo; col <= colHi; col++ {
		for row := rowLo; row <= rowHi; row++ {
			if g.grid.IsSolid(col, row) {
				return true
			}
		}
	}
	return false
}
