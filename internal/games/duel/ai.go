package duel

import (
	"github.com/vovakirdan/blastpong/internal/core"
)

// updateAI moves the CPU paddle toward its current target. The target is
// re-aimed from the ball only every Nth tick while the ball approaches,
// with a bounded random error injected into each aim; when the ball
// moves away the paddle settles back toward center court.
func (g *Game) updateAI() {
	if g.ballVX > 0 {
		if g.tickCount%g.cfg.AI.RetargetEvery == 0 {
			aimErr := g.rng.Range(-g.cfg.AI.ErrorMargin, g.cfg.AI.ErrorMargin)
			g.aiTargetY = g.ballY + g.cfg.Ball.Size/2 + aimErr
		}
	} else {
		g.aiTargetY = g.cfg.Arena.Height / 2
	}

	center := g.rightY + g.cfg.Paddles.Height/2
	diff := g.aiTargetY - center
	if core.AbsF(diff) <= g.cfg.AI.DeadZone {
		return
	}

	speed := g.cfg.Paddles.Speed * g.cfg.AI.SpeedFactor
	if diff > 0 {
		g.rightY += speed
	} else {
		g.rightY -= speed
	}
	g.rightY = core.ClampF(g.rightY, 0, g.cfg.Arena.Height-g.cfg.Paddles.Height)
}
