package duel

import (
	"github.com/vovakirdan/blastpong/internal/core"
)

// Bullet is a live projectile. Bullets fly in a straight line and die on
// leaving the extended arena or on the first solid cell they strike.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Active bool
}

// fire spawns a bullet at the player paddle's face if ammo and the rate
// limit allow. A dry trigger surfaces as an ammo-empty event plus a
// transient HUD message; a trigger inside the cooldown window is silent.
func (g *Game) fire(events []core.Event) []core.Event {
	if !g.cfg.Features.Projectiles {
		return events
	}
	if g.clockMS()-g.lastShotMS < g.cfg.Bullets.CooldownMS {
		return events
	}
	if g.ammo <= 0 {
		g.message = "NO AMMO"
		g.messageUntilMS = g.clockMS() + g.cfg.Timing.MessageMS
		return append(events, core.EventAmmoEmpty)
	}

	g.ammo--
	g.lastShotMS = g.clockMS()
	g.bullets = append(g.bullets, &Bullet{
		X:      g.leftPaddleEdge(),
		Y:      g.leftY + g.cfg.Paddles.Height/2 - g.cfg.Bullets.Size/2,
		VX:     g.cfg.Bullets.Speed,
		Active: true,
	})
	return append(events, core.EventBulletFired)
}

// updateBullets advances every live bullet, culls strays past the arena
// margin, and applies confirmed hits to the destructible paddle.
func (g *Game) updateBullets(events []core.Event) []core.Event {
	if len(g.bullets) == 0 {
		return events
	}

	for _, b := range g.bullets {
		if !b.Active {
			continue
		}
		b.X += b.VX
		b.Y += b.VY

		if b.X > g.cfg.Arena.Width+g.cfg.Bullets.CullMargin ||
			b.X+g.cfg.Bullets.Size < -g.cfg.Bullets.CullMargin {
			b.Active = false
			continue
		}

		events = g.checkBulletImpact(b, events)
	}

	// Drop dead bullets in place.
	alive := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Active {
			alive = append(alive, b)
		}
	}
	g.bullets = alive

	return events
}

// checkBulletImpact tests a bullet against the right paddle's grid. Only
// the primary column - the one under the bullet's horizontal center - is
// scanned. A bullet whose primary column is already fully eroded keeps
// flying and never costs the paddle a hit point.
func (g *Game) checkBulletImpact(b *Bullet, events []core.Event) []core.Event {
	paddleLeft := g.rightPaddleLeft()
	paddleTop := g.rightY

	bulletBox := core.NewFRect(b.X, b.Y, g.cfg.Bullets.Size, g.cfg.Bullets.Size)
	paddleBox := core.NewFRect(paddleLeft, paddleTop, g.cfg.Paddles.Width, g.cfg.Paddles.Height)
	if !bulletBox.Intersects(paddleBox) {
		return events
	}

	col := int(b.X + g.cfg.Bullets.Size/2 - paddleLeft)
	if col < 0 || col >= GridWidth {
		return events
	}

	rowLo := core.Clamp(int(b.Y-paddleTop), 0, GridHeight-1)
	rowHi := core.Clamp(int(b.Y+g.cfg.Bullets.Size-paddleTop), 0, GridHeight-1)

	for row := rowLo; row <= rowHi; row++ {
		if !g.grid.IsSolid(col, row) {
			continue
		}
		// First solid contact consumes the bullet whether or not the
		// grid still has hit points left to lose.
		if g.grid.ApplyHit(col) {
			g.hitsLanded++
			g.scheduleEvent(PaddleDamageDelayMS, core.EventPaddleDamaged)
		}
		b.Active = false
		return append(events, core.EventBulletImpact)
	}
	return events
}
