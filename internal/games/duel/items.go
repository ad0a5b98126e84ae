package duel

import (
	"github.com/vovakirdan/blastpong/internal/core"
)

// PickupKind tags what an item grants on collection. Ammo is the only
// kind today; the tag keeps new kinds from touching the spawn logic.
type PickupKind int

const (
	PickupAmmo PickupKind = iota
)

// Glyph returns the display rune for this pickup kind.
func (k PickupKind) Glyph() rune {
	switch k {
	case PickupAmmo:
		return '+'
	default:
		return '?'
	}
}

// Item is a collectible pickup floating in front of the player paddle.
// At most one exists at a time: the lifetime is shorter than the minimum
// spawn interval.
type Item struct {
	Kind   PickupKind
	X, Y   float64
	BornMS int
}

// scheduleItemSpawn draws the next spawn time from the configured window,
// counted from now.
func (g *Game) scheduleItemSpawn() {
	window := g.cfg.Items.SpawnMaxMS - g.cfg.Items.SpawnMinMS
	if window < 0 {
		window = 0
	}
	g.nextSpawnMS = g.clockMS() + g.cfg.Items.SpawnMinMS + g.rng.Intn(window+1)
}

// updateItems runs spawn, expiry and collection for the pickup slot.
// Collection and expiry are mutually exclusive: whichever happens first
// removes the item.
func (g *Game) updateItems(events []core.Event) []core.Event {
	if !g.cfg.Features.Items {
		return events
	}

	now := g.clockMS()

	if g.item == nil {
		if now >= g.nextSpawnMS {
			g.item = &Item{
				Kind:   PickupAmmo,
				X:      g.cfg.Items.SpawnX,
				Y:      g.rng.Range(0, g.cfg.Arena.Height-g.cfg.Items.Size),
				BornMS: now,
			}
			g.scheduleItemSpawn()
			events = append(events, core.EventItemSpawned)
		}
		return events
	}

	// Strictly past the lifetime: an item at the exact boundary tick can
	// still be collected.
	if now-g.item.BornMS > g.cfg.Items.LifetimeMS {
		g.item = nil
		return events
	}

	itemBox := core.NewFRect(g.item.X, g.item.Y, g.cfg.Items.Size, g.cfg.Items.Size)
	paddleBox := core.NewFRect(g.cfg.Paddles.EdgeMargin, g.leftY, g.cfg.Paddles.Width, g.cfg.Paddles.Height)
	if itemBox.Intersects(paddleBox) {
		g.applyPickup(g.item.Kind)
		g.item = nil
		g.itemsTaken++
		events = append(events, core.EventItemCollected)
	}
	return events
}

// applyPickup applies the collected pickup's effect.
func (g *Game) applyPickup(kind PickupKind) {
	switch kind {
	case PickupAmmo:
		g.ammo = core.Min(g.ammo+g.cfg.Items.AmmoBonus, g.cfg.Bullets.MaxAmmo)
	}
}
