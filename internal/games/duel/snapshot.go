package duel

import (
	"math"

	"github.com/vovakirdan/blastpong/internal/core"
	"github.com/vovakirdan/blastpong/internal/match"
)

// snapScale converts arena coordinates to fixed-point snapshot ints.
const snapScale = 1000

func snapF(v float64) int {
	return int(math.Round(v * snapScale))
}

func unsnapF(v int) float64 {
	return float64(v) / snapScale
}

// Snapshot contains the complete game state for replay/save.
// Uses primitive types only for stable serialization. Float fields are
// scaled by 1000 and rounded to the nearest int.
type Snapshot struct {
	Tick uint64

	// Ball
	BallX, BallY   int
	BallVX, BallVY int
	SpeedMult      int

	// Paddles
	LeftY, RightY int
	LeftHealth    int
	RightHealth   int

	// Match flow
	State          string
	Winner         int
	BlinkSide      int
	BlinkMS        int
	Message        string
	MessageUntilMS int

	// Projectiles (each bullet is 4 ints: X, Y, VX, VY)
	Ammo        int
	LastShotMS  int
	HitsLanded  int
	BulletCount int
	BulletData  []int

	// Item slot
	ItemPresent  int
	ItemKind     int
	ItemX, ItemY int
	ItemBornMS   int
	NextSpawnMS  int
	ItemsTaken   int

	// CPU tracking
	AITargetY int

	// Destructible grid. The erosion counters are a complete encoding of
	// the cell matrix because damage is always edge-symmetric.
	MaxHits       int
	HitsRemaining int
	TopRemoved    int
	BottomRemoved int

	// Scheduled events (each entry is 2 ints: AtMS, Event)
	PendingCount int
	PendingData  []int

	// RNG state for serves, item spawns and AI error
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bulletData := make([]int, 0, len(g.bullets)*4)
	for _, b := range g.bullets {
		if !b.Active {
			continue
		}
		bulletData = append(bulletData, snapF(b.X), snapF(b.Y), snapF(b.VX), snapF(b.VY))
	}

	pendingData := make([]int, 0, len(g.soundQueue)*2)
	for _, pe := range g.soundQueue {
		pendingData = append(pendingData, pe.atMS, int(pe.ev))
	}

	top, bottom := g.grid.EdgesRemoved()

	snap := Snapshot{
		Tick: uint64(g.tickCount), //#nosec G115 -- tick count is always positive

		BallX:     snapF(g.ballX),
		BallY:     snapF(g.ballY),
		BallVX:    snapF(g.ballVX),
		BallVY:    snapF(g.ballVY),
		SpeedMult: snapF(g.speedMult),

		LeftY:       snapF(g.leftY),
		RightY:      snapF(g.rightY),
		LeftHealth:  g.leftHealth,
		RightHealth: g.rightHealth,

		State:          g.state,
		Winner:         int(g.winner),
		BlinkSide:      int(g.blinkSide),
		BlinkMS:        g.blinkMS,
		Message:        g.message,
		MessageUntilMS: g.messageUntilMS,

		Ammo:        g.ammo,
		LastShotMS:  g.lastShotMS,
		HitsLanded:  g.hitsLanded,
		BulletCount: len(bulletData) / 4,
		BulletData:  bulletData,

		NextSpawnMS: g.nextSpawnMS,
		ItemsTaken:  g.itemsTaken,

		AITargetY: snapF(g.aiTargetY),

		MaxHits:       g.grid.maxHits,
		HitsRemaining: g.grid.HitsRemaining(),
		TopRemoved:    top,
		BottomRemoved: bottom,

		PendingCount: len(g.soundQueue),
		PendingData:  pendingData,

		RNGState: g.rng.state,
	}

	if g.item != nil {
		snap.ItemPresent = 1
		snap.ItemKind = int(g.item.Kind)
		snap.ItemX = snapF(g.item.X)
		snap.ItemY = snapF(g.item.Y)
		snap.ItemBornMS = g.item.BornMS
	}

	return snap
}

// ApplySnapshot restores game state from a snapshot. The receiver must
// have been Reset with the same config the snapshot was taken under.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int

	g.ballX = unsnapF(snap.BallX)
	g.ballY = unsnapF(snap.BallY)
	g.ballVX = unsnapF(snap.BallVX)
	g.ballVY = unsnapF(snap.BallVY)
	g.speedMult = unsnapF(snap.SpeedMult)

	g.leftY = unsnapF(snap.LeftY)
	g.rightY = unsnapF(snap.RightY)
	g.leftHealth = snap.LeftHealth
	g.rightHealth = snap.RightHealth

	g.state = snap.State
	g.winner = match.PlayerID(snap.Winner)
	g.blinkSide = match.PlayerID(snap.BlinkSide)
	g.blinkMS = snap.BlinkMS
	g.message = snap.Message
	g.messageUntilMS = snap.MessageUntilMS

	g.ammo = snap.Ammo
	g.lastShotMS = snap.LastShotMS
	g.hitsLanded = snap.HitsLanded

	g.bullets = make([]*Bullet, 0, snap.BulletCount)
	for i := range snap.BulletCount {
		idx := i * 4
		if idx+3 >= len(snap.BulletData) {
			break
		}
		g.bullets = append(g.bullets, &Bullet{
			X:      unsnapF(snap.BulletData[idx]),
			Y:      unsnapF(snap.BulletData[idx+1]),
			VX:     unsnapF(snap.BulletData[idx+2]),
			VY:     unsnapF(snap.BulletData[idx+3]),
			Active: true,
		})
	}

	g.item = nil
	if snap.ItemPresent == 1 {
		g.item = &Item{
			Kind:   PickupKind(snap.ItemKind),
			X:      unsnapF(snap.ItemX),
			Y:      unsnapF(snap.ItemY),
			BornMS: snap.ItemBornMS,
		}
	}
	g.nextSpawnMS = snap.NextSpawnMS
	g.itemsTaken = snap.ItemsTaken

	g.aiTargetY = unsnapF(snap.AITargetY)

	g.grid = NewPaddleGrid(snap.MaxHits)
	g.grid.restore(snap.HitsRemaining, snap.TopRemoved, snap.BottomRemoved)

	g.soundQueue = g.soundQueue[:0]
	for i := range snap.PendingCount {
		idx := i * 2
		if idx+1 >= len(snap.PendingData) {
			break
		}
		g.soundQueue = append(g.soundQueue, pendingEvent{
			atMS: snap.PendingData[idx],
			ev:   core.Event(snap.PendingData[idx+1]),
		})
	}

	g.rng.state = snap.RNGState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.BallX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpeedMult)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LeftY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RightY)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LeftHealth)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RightHealth)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlinkSide)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlinkMS)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MessageUntilMS) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ammo)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastShotMS)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HitsLanded)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ItemPresent)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ItemKind)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ItemX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ItemY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ItemBornMS)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextSpawnMS)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ItemsTaken)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AITargetY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxHits)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HitsRemaining)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TopRemoved)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BottomRemoved)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingCount)   //#nosec G115 -- hash computation

	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.PendingData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
