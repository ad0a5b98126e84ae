package scroller

import "math"

// snapScale converts float level coordinates to fixed-point ints so
// the snapshot stays primitive-typed.
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

	// Player
	X, Y     int
	VX, VY   int
	Facing   int
	Grounded int // 0 or 1

	// Course progress
	StartX int
	MaxX   int

	// Camera
	CamX, CamY int

	// Animation
	AnimFrame     int
	FootstepTick  int
	AttackUntilMS int

	// Match flow
	State string
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	grounded := 0
	if g.grounded {
		grounded = 1
	}

	return Snapshot{
		Tick: uint64(g.tickCount), //#nosec G115 -- tick count is always positive

		X:        snapF(g.x),
		Y:        snapF(g.y),
		VX:       snapF(g.vx),
		VY:       snapF(g.vy),
		Facing:   g.facing,
		Grounded: grounded,

		StartX: snapF(g.startX),
		MaxX:   snapF(g.maxX),

		CamX: snapF(g.camX),
		CamY: snapF(g.camY),

		AnimFrame:     g.animFrame,
		FootstepTick:  g.footstepTick,
		AttackUntilMS: g.attackUntilMS,

		State: g.state,
	}
}

// ApplySnapshot restores the game state from a Snapshot. The level and
// config are not part of the snapshot; call Reset first so both are
// loaded, then overlay the snapshot on top.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int

	g.x = unsnapF(snap.X)
	g.y = unsnapF(snap.Y)
	g.vx = unsnapF(snap.VX)
	g.vy = unsnapF(snap.VY)
	g.facing = snap.Facing
	g.grounded = snap.Grounded != 0

	g.startX = unsnapF(snap.StartX)
	g.maxX = unsnapF(snap.MaxX)

	g.camX = unsnapF(snap.CamX)
	g.camY = unsnapF(snap.CamY)

	g.animFrame = snap.AnimFrame
	g.footstepTick = snap.FootstepTick
	g.attackUntilMS = snap.AttackUntilMS

	g.state = snap.State
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.X)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Y)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.VX)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.VY)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Facing)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Grounded)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StartX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CamX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CamY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AnimFrame)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FootstepTick)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AttackUntilMS) //#nosec G115 -- hash computation
	return h
}
