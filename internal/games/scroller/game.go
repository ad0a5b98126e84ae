// Package scroller implements Side Scroller: a run-and-jump platformer
// across a fixed course of floors, pits, floating platforms and ramps.
// The simulation runs in level pixel coordinates; a camera windows an
// 800x600 slice of the level and the platform scales that window to
// the terminal.
package scroller

import (
	"github.com/vovakirdan/blastpong/internal/config"
	"github.com/vovakirdan/blastpong/internal/core"
	"github.com/vovakirdan/blastpong/internal/registry"
)

// Match flow states
const (
	StateRunning  = "running"
	StateStopped  = "stopped"  // explicit user pause
	StateGameOver = "gameover" // terminal, the player fell out of the world
)

// The camera windows a fixed slice of the level; rendering scales that
// window to the terminal, so resizes never change the physics.
const (
	ViewW = 800.0
	ViewH = 600.0
)

// AttackMS is how long the melee swing pose is held on screen.
const AttackMS = 300

// FootstepEvery is the tick cadence between footstep sounds while the
// player is moving on the ground.
const FootstepEvery = 12

// rampStick keeps the player glued to a slope when walking downhill;
// without it every downhill step would briefly go airborne.
const rampStick = 4.0

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// Game implements the Side Scroller game logic.
type Game struct {
	// Player kinematics (top-left corner, level coordinates)
	x, y     float64
	vx, vy   float64
	facing   int // +1 right, -1 left
	grounded bool

	// Course
	level  Level
	startX float64
	maxX   float64 // farthest X reached, drives the score

	// Camera (top-left corner of the view window)
	camX, camY float64

	// Animation
	animFrame     int
	footstepTick  int
	attackUntilMS int

	// Match flow
	state string

	// Settings
	runtime   core.RuntimeConfig
	cfg       config.ScrollerConfig
	tickCount int
	tickMS    int

	// Screen size guard
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Side Scroller game instance.
func New() *Game {
	return &Game{cfg: config.DefaultScrollerConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "scroller"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Side Scroller"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tickMS = runtime.TickMillis()

	// Load game config
	cfg, err := config.LoadScroller(configPath)
	if err != nil {
		cfg = config.DefaultScrollerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyScrollerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.level = defaultLevel()

	g.x = cfg.Player.StartX
	g.y = cfg.Player.StartY
	g.vx = 0
	g.vy = 0
	g.facing = 1
	g.grounded = false

	g.startX = cfg.Player.StartX
	g.maxX = g.startX

	g.animFrame = 0
	g.footstepTick = 0
	g.attackUntilMS = 0

	g.state = StateRunning
	g.tickCount = 0

	// Snap the camera straight onto the spawn point.
	g.camX = core.ClampF(g.x+cfg.Player.Width/2-ViewW/2, 0, g.level.Width-ViewW)
	if cfg.Camera.LockVertical {
		g.camY = g.level.Height - ViewH
	} else {
		g.camY = core.ClampF(g.y+cfg.Player.Height/2-ViewH/2, 0, g.level.Height-ViewH)
	}
}

// clockMS returns elapsed logical time. The simulation assumes a fixed
// step per tick, so every timer behaves identically under frame drops.
func (g *Game) clockMS() int {
	return g.tickCount * g.tickMS
}

// playerRect returns the player's bounding box in level coordinates.
func (g *Game) playerRect() core.FRect {
	return core.NewFRect(g.x, g.y, g.cfg.Player.Width, g.cfg.Player.Height)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	// Restart from the terminal state rebuilds the whole run and falls
	// through, so the fresh run plays its first tick in this same step.
	if g.state == StateGameOver {
		if !in.Has(core.ActionRestart) {
			return core.StepResult{State: g.State()}
		}
		g.Reset(g.runtime)
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StateRunning:
			g.state = StateStopped
			events = append(events, core.EventGamePause)
		case StateStopped:
			g.state = StateRunning
		}
	}

	if g.state == StateStopped {
		return core.StepResult{State: g.State(), Events: events}
	}

	if g.tickCount == 0 {
		events = append(events, core.EventGameStart)
	}
	g.tickCount++

	g.applyInput(in)
	g.integrate()
	g.resolveRects()
	g.resolveRamps()

	if g.x > g.maxX {
		g.maxX = g.x
	}

	g.updateCamera()
	events = g.updateAnimation(events)

	// Falling out of the camera view ends the run.
	if g.y > g.camY+ViewH+g.cfg.Camera.KillMargin {
		g.state = StateGameOver
		g.vx = 0
		g.vy = 0
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// applyInput turns held actions into velocities. Horizontal speed is
// set directly (no inertia); the jump impulse is gated on standing.
func (g *Game) applyInput(in core.InputFrame) {
	speed := g.cfg.Physics.WalkSpeed
	if in.Has(core.ActionRun) {
		speed = g.cfg.Physics.RunSpeed
	}

	g.vx = 0
	if in.Has(core.ActionLeft) {
		g.vx = -speed
		g.facing = -1
	}
	if in.Has(core.ActionRight) {
		g.vx = speed
		g.facing = 1
	}

	if in.Has(core.ActionJump) && g.grounded {
		g.vy = g.cfg.Physics.JumpImpulse
		g.grounded = false
	}

	if in.Has(core.ActionAttack) {
		g.attackUntilMS = g.clockMS() + AttackMS
	}
}

// integrate advances the player by the current velocities. Gravity
// always applies; standing is re-proven by collision every tick.
func (g *Game) integrate() {
	g.vy = core.MinF(g.vy+g.cfg.Physics.Gravity, g.cfg.Physics.MaxFallSpeed)
	g.x += g.vx
	g.y += g.vy
	g.x = core.ClampF(g.x, 0, g.level.Width-g.cfg.Player.Width)
	g.grounded = false
}

// resolveRects pushes the player out of every overlapping rectangle
// along the axis of least penetration. A shallow horizontal overlap is
// a wall hit; a shallow vertical one is a floor or ceiling hit.
func (g *Game) resolveRects() {
	for _, r := range g.level.Rects {
		p := g.playerRect()
		ox := p.OverlapX(r)
		oy := p.OverlapY(r)
		if ox <= 0 || oy <= 0 {
			continue
		}
		if ox < oy {
			// Side hit: push out and stop horizontal motion.
			if p.X+p.W/2 < r.X+r.W/2 {
				g.x = r.X - p.W
			} else {
				g.x = r.Right()
			}
			g.vx = 0
		} else if p.Y+p.H/2 < r.Y+r.H/2 {
			// Landed on top.
			g.y = r.Y - p.H
			if g.vy > 0 {
				g.vy = 0
			}
			g.grounded = true
		} else {
			// Bumped a ceiling from below.
			g.y = r.Bottom()
			if g.vy < 0 {
				g.vy = 0
			}
		}
	}
}

// resolveRamps snaps the player's feet onto any slope under them. Only
// applies while falling or level, so a jump can leave the surface.
func (g *Game) resolveRamps() {
	if g.vy < 0 {
		return
	}
	footX := g.x + g.cfg.Player.Width/2
	for _, r := range g.level.Ramps {
		sy, ok := r.SurfaceY(footX)
		if !ok {
			continue
		}
		bottom := g.y + g.cfg.Player.Height
		if bottom < sy-rampStick || g.y > sy {
			continue
		}
		g.y = sy - g.cfg.Player.Height
		g.vy = 0
		g.grounded = true
	}
}

// updateCamera eases the view window toward the player. Horizontal
// tracking always follows; vertical tracking can be locked to the
// bottom of the level by configuration.
func (g *Game) updateCamera() {
	targetX := core.ClampF(g.x+g.cfg.Player.Width/2-ViewW/2, 0, g.level.Width-ViewW)
	g.camX = core.Lerp(g.camX, targetX, g.cfg.Camera.LerpFactor)

	if g.cfg.Camera.LockVertical {
		g.camY = g.level.Height - ViewH
		return
	}
	targetY := core.ClampF(g.y+g.cfg.Player.Height/2-ViewH/2, 0, g.level.Height-ViewH)
	g.camY = core.Lerp(g.camY, targetY, g.cfg.Camera.LerpFactor)
}

// updateAnimation advances the walk cycle and emits footsteps while
// the player is moving on the ground.
func (g *Game) updateAnimation(events []core.Event) []core.Event {
	if g.grounded && g.vx != 0 {
		g.animFrame++
		g.footstepTick++
		if g.footstepTick >= FootstepEvery {
			g.footstepTick = 0
			events = append(events, core.EventFootstep)
		}
	} else {
		g.animFrame = 0
		g.footstepTick = 0
	}
	return events
}

// currentScore reports the farthest distance reached this run.
func (g *Game) currentScore() int {
	return core.Max(int(g.maxX-g.startX), 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.currentScore(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StateStopped,
	}
}

// Register the game with the registry
func init() {
	registry.Register("scroller", func() registry.Game {
		return New()
	})
}
