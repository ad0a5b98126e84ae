// Package duel implements Blast Duel: a Pong variant where the player
// can shoot the CPU's paddle to pieces. The right paddle is backed by a
// per-pixel destructible grid, bullets erode it from the edges, and
// timed ammo pickups keep the pressure on. The simulation runs in a
// fixed logical arena; the platform scales it to the terminal.
package duel

import (
	"github.com/vovakirdan/blastpong/internal/config"
	"github.com/vovakirdan/blastpong/internal/core"
	"github.com/vovakirdan/blastpong/internal/match"
	"github.com/vovakirdan/blastpong/internal/registry"
)

// Match flow states
const (
	StateRunning  = "running"
	StateStopped  = "stopped"  // explicit user pause
	StateBlink    = "blink"    // post-miss pause, the missing paddle flashes
	StateGameOver = "gameover" // terminal, a side ran out of health
)

// Arena sides, identified by the player defending them.
const (
	sideLeft  = match.Player1
	sideRight = match.Player2
)

// PaddleDamageDelayMS staggers the damage rumble behind the impact ping.
const PaddleDamageDelayMS = 120

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

// pendingEvent is an audio trigger scheduled against the logical clock.
// The queue is dropped wholesale on Reset so a restart never replays
// sounds from the previous match.
type pendingEvent struct {
	atMS int
	ev   core.Event
}

// Game implements the Blast Duel game logic.
type Game struct {
	// Paddles (top edge Y, arena coordinates)
	leftY  float64
	rightY float64

	// Side health, decremented in fixed steps on each miss
	leftHealth  int
	rightHealth int

	// Ball
	ballX, ballY   float64
	ballVX, ballVY float64
	speedMult      float64 // grows on every paddle hit, resets on a score

	// Destructible right paddle
	grid       *PaddleGrid
	hitsLanded int // confirmed bullet hits this match

	// Projectiles
	bullets    []*Bullet
	ammo       int
	lastShotMS int

	// Item slot (at most one concurrent pickup)
	item        *Item
	nextSpawnMS int
	itemsTaken  int

	// CPU tracking
	aiTargetY float64

	// Match flow
	state          string
	winner         match.PlayerID
	blinkSide      match.PlayerID
	blinkMS        int
	message        string
	messageUntilMS int
	soundQueue     []pendingEvent

	// Settings
	runtime   core.RuntimeConfig
	cfg       config.DuelConfig
	rng       *SimpleRNG
	tickCount int
	tickMS    int

	// Screen size guard
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Blast Duel game instance.
func New() *Game {
	return &Game{cfg: config.DefaultDuelConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "duel"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blast Duel"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tickMS = runtime.TickMillis()
	g.rng = NewSimpleRNG(runtime.Seed)

	// Load game config
	cfg, err := config.LoadDuel(configPath)
	if err != nil {
		cfg = config.DefaultDuelConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyDuelPreset(&cfg, difficultyPreset)
	}
	if cfg.AI.RetargetEvery < 1 {
		cfg.AI.RetargetEvery = 1 // the retarget cadence divides the tick count
	}
	g.cfg = cfg

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Center both paddles
	centerY := (cfg.Arena.Height - cfg.Paddles.Height) / 2
	g.leftY = centerY
	g.rightY = centerY
	g.leftHealth = cfg.Paddles.Health
	g.rightHealth = cfg.Paddles.Health

	g.grid = NewPaddleGrid(cfg.Paddles.HitPoints)
	g.hitsLanded = 0

	g.bullets = make([]*Bullet, 0, cfg.Bullets.MaxAmmo)
	g.ammo = cfg.Bullets.StartAmmo
	g.lastShotMS = -cfg.Bullets.CooldownMS // first shot is never rate-limited

	g.item = nil
	g.itemsTaken = 0

	g.aiTargetY = cfg.Arena.Height / 2

	g.state = StateRunning
	g.winner = match.NoPlayer
	g.blinkSide = match.NoPlayer
	g.blinkMS = 0
	g.message = ""
	g.messageUntilMS = 0
	g.soundQueue = g.soundQueue[:0]

	g.speedMult = 1.0
	g.tickCount = 0

	g.scheduleItemSpawn()
	g.serve(-1) // opening serve challenges the player
}

// clockMS returns elapsed logical time. The simulation assumes a fixed
// step per tick, so every timer behaves identically under frame drops.
func (g *Game) clockMS() int {
	return g.tickCount * g.tickMS
}

// scheduleEvent queues an event to fire once the logical clock has
// advanced delayMS from now.
func (g *Game) scheduleEvent(delayMS int, ev core.Event) {
	g.soundQueue = append(g.soundQueue, pendingEvent{atMS: g.clockMS() + delayMS, ev: ev})
}

// flushDueEvents emits queued events whose time has come.
func (g *Game) flushDueEvents(events []core.Event) []core.Event {
	if len(g.soundQueue) == 0 {
		return events
	}
	now := g.clockMS()
	pending := g.soundQueue[:0]
	for _, pe := range g.soundQueue {
		if now >= pe.atMS {
			events = append(events, pe.ev)
		} else {
			pending = append(pending, pe)
		}
	}
	g.soundQueue = pending
	return events
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	// Restart from the terminal state rebuilds the whole match and falls
	// through, so the fresh match plays its first tick in this same step.
	if g.state == StateGameOver {
		if !in.Has(core.ActionRestart) {
			return core.StepResult{State: g.State()}
		}
		g.Reset(g.runtime)
	}

	// Explicit pause is distinct from the post-miss blink.
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

	events = g.flushDueEvents(events)

	if g.state == StateBlink {
		// Ball and paddles stay frozen until the blink runs out, then
		// the ball is re-served away from the side that missed.
		g.blinkMS += g.tickMS
		if g.blinkMS >= g.cfg.Timing.BlinkTotalMS {
			dir := 1.0
			if g.blinkSide == sideRight {
				dir = -1.0
			}
			g.blinkSide = match.NoPlayer
			g.blinkMS = 0
			g.serve(dir)
			g.state = StateRunning
		}
	} else {
		// Player paddle
		if in.Has(core.ActionUp) {
			g.leftY -= g.cfg.Paddles.Speed
		}
		if in.Has(core.ActionDown) {
			g.leftY += g.cfg.Paddles.Speed
		}
		g.leftY = core.ClampF(g.leftY, 0, g.cfg.Arena.Height-g.cfg.Paddles.Height)

		g.updateAI()
		events = g.updateBall(events)
	}

	// Projectiles and items run through the blink pause: bullets already
	// in flight keep flying and the player may keep shooting.
	if in.Has(core.ActionShoot) {
		events = g.fire(events)
	}
	events = g.updateBullets(events)
	events = g.updateItems(events)

	return core.StepResult{State: g.State(), Events: events}
}

// handleMiss applies a miss against the given side: health drops one
// step, the rally speed resets, and the match either pauses to blink or,
// on the last point of health, ends outright.
func (g *Game) handleMiss(side match.PlayerID, events []core.Event) []core.Event {
	events = append(events, core.EventScore)
	g.speedMult = 1.0

	exhausted := false
	switch side {
	case sideLeft:
		g.leftHealth = core.Max(g.leftHealth-g.cfg.Paddles.HealthStep, 0)
		exhausted = g.leftHealth == 0
	case sideRight:
		g.rightHealth = core.Max(g.rightHealth-g.cfg.Paddles.HealthStep, 0)
		exhausted = g.rightHealth == 0
	}

	if exhausted {
		g.state = StateGameOver
		g.winner = otherSide(side)
		g.ballVX = 0
		g.ballVY = 0
		return append(events, core.EventGameOver)
	}

	if !g.cfg.Features.BlinkPause {
		dir := 1.0 // the new serve reverses the scoring direction
		if side == sideRight {
			dir = -1.0
		}
		g.serve(dir)
		return events
	}

	g.state = StateBlink
	g.blinkSide = side
	g.blinkMS = 0
	g.ballVX = 0
	g.ballVY = 0
	return events
}

// otherSide returns the opponent of the given side.
func otherSide(p match.PlayerID) match.PlayerID {
	if p == sideLeft {
		return sideRight
	}
	return sideLeft
}

// currentScore folds the match into a single scoreboard number: the
// player's remaining health plus a bonus per confirmed bullet hit, or
// zero once the player has lost.
func (g *Game) currentScore() int {
	if g.leftHealth <= 0 {
		return 0
	}
	return g.leftHealth + 10*g.hitsLanded
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.currentScore(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StateStopped,
	}
}

// MatchResult reports the duel outcome for the platform's match log.
// While the match is still in progress it reports a forfeit with the CPU
// taking the win; the platform records this when the player abandons a
// started match.
func (g *Game) MatchResult() match.Result {
	reason := match.EndReasonCompleted
	winner := g.winner
	if g.state != StateGameOver {
		reason = match.EndReasonForfeit
		winner = match.Player2
	}
	return match.Result{
		GameID: g.ID(),
		Mode:   match.ModeVsCPU,
		Reason: reason,
		Winner: winner,
		Score1: g.leftHealth,
		Score2: g.rightHealth,
		Hits:   g.hitsLanded,
		Ticks:  uint64(g.tickCount), //#nosec G115 -- tick count is always positive
	}
}

// Register the game with the registry
func init() {
	registry.Register("duel", func() registry.Game {
		return New()
	})
}
