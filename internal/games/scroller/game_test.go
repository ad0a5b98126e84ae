package scroller

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blastpong/internal/core"
)

func hasEvent(events []core.Event, ev core.Event) bool {
	for _, e := range events {
		if e == ev {
			return true
		}
	}
	return false
}

func TestGameDeterminism(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

	run := func() (*Game, Snapshot, Snapshot) {
		g := New()
		g.Reset(runtime)
		var mid Snapshot
		for i := 0; i < 400; i++ {
			frame := core.NewInputFrame()
			frame.Set(core.ActionRight)
			if i%7 < 3 {
				frame.Set(core.ActionRun)
			}
			if i%50 == 0 {
				frame.Set(core.ActionJump)
			}
			if i%90 == 0 {
				frame.Set(core.ActionAttack)
			}
			g.Step(frame)
			if i == 99 {
				mid = g.Snapshot()
			}
		}
		return g, mid, g.Snapshot()
	}

	g1, mid1, end1 := run()
	g2, mid2, end2 := run()

	if mid1.Hash() != mid2.Hash() {
		t.Errorf("mid-run hashes differ: %d vs %d", mid1.Hash(), mid2.Hash())
	}
	if end1.Hash() != end2.Hash() {
		t.Errorf("end hashes differ: %d vs %d", end1.Hash(), end2.Hash())
	}
	if mid1.Tick != 100 {
		t.Errorf("mid snapshot tick = %d, want 100", mid1.Tick)
	}
	if g1.x != g2.x || g1.y != g2.y {
		t.Errorf("positions diverged: (%v,%v) vs (%v,%v)", g1.x, g1.y, g2.x, g2.y)
	}
	if g1.State().Score != g2.State().Score {
		t.Errorf("scores diverged: %d vs %d", g1.State().Score, g2.State().Score)
	}
}

func TestGameReset(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)

	// Scramble the state with some motion, then reset.
	for i := 0; i < 50; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		g.Step(frame)
	}
	if g.x == g.cfg.Player.StartX {
		t.Fatal("player should have moved before the reset")
	}

	g.Reset(runtime)

	if g.x != g.cfg.Player.StartX || g.y != g.cfg.Player.StartY {
		t.Errorf("player at (%v,%v), should respawn at (%v,%v)", g.x, g.y, g.cfg.Player.StartX, g.cfg.Player.StartY)
	}
	if g.vx != 0 || g.vy != 0 {
		t.Errorf("velocity = (%v,%v), should be zero after reset", g.vx, g.vy)
	}
	if g.maxX != g.startX || g.State().Score != 0 {
		t.Errorf("progress should reset, got maxX=%v score=%d", g.maxX, g.State().Score)
	}
	if g.tickCount != 0 || g.state != StateRunning {
		t.Errorf("flow should reset, got tick=%d state=%s", g.tickCount, g.state)
	}
	if g.facing != 1 {
		t.Errorf("facing = %d, should face right after reset", g.facing)
	}
	if g.camX != 0 || g.camY != g.level.Height-ViewH {
		t.Errorf("camera should snap to spawn, got (%v,%v)", g.camX, g.camY)
	}
}

func TestSpawnFallsToGround(t *testing.T) {
	// The spawn point hangs above the floor; gravity must bring the
	// player down onto it within a second.
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)

	if g.grounded {
		t.Fatal("player should spawn airborne")
	}

	landed := false
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
		if g.grounded {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("player should land within 30 ticks")
	}
	wantY := 820 - g.cfg.Player.Height
	if g.y != wantY {
		t.Errorf("player y = %v, should rest at %v", g.y, wantY)
	}
	if g.vy != 0 {
		t.Errorf("vy = %v, should be zero while standing", g.vy)
	}
}

func TestFallSpeedCap(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)

	// Drop from high up: the fall speed must saturate at the cap.
	g.y = 100
	g.vy = 0

	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
		if g.vy > g.cfg.Physics.MaxFallSpeed {
			t.Fatalf("vy = %v exceeds the fall cap %v", g.vy, g.cfg.Physics.MaxFallSpeed)
		}
		if g.grounded {
			break
		}
	}
	if !g.grounded {
		t.Error("player should eventually land")
	}
	if g.y != 820-g.cfg.Player.Height {
		t.Errorf("player y = %v, should rest on the floor", g.y)
	}
}

func TestWalkSpeed(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	startX := g.x
	for i := 0; i < 10; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		g.Step(frame)
	}

	want := startX + 10*g.cfg.Physics.WalkSpeed
	if g.x != want {
		t.Errorf("x = %v after 10 walking ticks, want %v", g.x, want)
	}
	if g.facing != 1 {
		t.Errorf("facing = %d, should face right", g.facing)
	}
	if !g.grounded {
		t.Error("walking on flat ground should stay grounded")
	}
}

func TestRunSpeed(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	startX := g.x
	for i := 0; i < 10; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		frame.Set(core.ActionRun)
		g.Step(frame)
	}

	want := startX + 10*g.cfg.Physics.RunSpeed
	if g.x != want {
		t.Errorf("x = %v after 10 running ticks, want %v", g.x, want)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	// First jump fires: the impulse minus one tick of gravity.
	frame := core.NewInputFrame()
	frame.Set(core.ActionJump)
	g.Step(frame)

	wantVY := g.cfg.Physics.JumpImpulse + g.cfg.Physics.Gravity
	if !almostEqual(g.vy, wantVY) {
		t.Errorf("vy = %v after jump, want %v", g.vy, wantVY)
	}
	if g.grounded {
		t.Error("player should be airborne right after jumping")
	}

	// Holding jump while airborne must not re-trigger the impulse.
	g.Step(frame)
	if !almostEqual(g.vy, wantVY+g.cfg.Physics.Gravity) {
		t.Errorf("vy = %v, airborne jump input should only see gravity", g.vy)
	}
}

func TestJumpApexAndLanding(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true
	startY := g.y

	frame := core.NewInputFrame()
	frame.Set(core.ActionJump)
	g.Step(frame)

	minY := g.y
	landed := false
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
		if g.y < minY {
			minY = g.y
		}
		if g.grounded {
			landed = true
			break
		}
	}

	// With impulse -6 and gravity 0.3 the apex is 57 px above ground.
	if !almostEqual(minY, startY-57) {
		t.Errorf("jump apex = %v, want %v", minY, startY-57)
	}
	if !landed {
		t.Fatal("player should land again within 60 ticks")
	}
	if g.y != startY {
		t.Errorf("player y = %v after landing, want %v", g.y, startY)
	}
}

func TestWalkJumpClearsFirstPit(t *testing.T) {
	// Jumping at walking speed from the edge of the first pit carries
	// just far enough to reach the second ground segment.
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 890
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	for i := 0; i < 60; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		if i == 0 {
			frame.Set(core.ActionJump)
		}
		g.Step(frame)
		if i > 0 && g.grounded {
			break
		}
	}

	if !g.grounded {
		t.Fatal("player should have landed")
	}
	if g.x < 1000 {
		t.Errorf("player x = %v, should have cleared the pit at 900..1000", g.x)
	}
	if g.y != 820-g.cfg.Player.Height {
		t.Errorf("player y = %v, should stand on the far segment", g.y)
	}
	if g.state != StateRunning {
		t.Errorf("state = %s, the jump should not end the run", g.state)
	}
}

func TestWalkFallsIntoSecondPit(t *testing.T) {
	// The second pit is too wide for a walking jump: the player drops
	// in, falls out of view, and the run ends. Restart respawns.
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 1674
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	died := false
	for i := 0; i < 100; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		if i == 0 {
			frame.Set(core.ActionJump)
		}
		result := g.Step(frame)
		if g.state == StateGameOver {
			if !hasEvent(result.Events, core.EventGameOver) {
				t.Error("the fatal step should emit the game over event")
			}
			died = true
			break
		}
	}

	if !died {
		t.Fatal("a walking jump should not clear the second pit")
	}
	if !g.State().GameOver {
		t.Error("State() should report game over")
	}
	if g.State().Score < 1700 {
		t.Errorf("score = %d, should report the distance covered before the fall", g.State().Score)
	}

	// Restart rebuilds the run from the spawn point.
	frame := core.NewInputFrame()
	frame.Set(core.ActionRestart)
	result := g.Step(frame)

	if g.state != StateRunning {
		t.Errorf("state = %s after restart, want %s", g.state, StateRunning)
	}
	if g.x != g.cfg.Player.StartX || g.State().Score != 0 {
		t.Errorf("restart should respawn fresh, got x=%v score=%d", g.x, g.State().Score)
	}
	if !hasEvent(result.Events, core.EventGameStart) {
		t.Error("restart should emit a game start event")
	}
}

func TestRunJumpClearsSecondPit(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 1680
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	for i := 0; i < 60; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		frame.Set(core.ActionRun)
		if i == 0 {
			frame.Set(core.ActionJump)
		}
		g.Step(frame)
		if i > 0 && g.grounded {
			break
		}
	}

	if !g.grounded {
		t.Fatal("player should have landed")
	}
	if g.x < 1870 {
		t.Errorf("player x = %v, a running jump should reach the far segment", g.x)
	}
	if g.y != 820-g.cfg.Player.Height {
		t.Errorf("player y = %v, should stand on the far segment", g.y)
	}
	if g.state != StateRunning {
		t.Errorf("state = %s, the crossing should not end the run", g.state)
	}
}

func TestWallStopsWalker(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 2450
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	for i := 0; i < 20; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		g.Step(frame)
	}

	// The wall face is at 2500; the player is pinned against it.
	want := 2500 - g.cfg.Player.Width
	if g.x != want {
		t.Errorf("player x = %v, should be pinned at %v", g.x, want)
	}
	if g.vx != 0 {
		t.Errorf("vx = %v, the wall hit should zero horizontal speed", g.vx)
	}
	if !g.grounded {
		t.Error("player should stay grounded while pushing the wall")
	}
}

func TestJumpCrossesWall(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 2450
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	for i := 0; i < 80; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		frame.Set(core.ActionRun)
		if i == 0 {
			frame.Set(core.ActionJump)
		}
		g.Step(frame)
		if g.x > 2530 && g.grounded {
			break
		}
	}

	if g.x <= 2530 || !g.grounded {
		t.Errorf("player at x=%v grounded=%v, a running jump should cross the wall", g.x, g.grounded)
	}
	if g.y != 820-g.cfg.Player.Height {
		t.Errorf("player y = %v, should be back on the floor", g.y)
	}
	if g.state != StateRunning {
		t.Errorf("state = %s, the crossing should not end the run", g.state)
	}
}

func TestCeilingBounce(t *testing.T) {
	// Jumping from under a floating platform bumps the head and stops
	// the ascent.
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 1202 // centered under the first floating platform
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	frame := core.NewInputFrame()
	frame.Set(core.ActionJump)
	g.Step(frame)
	g.Step(core.NewInputFrame())

	// The platform underside is at 768+16=784.
	if g.y != 784 {
		t.Errorf("player y = %v, head should stop at the platform underside 784", g.y)
	}
	if g.vy != 0 {
		t.Errorf("vy = %v, the bump should cancel upward speed", g.vy)
	}
	if g.grounded {
		t.Error("a ceiling hit should not count as standing")
	}

	// Gravity then brings the player back to the floor.
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
		if g.grounded {
			break
		}
	}
	if !g.grounded || g.y != 820-g.cfg.Player.Height {
		t.Errorf("player should drop back to the floor, got y=%v grounded=%v", g.y, g.grounded)
	}
}

func TestLandOnFloatingPlatform(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 1080
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	for i := 0; i < 40; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		if i == 0 {
			frame.Set(core.ActionJump)
		}
		g.Step(frame)
		if i > 0 && g.grounded {
			break
		}
	}

	// The platform top is at 768.
	if !g.grounded {
		t.Fatal("player should have landed on the platform")
	}
	if g.y != 768-g.cfg.Player.Height {
		t.Errorf("player y = %v, should stand on the platform top", g.y)
	}
	if g.x < 1150-g.cfg.Player.Width || g.x > 1270 {
		t.Errorf("player x = %v, should be over the platform span", g.x)
	}
}

func TestRampWalkUpAndDown(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 692 // foot center at the ramp base x=700
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	// Ten ticks up the slope: 30 px of travel on a 0.4 gradient.
	for i := 0; i < 10; i++ {
		prevY := g.y
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		g.Step(frame)
		if !g.grounded {
			t.Fatalf("tick %d: climbing should stay grounded", i)
		}
		if g.y >= prevY {
			t.Fatalf("tick %d: y = %v, climbing should raise the player", i, g.y)
		}
	}
	if !almostEqual(g.y, 780) {
		t.Errorf("player y = %v after the climb, want 780", g.y)
	}

	// Walking back down sticks to the slope the whole way.
	for i := 0; i < 10; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionLeft)
		g.Step(frame)
		if !g.grounded {
			t.Fatalf("tick %d: descending should stay grounded", i)
		}
	}
	if !almostEqual(g.y, 792) {
		t.Errorf("player y = %v after the descent, want 792", g.y)
	}
}

func TestRampApexJumpClearsFirstPit(t *testing.T) {
	// The launch ramp trades the run requirement for height: jumping
	// from near its apex clears the pit at walking speed.
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 882 // foot center at 890, surface 744
	g.y = 744 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	for i := 0; i < 80; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		if i == 0 {
			frame.Set(core.ActionJump)
		}
		g.Step(frame)
		if i > 0 && g.grounded {
			break
		}
	}

	if !g.grounded {
		t.Fatal("player should have landed")
	}
	if g.x < 1000 {
		t.Errorf("player x = %v, the ramp jump should clear the pit", g.x)
	}
	if g.y != 820-g.cfg.Player.Height {
		t.Errorf("player y = %v, should stand on the far segment", g.y)
	}
	if g.state != StateRunning {
		t.Errorf("state = %s, the jump should not end the run", g.state)
	}
}

func TestRampWalkOffApexFallsIntoPit(t *testing.T) {
	// Strolling off the launch ramp without jumping drops the player
	// straight into the pit below.
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 882
	g.y = 744 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	for i := 0; i < 150; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		g.Step(frame)
		if g.state == StateGameOver {
			break
		}
	}

	if g.state != StateGameOver {
		t.Error("walking off the ramp apex should end in the pit")
	}
}

func TestHillWalkStaysGrounded(t *testing.T) {
	// The two-sided hill must be walkable over the top without ever
	// going airborne; the downhill side relies on the slope stick.
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 2092 // foot center at the hill base x=2100
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	minY := g.y
	for i := 0; i < 80; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		g.Step(frame)
		if !g.grounded {
			t.Fatalf("tick %d: hill walking should stay grounded", i)
		}
		if g.y < minY {
			minY = g.y
		}
	}

	if minY > 713 {
		t.Errorf("highest point y = %v, should have crossed near the 740 apex", minY)
	}
	// 80 ticks put the foot center at 2340, partway down the far slope.
	if !almostEqual(g.y, 740+80*110.0/130.0-28) {
		t.Errorf("player y = %v, should be partway down the far slope", g.y)
	}
	if g.x != 2332 {
		t.Errorf("player x = %v, want 2332 after 80 walking ticks", g.x)
	}

	// Rolling off the base onto flat ground settles within a few ticks.
	for i := 0; i < 20; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		g.Step(frame)
	}
	if !g.grounded || g.y != 820-g.cfg.Player.Height {
		t.Errorf("player should settle on flat ground past the hill, got y=%v grounded=%v", g.y, g.grounded)
	}
}

func TestDeathBelowView(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)

	// Hang the player over the first pit and let go.
	g.x = 940
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0

	sawGameOver := 0
	for i := 0; i < 60; i++ {
		result := g.Step(core.NewInputFrame())
		if hasEvent(result.Events, core.EventGameOver) {
			sawGameOver++
		}
		if g.state == StateGameOver {
			break
		}
	}

	if g.state != StateGameOver {
		t.Fatal("falling out of view should end the run")
	}
	if sawGameOver != 1 {
		t.Errorf("game over event fired %d times, want once", sawGameOver)
	}
	if g.camY != g.level.Height-ViewH {
		t.Errorf("camY = %v, the camera should have stayed at the level bottom", g.camY)
	}

	// Terminal state freezes the world until a restart.
	deathY := g.y
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.y != deathY {
		t.Errorf("player y moved from %v to %v after game over", deathY, g.y)
	}
}

func TestScoreIsFarthestDistance(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	for i := 0; i < 20; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		g.Step(frame)
	}
	if g.State().Score != 60 {
		t.Errorf("score = %d after 60 px of travel, want 60", g.State().Score)
	}

	// Backtracking never lowers the score.
	for i := 0; i < 10; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionLeft)
		g.Step(frame)
	}
	if g.State().Score != 60 {
		t.Errorf("score = %d after backtracking, should stay at the farthest point", g.State().Score)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	if g.camX != 0 {
		t.Fatalf("camX = %v at spawn, want 0", g.camX)
	}

	// Teleport ahead: the camera eases toward the new center.
	g.x = 1000
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	g.Step(core.NewInputFrame())
	if !almostEqual(g.camX, 60.8) {
		t.Errorf("camX = %v after one tick, want 60.8 (10%% of the way to 608)", g.camX)
	}

	prev := g.camX
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
		if g.camX < prev {
			t.Fatal("camera should never ease backwards while the target is ahead")
		}
		prev = g.camX
	}
	if g.camX > 608 {
		t.Errorf("camX = %v, should never overshoot the target 608", g.camX)
	}
}

func TestCameraVerticalModes(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

	// Unlocked: the camera eases toward the player's height.
	g := New()
	g.Reset(runtime)
	g.y = 100
	g.vy = 0
	g.Step(core.NewInputFrame())
	if !almostEqual(g.camY, 270) {
		t.Errorf("camY = %v after one tick toward a high player, want 270", g.camY)
	}

	// Locked: the camera pins to the level bottom regardless.
	g2 := New()
	g2.Reset(runtime)
	g2.cfg.Camera.LockVertical = true
	g2.y = 100
	g2.vy = 0
	g2.Step(core.NewInputFrame())
	if g2.camY != g2.level.Height-ViewH {
		t.Errorf("camY = %v with vertical lock, want %v", g2.camY, g2.level.Height-ViewH)
	}
}

func TestFootstepCadence(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.x = 400
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	steps := 0
	for i := 0; i < 36; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		result := g.Step(frame)
		if hasEvent(result.Events, core.EventFootstep) {
			steps++
		}
	}
	if steps != 3 {
		t.Errorf("heard %d footsteps over 36 walking ticks, want 3", steps)
	}

	// Standing still resets the cadence.
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	steps = 0
	for i := 0; i < 11; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		result := g.Step(frame)
		if hasEvent(result.Events, core.EventFootstep) {
			steps++
		}
	}
	if steps != 0 {
		t.Errorf("heard %d footsteps in 11 ticks after a stop, want none yet", steps)
	}
	frame := core.NewInputFrame()
	frame.Set(core.ActionRight)
	result := g.Step(frame)
	if !hasEvent(result.Events, core.EventFootstep) {
		t.Error("the 12th walking tick should land a footstep")
	}
}

func TestAttackPose(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	g.y = 820 - g.cfg.Player.Height
	g.vy = 0
	g.grounded = true

	frame := core.NewInputFrame()
	frame.Set(core.ActionAttack)
	g.Step(frame)

	if g.attackUntilMS != g.clockMS()+AttackMS {
		t.Errorf("attack window = %d, want %d", g.attackUntilMS, g.clockMS()+AttackMS)
	}

	// The swing is drawn one cell ahead of the body while active.
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if screen.Get(7, 19) != AttackChar {
		t.Errorf("cell (7,19) = %q, the swing should show ahead of the body", screen.Get(7, 19))
	}

	// After the window passes the swing disappears.
	for i := 0; i < 25; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	if screen.Get(7, 19) == AttackChar {
		t.Error("the swing should expire with the attack window")
	}
}

func TestGamePause(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)

	g.Step(core.NewInputFrame())
	tickBefore := g.tickCount
	yBefore := g.y

	frame := core.NewInputFrame()
	frame.Set(core.ActionPause)
	result := g.Step(frame)

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	if !hasEvent(result.Events, core.EventGamePause) {
		t.Error("pausing should emit a pause event")
	}

	// The world is frozen while paused.
	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.tickCount != tickBefore || g.y != yBefore {
		t.Errorf("paused game advanced: tick %d->%d y %v->%v", tickBefore, g.tickCount, yBefore, g.y)
	}

	// Unpause resumes the fall.
	frame = core.NewInputFrame()
	frame.Set(core.ActionPause)
	g.Step(frame)
	if g.State().Paused {
		t.Fatal("game should have resumed")
	}
	g.Step(core.NewInputFrame())
	if g.y == yBefore {
		t.Error("the world should move again after unpausing")
	}
}

func TestScreenTooSmall(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 30, ScreenH: 8, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)

	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.tickCount != 0 {
		t.Errorf("tick = %d, the simulation should be inert on a tiny screen", g.tickCount)
	}

	screen := core.NewScreen(30, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("render should show the size warning")
	}
}

func TestGameRender(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	g := New()
	g.Reset(runtime)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "DIST 0") {
		t.Errorf("HUD row = %q, should show the distance", screen.Row(0))
	}
	if screen.Get(0, 1) != '─' {
		t.Error("the HUD separator line should be drawn")
	}

	// Ground fills the bottom rows; the launch ramp rises on the right.
	if screen.Get(0, 21) != GroundChar || screen.Get(40, 22) != GroundChar {
		t.Error("the ground should fill the bottom of the view")
	}
	if screen.Get(79, 19) != RampChar {
		t.Errorf("cell (79,19) = %q, the ramp should be visible", screen.Get(79, 19))
	}

	// The player figure stands at the spawn column.
	if screen.Get(6, 18) != HeadChar {
		t.Errorf("cell (6,18) = %q, want the player head", screen.Get(6, 18))
	}
	if screen.Get(6, 20) != LegsIdleChar {
		t.Errorf("cell (6,20) = %q, want idle legs", screen.Get(6, 20))
	}
}

func TestSnapshot(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	g := New()
	g.Reset(runtime)

	for i := 0; i < 30; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		if i == 25 {
			frame.Set(core.ActionJump)
		}
		if i == 9 {
			frame.Set(core.ActionAttack)
		}
		g.Step(frame)
	}

	snap := g.Snapshot()
	if snap.Tick != 30 {
		t.Errorf("snapshot tick = %d, want 30", snap.Tick)
	}
	if snap.Grounded != 0 {
		t.Error("snapshot should capture the mid-jump airborne state")
	}
	if snap.MaxX != snapF(g.maxX) || snap.StartX != snapF(g.startX) {
		t.Error("snapshot should carry the course progress")
	}
	if snap.State != StateRunning {
		t.Errorf("snapshot state = %q, want %q", snap.State, StateRunning)
	}

	// Restoring into a fresh game reproduces the state bit for bit.
	g2 := New()
	g2.Reset(runtime)
	g2.ApplySnapshot(snap)

	snap2 := g2.Snapshot()
	if snap.Hash() != snap2.Hash() {
		t.Errorf("restored hash %d != original %d", snap2.Hash(), snap.Hash())
	}

	// Both games evolve identically from the restored state.
	for i := 0; i < 20; i++ {
		frame := core.NewInputFrame()
		frame.Set(core.ActionRight)
		g.Step(frame)
		g2.Step(frame)
	}
	h1 := g.Snapshot()
	h2 := g2.Snapshot()
	if h1.Hash() != h2.Hash() {
		t.Errorf("continuation diverged: %d vs %d", h1.Hash(), h2.Hash())
	}
	if !almostEqual(g.x, g2.x) || !almostEqual(g.y, g2.y) {
		t.Errorf("positions diverged: (%v,%v) vs (%v,%v)", g.x, g.y, g2.x, g2.y)
	}
}
