package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

//go:embed defaults/scroller.yaml
var defaultScrollerYAML []byte

// DefaultDuelConfig returns the default Blast Duel configuration.
// Values mirror defaults/duel.yaml and act as a last-resort fallback.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Arena: DuelArena{
			Width:  800,
			Height: 600,
		},
		Ball: DuelBall{
			Size:          10,
			SpeedX:        5,
			SpeedY:        3,
			SpinRange:     8,
			SpeedupPerHit: 1.1,
		},
		Paddles: DuelPaddles{
			Width:      10,
			Height:     100,
			Speed:      8,
			EdgeMargin: 1,
			Health:     100,
			HealthStep: 10,
			HitPoints:  5,
		},
		Bullets: DuelBullets{
			Size:       15,
			Speed:      25,
			MaxAmmo:    8,
			StartAmmo:  8,
			CooldownMS: 300,
			CullMargin: 50,
		},
		Items: DuelItems{
			Size:       20,
			SpawnX:     10,
			SpawnMinMS: 12000,
			SpawnMaxMS: 15000,
			LifetimeMS: 10000,
			AmmoBonus:  2,
		},
		AI: DuelAI{
			RetargetEvery: 4,
			ErrorMargin:   15,
			DeadZone:      5,
			SpeedFactor:   0.85,
		},
		Timing: DuelTiming{
			BlinkCycleMS: 200,
			BlinkTotalMS: 2000,
			MessageMS:    1000,
		},
		Features: DuelFeatures{
			Projectiles: true,
			Items:       true,
			BlinkPause:  true,
		},
	}
}

// DefaultScrollerConfig returns the default Side Scroller configuration.
func DefaultScrollerConfig() ScrollerConfig {
	return ScrollerConfig{
		Physics: ScrollerPhysics{
			Gravity:      0.3,
			JumpImpulse:  -6,
			MaxFallSpeed: 10,
			WalkSpeed:    3,
			RunSpeed:     5,
		},
		Player: ScrollerPlayer{
			Width:  16,
			Height: 28,
			StartX: 60,
			StartY: 740,
		},
		Camera: ScrollerCamera{
			LerpFactor:   0.1,
			LockVertical: false,
			KillMargin:   100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "duel":
		return defaultDuelYAML
	case "scroller":
		return defaultScrollerYAML
	default:
		return nil
	}
}
