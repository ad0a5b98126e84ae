// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// DuelConfig contains all configuration for the Blast Duel game.
type DuelConfig struct {
	Arena    DuelArena    `yaml:"arena"`
	Ball     DuelBall     `yaml:"ball"`
	Paddles  DuelPaddles  `yaml:"paddles"`
	Bullets  DuelBullets  `yaml:"bullets"`
	Items    DuelItems    `yaml:"items"`
	AI       DuelAI       `yaml:"ai"`
	Timing   DuelTiming   `yaml:"timing"`
	Features DuelFeatures `yaml:"features"`
}

// DuelArena defines the logical playfield dimensions. The simulation runs
// in this coordinate space; the platform scales it to the terminal.
type DuelArena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DuelBall defines ball physics parameters.
type DuelBall struct {
	Size          float64 `yaml:"size"`
	SpeedX        float64 `yaml:"speed_x"`
	SpeedY        float64 `yaml:"speed_y"`
	SpinRange     float64 `yaml:"spin_range"`      // Full vy swing across a paddle face
	SpeedupPerHit float64 `yaml:"speedup_per_hit"` // Multiplier growth on each paddle hit
}

// DuelPaddles defines paddle geometry, movement and durability.
type DuelPaddles struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`       // Player paddle speed in px per tick
	EdgeMargin float64 `yaml:"edge_margin"` // Gap between paddle and arena edge
	Health     int     `yaml:"health"`      // Starting health per side
	HealthStep int     `yaml:"health_step"` // Health lost per miss
	HitPoints  int     `yaml:"hit_points"`  // Bullet hits the right paddle absorbs
}

// DuelBullets defines projectile parameters.
type DuelBullets struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`
	MaxAmmo    int     `yaml:"max_ammo"`
	StartAmmo  int     `yaml:"start_ammo"`
	CooldownMS int     `yaml:"cooldown_ms"`
	CullMargin float64 `yaml:"cull_margin"` // Extra distance past the arena before a bullet dies
}

// DuelItems defines pickup spawn and lifetime parameters.
type DuelItems struct {
	Size       float64 `yaml:"size"`
	SpawnX     float64 `yaml:"spawn_x"` // Fixed column near the player paddle
	SpawnMinMS int     `yaml:"spawn_min_ms"`
	SpawnMaxMS int     `yaml:"spawn_max_ms"`
	LifetimeMS int     `yaml:"lifetime_ms"`
	AmmoBonus  int     `yaml:"ammo_bonus"`
}

// DuelAI defines the CPU opponent's tracking behavior.
type DuelAI struct {
	RetargetEvery int     `yaml:"retarget_every"` // Recompute target every Nth tick
	ErrorMargin   float64 `yaml:"error_margin"`   // Max injected aim error in px
	DeadZone      float64 `yaml:"dead_zone"`      // No movement within this distance of target
	SpeedFactor   float64 `yaml:"speed_factor"`   // Fraction of the player paddle speed
}

// DuelTiming defines wall-clock durations for match choreography.
// The simulation converts these to tick counts at reset.
type DuelTiming struct {
	BlinkCycleMS int `yaml:"blink_cycle_ms"` // Paddle visibility toggle period after a miss
	BlinkTotalMS int `yaml:"blink_total_ms"` // Total length of the post-miss pause
	MessageMS    int `yaml:"message_ms"`     // How long transient HUD messages stay up
}

// DuelFeatures toggles optional subsystems. All are on by default; turning
// one off removes the subsystem without leaving a separate code path.
type DuelFeatures struct {
	Projectiles bool `yaml:"projectiles"`
	Items       bool `yaml:"items"`
	BlinkPause  bool `yaml:"blink_pause"`
}

// ScrollerConfig contains all configuration for the Side Scroller game.
type ScrollerConfig struct {
	Physics ScrollerPhysics `yaml:"physics"`
	Player  ScrollerPlayer  `yaml:"player"`
	Camera  ScrollerCamera  `yaml:"camera"`
}

// ScrollerPhysics defines physics parameters for the Side Scroller.
type ScrollerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	WalkSpeed    float64 `yaml:"walk_speed"`
	RunSpeed     float64 `yaml:"run_speed"`
}

// ScrollerPlayer defines the character's size and starting position.
type ScrollerPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// ScrollerCamera defines camera tracking behavior.
type ScrollerCamera struct {
	LerpFactor   float64 `yaml:"lerp_factor"`   // Per-tick interpolation toward the target
	LockVertical bool    `yaml:"lock_vertical"` // Keep the camera on a single horizontal plane
	KillMargin   float64 `yaml:"kill_margin"`   // Fall distance below the view that ends the run
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the given preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
