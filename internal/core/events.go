package core

// Event is a discrete named trigger emitted by a game during a tick.
// Events are fire-and-forget: the platform forwards them to collaborators
// (the audio sink) and never feeds anything back into the simulation.
type Event int

const (
	EventNone Event = iota
	EventPaddleHit
	EventWallBounce
	EventScore
	EventGameStart
	EventGamePause
	EventGameOver
	EventAmmoEmpty
	EventItemSpawned
	EventItemCollected
	EventBulletFired
	EventBulletImpact
	EventPaddleDamaged
	EventFootstep
)

// String returns a stable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventScore:
		return "score"
	case EventGameStart:
		return "game_start"
	case EventGamePause:
		return "game_pause"
	case EventGameOver:
		return "game_over"
	case EventAmmoEmpty:
		return "ammo_empty"
	case EventItemSpawned:
		return "item_spawned"
	case EventItemCollected:
		return "item_collected"
	case EventBulletFired:
		return "bullet_fired"
	case EventBulletImpact:
		return "bullet_impact"
	case EventPaddleDamaged:
		return "paddle_damaged"
	case EventFootstep:
		return "footstep"
	default:
		return "unknown"
	}
}
