// Package match defines identity and outcome types for game matches.
// The duel runs as Player vs CPU today; the types keep the door open for
// session-to-session matches over SSH without changing game code.
package match

// PlayerID identifies a participant in a match.
// Player1 is always the local human player, Player2 is the CPU (or a
// remote player in a future online mode).
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player"
	case Player2:
		return "CPU"
	default:
		return "None"
	}
}

// Mode defines how a game match is configured.
type Mode int

const (
	// ModeSolo is a single-player game (the side scroller).
	ModeSolo Mode = iota

	// ModeVsCPU is player vs computer (the duel).
	ModeVsCPU
)

// String returns a human-readable name for the match mode.
func (m Mode) String() string {
	switch m {
	case ModeSolo:
		return "Solo"
	case ModeVsCPU:
		return "vs CPU"
	default:
		return "Unknown"
	}
}

// EndReason describes why a match ended.
type EndReason int

const (
	// EndReasonCompleted means the match ran to a natural conclusion.
	EndReasonCompleted EndReason = iota

	// EndReasonForfeit means a player quit mid-match.
	EndReasonForfeit
)

// String returns a human-readable name for the end reason.
func (r EndReason) String() string {
	switch r {
	case EndReasonCompleted:
		return "completed"
	case EndReasonForfeit:
		return "forfeit"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a completed match.
// The platform records results for games that report a winner.
type Result struct {
	GameID string
	Mode   Mode
	Reason EndReason
	Winner PlayerID
	Score1 int
	Score2 int
	Hits   int // confirmed projectile hits landed by Player1
	Ticks  uint64
}

// Reporter is implemented by games that can report a match outcome.
// The platform checks for it at game over to record versus results.
type Reporter interface {
	MatchResult() Result
}
