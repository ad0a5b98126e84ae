package core

// Color selects the foreground color of a screen cell. The palette is
// the small set the games actually draw with; the TUI layer maps each
// entry to an ANSI 256-color style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightGreen
	ColorBrightCyan
	ColorBrightWhite
)
