package core

// Color is the foreground of a screen cell. Hosts decide the actual terminal color.
type Color uint8

// Base colors.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorGray
)

// Board roles. Renderers pick by role so a theme change stays in one place.
const (
	ColorCardBack   = ColorGray         // face-down card border and pattern
	ColorCardFace   = ColorYellow       // border of a revealed, unmatched card
	ColorCardSymbol = ColorBrightYellow // symbol on a revealed card
	ColorMatched    = ColorGreen        // matched card and the win banner
	ColorCursor     = ColorCyan
	ColorTitle      = ColorBrightYellow
	ColorNotice     = ColorWhite // pause banner
)
