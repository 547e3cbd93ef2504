package core

// Color is a hex RGB color such as "#EDC22E".
// The empty Color leaves the terminal default in place.
type Color string

// ColorDefault is the terminal's own color.
const ColorDefault Color = ""

// Colors shared by screens outside the board.
const (
	ColorBackground Color = "#FAF8EF"
	ColorBoard      Color = "#BBADA0"
	ColorEmptyCell  Color = "#CCC0B4"
	ColorTextDark   Color = "#776E65"
	ColorTextLight  Color = "#F9F6F2"
	ColorHighlight  Color = "#EDC22E"
)
