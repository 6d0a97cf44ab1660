package render

// ANSI escape codes used by the terminal engine.
const (
	Reset     = "\033[0m"
	BoldCode  = "\033[1m"
	ItalicSGR = "\033[3m"
	Underline = "\033[4m"

	Cyan         = "\033[36m"
	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
)

// headerColors is indexed by header level; deeper levels reuse the last entry.
var headerColors = []string{BrightYellow, BrightYellow, BrightCyan, Cyan}

// ANSI renders sheets for a color terminal.
type ANSI struct{}

// Header returns text colored by level, underlined at the title level.
func (ANSI) Header(text string, level int) string {
	if level < 0 {
		level = 0
	}
	if level >= len(headerColors) {
		level = len(headerColors) - 1
	}
	if level <= 1 {
		return Colorize(headerColors[level]+BoldCode+Underline, text)
	}
	return Colorize(headerColors[level]+BoldCode, text)
}

// Emphasize wraps text in SGR italic, bold, or both.
func (ANSI) Emphasize(text string, weight Weight) string {
	switch weight {
	case Bold:
		return Colorize(BoldCode, text)
	case BoldItalic:
		return Colorize(BoldCode+ItalicSGR, text)
	default:
		return Colorize(ItalicSGR, text)
	}
}

// TitleLevel is 1.
func (ANSI) TitleLevel() int { return 1 }

// KVEnd is a plain newline.
func (ANSI) KVEnd() string { return "\n" }

// Colorize wraps text with the given ANSI code and a reset suffix.
//
// Precondition: color must be a valid ANSI escape sequence.
// Postcondition: Returns text wrapped with the color code and Reset.
func Colorize(color, text string) string {
	return color + text + Reset
}
