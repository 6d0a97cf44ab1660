package render

import (
	"fmt"
	"strings"
)

// Markdown renders sheets as Markdown.
type Markdown struct{}

func init() {
	Register("markdown", Markdown{})
	Register("moinmoin", MoinMoin{})
	Register("ansi", ANSI{})
}

// Header returns "# text" with one '#' per level.
func (Markdown) Header(text string, level int) string {
	return fmt.Sprintf("%s %s", strings.Repeat("#", level), text)
}

// Emphasize wraps text in one, two or three asterisks.
func (Markdown) Emphasize(text string, weight Weight) string {
	return repeatWrap(text, "*", map[Weight]int{Italic: 1, Bold: 2, BoldItalic: 3}[weight])
}

// TitleLevel is 1.
func (Markdown) TitleLevel() int { return 1 }

// KVEnd uses a trailing double space as a hard line break.
func (Markdown) KVEnd() string { return "  \n" }

// MoinMoin renders sheets as MoinMoin wiki markup.
type MoinMoin struct{}

// Header returns "= text =" with one '=' per level on each side.
func (MoinMoin) Header(text string, level int) string {
	l := strings.Repeat("=", level)
	return fmt.Sprintf("%s %s %s", l, text, l)
}

// Emphasize wraps text in two, three or five single quotes.
func (MoinMoin) Emphasize(text string, weight Weight) string {
	return repeatWrap(text, "'", map[Weight]int{Italic: 2, Bold: 3, BoldItalic: 5}[weight])
}

// TitleLevel is 2; MoinMoin reserves level 1 for the page name.
func (MoinMoin) TitleLevel() int { return 2 }

// KVEnd separates key/value lines with a blank line so each is its own paragraph.
func (MoinMoin) KVEnd() string { return "\n\n" }

func repeatWrap(text, mark string, n int) string {
	l := strings.Repeat(mark, n)
	return l + text + l
}
