// Package render provides the text-markup engines that character sheets are
// written through. Engines know nothing about game rules; they only format
// headers, emphasis and key/value lines.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Weight selects an emphasis style.
type Weight int

// Emphasis weights.
const (
	Italic Weight = iota
	Bold
	BoldItalic
)

// Markup is the per-backend formatting vocabulary.
type Markup interface {
	// Header renders a header line (without trailing newline) at the given level, 1 being the largest.
	Header(text string, level int) string
	// Emphasize wraps text in the markup for weight.
	Emphasize(text string, weight Weight) string
	// TitleLevel is the header level used for the document title.
	TitleLevel() int
	// KVEnd terminates every key/value line.
	KVEnd() string
}

// Emphasizer is the subset of Engine needed to build inline fragments.
type Emphasizer interface {
	Italic(text string) string
	BoldItalic(text string) string
}

// Engine is the capability set a character sheet is rendered through.
type Engine interface {
	Emphasizer
	Bold(text string) string
	Title(text string)
	Heading(text string)
	Subheading(text string)
	Text(text string)
	KV(key, value string)
	Aspect(key, text string)
}

// Writer is an Engine that writes a Markup's output to an io.Writer.
//
// The first write error is retained and all later writes become no-ops; check Err when done.
type Writer struct {
	m   Markup
	out io.Writer
	err error
}

// NewWriter returns a Writer emitting m's markup to out.
//
// Precondition: m and out must be non-nil.
func NewWriter(m Markup, out io.Writer) *Writer {
	return &Writer{m: m, out: out}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

// Italic returns text in italics.
func (w *Writer) Italic(text string) string {
	return w.m.Emphasize(text, Italic)
}

// Bold returns text in bold.
func (w *Writer) Bold(text string) string {
	return w.m.Emphasize(text, Bold)
}

// BoldItalic returns text in bold italics.
func (w *Writer) BoldItalic(text string) string {
	return w.m.Emphasize(text, BoldItalic)
}

// Header writes a header at an explicit level.
func (w *Writer) Header(text string, level int) {
	w.write(w.m.Header(text, level) + "\n")
}

// Title writes the document title.
func (w *Writer) Title(text string) {
	w.Header(text, w.m.TitleLevel())
}

// Heading writes a section heading one level below the title.
func (w *Writer) Heading(text string) {
	w.Header(text, w.m.TitleLevel()+1)
}

// Subheading writes a heading two levels below the title.
func (w *Writer) Subheading(text string) {
	w.Header(text, w.m.TitleLevel()+2)
}

// Text writes a line of plain text.
func (w *Writer) Text(text string) {
	w.write(text + "\n")
}

// KV writes a bold "key:" tag followed by value.
func (w *Writer) KV(key, value string) {
	w.write(w.Bold(key+":") + " " + value + w.m.KVEnd())
}

// Aspect writes a key/value line whose value is an aspect, in bold italics.
func (w *Writer) Aspect(key, text string) {
	w.KV(key, w.BoldItalic(text))
}

// ErrUnknownEngine is returned by New for unregistered names.
var ErrUnknownEngine = errors.New("unknown render engine")

var registry = map[string]Markup{}

// Register makes m available under name. Registering a name twice replaces the earlier entry.
//
// Precondition: name must be non-empty and m non-nil.
func Register(name string, m Markup) {
	registry[strings.ToLower(name)] = m
}

// Lookup returns the Markup registered under name.
func Lookup(name string) (Markup, bool) {
	m, ok := registry[strings.ToLower(name)]
	return m, ok
}

// New returns a Writer for the engine registered under name.
//
// Postcondition: Returns a Writer, or an error wrapping ErrUnknownEngine.
func New(name string, out io.Writer) (*Writer, error) {
	m, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownEngine, name, strings.Join(Names(), ", "))
	}
	return NewWriter(m, out), nil
}

// Names returns all registered engine names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
