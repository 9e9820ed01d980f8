package display

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 80

// Output is the sink for all player-visible text. Line wrapping, flushing,
// and formatting policy live behind it; the world core only ever calls
// Emit.
type Output interface {
	Emit(text string)
}

// Writer is an Output that word-wraps each emitted block and writes it to
// an io.Writer followed by a newline.
type Writer struct {
	w     io.Writer
	width int
}

// NewWriter creates a Writer wrapping at the given width. A non-positive
// width falls back to DefaultWidth.
func NewWriter(w io.Writer, width int) *Writer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Writer{w: w, width: width}
}

func (o *Writer) Emit(text string) {
	// Write errors are not actionable here; the sink owns the stream.
	_, _ = fmt.Fprintln(o.w, wordwrap.String(text, o.width))
}

var upper = cases.Upper(language.English)

// Capitalize returns s with its first rune uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return upper.String(string(r)) + s[size:]
}
