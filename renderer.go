package readline

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderer draws the prompt prefix and the editor buffer, wrapped into
// display rows, and places the terminal cursor at the editor's cursor hint.
//
// Every frame starts by moving back to the first row of the previous frame
// and clearing to the end of the screen, so frames of any height replace each
// other cleanly. Continuation rows are indented by the prefix width.
type renderer struct {
	output      io.Writer
	colorScheme *ColorScheme
	cursorRow   int // Row of the terminal cursor within the last frame
	rows        int // Rows drawn in the last frame
}

func newRenderer(output io.Writer, colorScheme *ColorScheme) *renderer {
	if colorScheme == nil {
		colorScheme = ThemeDefault
	}
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
	}
}

// render draws one frame for the editor state.
func (r *renderer) render(prefix string, ed *Editor) error {
	var b strings.Builder

	if r.cursorRow > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", r.cursorRow)
	}
	b.WriteString("\r\x1b[J")

	text := []rune(ed.Text())
	rows := layoutRows(text, ed.Width())
	prefixWidth := runewidth.StringWidth(prefix)
	for i, row := range rows {
		if i == 0 {
			b.WriteString(r.colorScheme.Prefix.ToANSI())
			b.WriteString(prefix)
		} else {
			b.WriteString("\r\n")
			b.WriteString(r.colorScheme.Margin.ToANSI())
			b.WriteString(strings.Repeat(" ", prefixWidth))
		}
		b.WriteString(Reset())
		b.WriteString(r.colorScheme.Input.ToANSI())
		b.WriteString(string(text[row.start:row.end]))
		b.WriteString(Reset())
	}

	col, row := ed.RenderCursor()
	if up := len(rows) - 1 - row; up > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", up)
	}
	b.WriteString("\r")
	if x := prefixWidth + col; x > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", x)
	}

	if _, err := io.WriteString(r.output, b.String()); err != nil {
		return err
	}
	r.cursorRow = row
	r.rows = len(rows)
	return nil
}

// finish moves the cursor below the last frame so following output starts
// on a fresh line.
func (r *renderer) finish() error {
	var b strings.Builder
	if down := r.rows - 1 - r.cursorRow; down > 0 {
		fmt.Fprintf(&b, "\x1b[%dB", down)
	}
	b.WriteString("\r\n")
	r.cursorRow, r.rows = 0, 0
	_, err := io.WriteString(r.output, b.String())
	return err
}
