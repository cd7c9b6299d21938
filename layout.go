package readline

import "github.com/mattn/go-runewidth"

// displayRow is one visual row of the buffer: the runes text[start:end].
// A soft row was broken by wrapping and continues on the next row; a hard
// row ends at a line break or at the end of the buffer.
type displayRow struct {
	start int
	end   int
	soft  bool
}

// maxCursor is the right-most cursor offset that is displayed on the row.
// An offset equal to the end of a soft row belongs to the following row.
func (r displayRow) maxCursor() int {
	if r.soft {
		return r.end - 1
	}
	return r.end
}

// layoutRows splits text into display rows for the given column width.
// Wide runes occupy two columns. A width <= 0 disables wrapping.
func layoutRows(text []rune, width int) []displayRow {
	var rows []displayRow
	start, col := 0, 0
	for i, r := range text {
		if r == '\n' {
			rows = append(rows, displayRow{start: start, end: i})
			start, col = i+1, 0
			continue
		}
		w := runewidth.RuneWidth(r)
		if width > 0 && col > 0 && col+w > width {
			rows = append(rows, displayRow{start: start, end: i, soft: true})
			start, col = i, 0
		}
		col += w
	}
	return append(rows, displayRow{start: start, end: len(text)})
}

// rowOf returns the index of the row displaying offset pos.
func rowOf(rows []displayRow, pos int) int {
	for i, r := range rows {
		if pos >= r.start && pos <= r.maxCursor() {
			return i
		}
	}
	return len(rows) - 1
}

func columnWidth(text []rune) int {
	w := 0
	for _, r := range text {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// offsetAt maps display column x on row r to a rune offset. Columns past
// the end of the row land on the row's last cursor position.
func offsetAt(text []rune, r displayRow, x int) int {
	pos, acc := r.start, 0
	for pos < r.maxCursor() {
		w := runewidth.RuneWidth(text[pos])
		if acc+w > x {
			break
		}
		acc += w
		pos++
	}
	return pos
}

// CursorCoords returns the cursor's display column and row for the current
// width.
func (e *Editor) CursorCoords() (col, row int) {
	rows := layoutRows(e.text, e.width)
	row = rowOf(rows, e.cursor)
	return columnWidth(e.text[rows[row].start:e.cursor]), row
}

// RenderCursor returns the cursor position a host should draw, with the
// column clamped into the visible width.
func (e *Editor) RenderCursor() (col, row int) {
	col, row = e.CursorCoords()
	if e.width > 0 && col > e.width-1 {
		col = e.width - 1
	}
	return col, row
}

// moveToCoords places the cursor at display column x of row y. It reports
// false, leaving the cursor untouched, when row y does not exist.
func (e *Editor) moveToCoords(x, y int) bool {
	rows := layoutRows(e.text, e.width)
	if y < 0 || y >= len(rows) {
		return false
	}
	e.SetCursor(offsetAt(e.text, rows[y], x))
	return true
}
