package readline

// ForwardChar moves the cursor one character right and reports whether it
// moved.
func (e *Editor) ForwardChar() bool {
	if e.cursor < len(e.text) {
		e.cursor++
		return true
	}
	return false
}

// BackwardChar moves the cursor one character left and reports whether it
// moved.
func (e *Editor) BackwardChar() bool {
	if e.cursor > 0 {
		e.cursor--
		return true
	}
	return false
}

// ForwardWord moves past the current word and the separators after it.
func (e *Editor) ForwardWord() {
	e.cursor = e.words.NextBoundary(e.text, e.cursor)
}

// BackwardWord moves to the start of the previous word, or to 0.
func (e *Editor) BackwardWord() {
	e.cursor = e.words.PrevBoundary(e.text, e.cursor)
}

// lineStart returns the offset just after the last line break before pos.
func (e *Editor) lineStart(pos int) int {
	for pos > 0 && e.text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset of the first line break at or after pos.
func (e *Editor) lineEnd(pos int) int {
	for pos < len(e.text) && e.text[pos] != '\n' {
		pos++
	}
	return pos
}

// BeginningOfLine moves to the start of the logical line. When the cursor is
// already at the start of a line it moves to the start of the previous one,
// so repeated presses walk upwards.
func (e *Editor) BeginningOfLine() {
	start := e.lineStart(e.cursor)
	if start == e.cursor && e.cursor > 0 {
		start = e.lineStart(e.cursor - 1)
	}
	e.cursor = start
}

// EndOfLine moves to the end of the logical line. When the cursor sits on a
// line break it first steps over it.
func (e *Editor) EndOfLine() {
	pos := e.cursor
	if pos < len(e.text) && e.text[pos] == '\n' {
		pos++
	}
	e.cursor = e.lineEnd(pos)
}

// PreviousLine moves the cursor one display row up, keeping the column where
// possible. It reports false on the first row.
func (e *Editor) PreviousLine() bool {
	x, y := e.CursorCoords()
	return e.moveToCoords(x, y-1)
}

// NextLine moves the cursor one display row down, keeping the column where
// possible. It reports false on the last row.
func (e *Editor) NextLine() bool {
	x, y := e.CursorCoords()
	return e.moveToCoords(x, y+1)
}
