package readline

// replace swaps text[from:to] for ins.
func (e *Editor) replace(from, to int, ins []rune) {
	out := make([]rune, 0, len(e.text)-(to-from)+len(ins))
	out = append(out, e.text[:from]...)
	out = append(out, ins...)
	out = append(out, e.text[to:]...)
	e.setRunes(out)
}

// DeleteChar removes the character under the cursor.
func (e *Editor) DeleteChar() {
	if e.cursor < len(e.text) {
		e.replace(e.cursor, e.cursor+1, nil)
	}
}

// BackwardDeleteChar removes the character before the cursor.
func (e *Editor) BackwardDeleteChar() {
	if e.cursor > 0 {
		e.cursor--
		e.replace(e.cursor, e.cursor+1, nil)
	}
}

// roomFor returns how many of n characters fit under the character limit.
func (e *Editor) roomFor(n int) int {
	if e.maxChars <= 0 {
		return n
	}
	return clamp(e.maxChars-len(e.text), 0, n)
}

// InsertText inserts s at the cursor and moves the cursor past it. Input
// beyond the character limit is dropped.
func (e *Editor) InsertText(s string) {
	ins := []rune(s)
	ins = ins[:e.roomFor(len(ins))]
	if len(ins) == 0 {
		return
	}
	pos := e.cursor
	e.replace(pos, pos, ins)
	e.cursor = pos + len(ins)
}

// InsertNewline inserts a line break when the buffer is multiline.
func (e *Editor) InsertNewline() {
	if e.multiline {
		e.InsertText("\n")
	}
}

// ClearScreen empties the buffer.
func (e *Editor) ClearScreen() {
	e.cursor = 0
	e.setRunes(nil)
}

// TransposeChars swaps the two characters ending one position after the
// cursor and leaves the cursor after them. At the start of a row the first
// two characters are swapped; at the end of a row the last two. Rows with
// fewer than two characters are left unchanged.
func (e *Editor) TransposeChars() {
	rows := layoutRows(e.text, e.width)
	r := rows[rowOf(rows, e.cursor)]
	target := r.start + max(2, e.cursor-r.start+1)
	if target > r.end {
		target = r.end
	}
	e.cursor = target
	if target-r.start < 2 {
		return
	}
	out := append([]rune{}, e.text...)
	out[target-2], out[target-1] = out[target-1], out[target-2]
	e.setRunes(out)
}

// BackwardKillLine kills from the start of the logical line to the cursor.
func (e *Editor) BackwardKillLine() {
	start := e.lineStart(e.cursor)
	e.kills.Append(string(e.text[start:e.cursor]))
	e.replace(start, e.cursor, nil)
	e.cursor = start
}

// ForwardKillLine kills from the cursor to the end of the logical line.
func (e *Editor) ForwardKillLine() {
	end := e.lineEnd(e.cursor)
	e.kills.Append(string(e.text[e.cursor:end]))
	e.replace(e.cursor, end, nil)
}

// KillWholeLine kills the logical line around the cursor, keeping its line
// break. Both halves end up as a single kill buffer entry.
func (e *Editor) KillWholeLine() {
	n := e.kills.Len()
	e.BackwardKillLine()
	e.ForwardKillLine()
	if e.kills.Len()-n == 2 {
		e.kills.coalesce(2)
	}
}

// BackwardKillWord kills from the start of the previous word to the cursor.
func (e *Editor) BackwardKillWord() {
	end := e.cursor
	start := e.words.PrevBoundary(e.text, end)
	e.kills.Append(string(e.text[start:end]))
	e.replace(start, end, nil)
	e.cursor = start
}

// KillWord kills from the cursor to the next word boundary. The cursor
// stays where the deletion started.
func (e *Editor) KillWord() {
	start := e.cursor
	end := e.words.NextBoundary(e.text, start)
	e.kills.Append(string(e.text[start:end]))
	e.replace(start, end, nil)
	e.cursor = start
}

// Paste reinserts the most recently killed text at the cursor, truncated to
// the character limit.
func (e *Editor) Paste() {
	text, ok := e.kills.Last()
	if !ok {
		return
	}
	e.InsertText(text)
}
