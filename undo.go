package readline

// Snapshot is the editor state captured around a text mutation.
type Snapshot struct {
	Cursor int
	Text   string
}

type undoEntry struct {
	before Snapshot
	after  Snapshot
}

// UndoHistory records (before, after) snapshot pairs of text mutations.
//
// Only pairs whose text differs are kept, so pure cursor motion never creates
// an entry. Pushing truncates everything past the current position; the
// history supports undo only.
type UndoHistory struct {
	entries []undoEntry
	pos     int
}

// Push records a mutation. Entries beyond the current position are dropped
// even when the pair itself is not recorded.
func (h *UndoHistory) Push(before, after Snapshot) {
	h.entries = h.entries[:h.pos]
	if before.Text != after.Text {
		h.entries = append(h.entries, undoEntry{before: before, after: after})
	}
	h.pos = len(h.entries)
}

// Empty reports whether there is nothing left to undo.
func (h *UndoHistory) Empty() bool {
	return h.pos == 0
}

// Pop steps back one entry and returns the snapshot taken before it.
// It returns false when the history is empty.
func (h *UndoHistory) Pop() (Snapshot, bool) {
	if h.Empty() {
		return Snapshot{}, false
	}
	h.pos--
	return h.entries[h.pos].before, true
}

// Len returns the number of entries that can still be undone.
func (h *UndoHistory) Len() int {
	return h.pos
}

// Reset drops all entries.
func (h *UndoHistory) Reset() {
	h.entries = nil
	h.pos = 0
}
