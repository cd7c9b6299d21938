package readline

import "strings"

// KillBuffer holds killed text spans in the order they were killed.
// Paste always reinserts the most recent span. Empty spans are never stored.
type KillBuffer struct {
	spans []string
}

// Append stores span unless it is empty.
func (kb *KillBuffer) Append(span string) {
	if span == "" {
		return
	}
	kb.spans = append(kb.spans, span)
}

// Last returns the most recently killed span.
func (kb *KillBuffer) Last() (string, bool) {
	if len(kb.spans) == 0 {
		return "", false
	}
	return kb.spans[len(kb.spans)-1], true
}

// Len returns the number of stored spans.
func (kb *KillBuffer) Len() int {
	return len(kb.spans)
}

// Entries returns a copy of all spans, oldest first.
func (kb *KillBuffer) Entries() []string {
	return append([]string{}, kb.spans...)
}

// coalesce joins the last n spans into a single one.
func (kb *KillBuffer) coalesce(n int) {
	if n < 2 || n > len(kb.spans) {
		return
	}
	start := len(kb.spans) - n
	joined := strings.Join(kb.spans[start:], "")
	kb.spans = append(kb.spans[:start], joined)
}
