package readline

// DefaultWordChars is the word-character set used when none is configured:
// ASCII letters, digits and underscore.
const DefaultWordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// WordSegmenter classifies runes as word or non-word characters and finds
// the boundaries between word runs and non-word runs.
//
// Word motion and word kill operations are built on it:
//   - NextBoundary moves over the current word run (if any) and then over the
//     following non-word run, landing at the start of the next word.
//   - PrevBoundary moves back over non-word runes and then over the preceding
//     word run, landing at the start of that word.
type WordSegmenter struct {
	chars map[rune]struct{}
}

// NewWordSegmenter creates a segmenter treating every rune of wordChars as a
// word character. An empty string selects DefaultWordChars.
func NewWordSegmenter(wordChars string) *WordSegmenter {
	if wordChars == "" {
		wordChars = DefaultWordChars
	}
	ws := &WordSegmenter{chars: make(map[rune]struct{}, len(wordChars))}
	for _, r := range wordChars {
		ws.chars[r] = struct{}{}
	}
	return ws
}

// IsWordChar reports whether r belongs to the word-character set.
func (ws *WordSegmenter) IsWordChar(r rune) bool {
	_, ok := ws.chars[r]
	return ok
}

// NextBoundary returns the end of the first non-word run at or after pos,
// skipping the word run pos sits in. It returns len(text) when no such run
// exists.
func (ws *WordSegmenter) NextBoundary(text []rune, pos int) int {
	pos = clamp(pos, 0, len(text))
	for pos < len(text) && ws.IsWordChar(text[pos]) {
		pos++
	}
	for pos < len(text) && !ws.IsWordChar(text[pos]) {
		pos++
	}
	return pos
}

// PrevBoundary returns the start of the nearest word run ending at or before
// pos. It returns 0 when no word character precedes pos.
func (ws *WordSegmenter) PrevBoundary(text []rune, pos int) int {
	pos = clamp(pos, 0, len(text))
	for pos > 0 && !ws.IsWordChar(text[pos-1]) {
		pos--
	}
	for pos > 0 && ws.IsWordChar(text[pos-1]) {
		pos--
	}
	return pos
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
