package readline

import "strings"

// Completer returns the candidate with the given index for a text fragment.
//
// The state counts candidates from 0 when cycling forward; negative states
// count from the end (-1 is the last candidate) when cycling backward. The
// completer reports false when there is no candidate for the state. It must
// not modify the editor it completes for.
type Completer func(fragment string, state int) (candidate string, ok bool)

// completionState is the decomposition of the buffer taken when a completion
// cycle starts. none marks the "no selection" stop showing the original
// fragment.
type completionState struct {
	prefix []rune
	infix  []rune
	suffix []rune
	index  int
	none   bool

	// buffer state the last step left behind
	shown  string
	cursor int
}

// current reports whether the buffer still holds what the last completion
// step produced. Any other change ends the cycle.
func (e *Editor) current() *completionState {
	st := e.completion
	if st == nil || st.cursor != e.cursor || st.shown != string(e.text) {
		e.completion = nil
		return nil
	}
	return st
}

// EnableAutocomplete registers completer with the forward and reverse
// completion keys. Any cycle in progress is dropped; a nil completer turns
// completion off.
func (e *Editor) EnableAutocomplete(completer Completer, key, reverseKey string) {
	e.completer = completer
	e.completionKey = key
	e.completionRev = reverseKey
	e.completion = nil
}

// SetCompleter swaps the completion callback. It takes effect on the next
// completion cycle.
func (e *Editor) SetCompleter(completer Completer) {
	e.completer = completer
	e.completion = nil
}

// SetCompleterDelims changes the delimiters that start a completion segment.
func (e *Editor) SetCompleterDelims(delims string) {
	e.completerDelims = delims
}

// Completing reports whether a completion cycle is in progress.
func (e *Editor) Completing() bool {
	return e.current() != nil
}

// Complete performs one completion step, forward or backward, as if the
// completion key had been pressed. It is a no-op without a completer.
func (e *Editor) Complete(forward bool) {
	if e.completer == nil {
		return
	}
	e.captureUndo(func() { e.complete(forward) })
}

// decompose splits the buffer around the cursor into the text up to and
// including the last delimiter, the fragment being completed and the text
// after the cursor.
func (e *Editor) decompose(forward bool) *completionState {
	before := e.text[:e.cursor]
	split := 0
	if e.completerDelims != "" {
		for i := len(before) - 1; i >= 0; i-- {
			if strings.ContainsRune(e.completerDelims, before[i]) {
				split = i + 1
				break
			}
		}
	}
	st := &completionState{
		prefix: append([]rune{}, before[:split]...),
		infix:  append([]rune{}, before[split:]...),
		suffix: append([]rune{}, e.text[e.cursor:]...),
	}
	if !forward {
		st.index = -1
	}
	return st
}

// step advances the cycle. Moving backward from the first candidate or
// forward from the last one stops at "no selection"; the next step re-enters
// from the opposite edge.
func (st *completionState) step(forward bool) {
	switch {
	case st.none:
		st.none = false
		if forward {
			st.index = 0
		} else {
			st.index = -1
		}
	case st.index == 0 && !forward, st.index == -1 && forward:
		st.none = true
	case forward:
		st.index++
	default:
		st.index--
	}
}

func (e *Editor) complete(forward bool) {
	st := e.current()
	if st == nil {
		st = e.decompose(forward)
	} else {
		st.step(forward)
	}

	candidate := st.infix
	cycling := true
	if !st.none {
		if c, ok := e.completer(string(st.infix), st.index); ok && c != "" {
			candidate = []rune(c)
		} else {
			cycling = false
		}
	}
	if e.maxChars > 0 {
		room := max(0, e.maxChars-len(st.prefix)-len(st.suffix))
		candidate = candidate[:min(len(candidate), room)]
	}

	out := make([]rune, 0, len(st.prefix)+len(candidate)+len(st.suffix))
	out = append(out, st.prefix...)
	out = append(out, candidate...)
	out = append(out, st.suffix...)
	e.setRunes(out)
	e.SetCursor(len(st.prefix) + len(candidate))

	e.completion = nil
	if cycling {
		st.shown, st.cursor = string(e.text), e.cursor
		e.completion = st
	}
}
