package readline

import "sort"

// Action identifies an editing operation a key can be bound to.
type Action int

// Action constants for every operation in the default key table.
const (
	ActionNone Action = iota
	ActionForwardChar
	ActionBackwardChar
	ActionForwardWord
	ActionBackwardWord
	ActionBeginningOfLine
	ActionEndOfLine
	ActionPreviousLine
	ActionNextLine
	ActionDeleteChar
	ActionBackwardDeleteChar
	ActionBackwardKillLine
	ActionForwardKillLine
	ActionKillWholeLine
	ActionKillWord
	ActionBackwardKillWord
	ActionTransposeChars
	ActionClearScreen
	ActionPaste
	ActionUndo
	ActionInsertNewline
)

var actionNames = map[Action]string{
	ActionNone:               "none",
	ActionForwardChar:        "forward-char",
	ActionBackwardChar:       "backward-char",
	ActionForwardWord:        "forward-word",
	ActionBackwardWord:       "backward-word",
	ActionBeginningOfLine:    "beginning-of-line",
	ActionEndOfLine:          "end-of-line",
	ActionPreviousLine:       "previous-line",
	ActionNextLine:           "next-line",
	ActionDeleteChar:         "delete-char",
	ActionBackwardDeleteChar: "backward-delete-char",
	ActionBackwardKillLine:   "backward-kill-line",
	ActionForwardKillLine:    "forward-kill-line",
	ActionKillWholeLine:      "kill-whole-line",
	ActionKillWord:           "kill-word",
	ActionBackwardKillWord:   "backward-kill-word",
	ActionTransposeChars:     "transpose-chars",
	ActionClearScreen:        "clear-screen",
	ActionPaste:              "paste",
	ActionUndo:               "undo",
	ActionInsertNewline:      "insert-newline",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Binding is the entry a key resolves to.
//
// PassThrough bindings are cursor motions that leave the key unconsumed when
// the cursor could not move, so the host can apply its own handling (focus
// changes, history navigation) at the buffer edges.
type Binding struct {
	Action      Action
	PassThrough bool
}

// KeyMap is the static table from key names to bindings. It is built once
// by NewDefaultKeyMap and only read afterwards.
type KeyMap struct {
	bindings map[string]Binding
}

// NewDefaultKeyMap returns the default emacs-style key table.
//
// Default key bindings:
//   - ctrl f / ctrl b: forward / backward char
//   - right / left: forward / backward char, passed through at the edges
//   - up / ctrl p, down / ctrl n: previous / next row, passed through at the
//     first / last row
//   - ctrl a / home, ctrl e / end: beginning / end of line
//   - meta f / shift right, meta b / shift left: forward / backward word
//   - ctrl d / delete, ctrl h / backspace: delete char forward / backward
//   - ctrl u, ctrl k, meta x: kill to line start, to line end, whole line
//   - meta d, ctrl w / meta backspace: kill word forward / backward
//   - ctrl t: transpose chars
//   - ctrl l: clear the buffer
//   - ctrl y: paste the last killed text
//   - ctrl _: undo
//   - enter: insert a line break (multiline buffers only)
func NewDefaultKeyMap(multiline bool) *KeyMap {
	km := &KeyMap{bindings: map[string]Binding{
		"ctrl f":         {Action: ActionForwardChar},
		"ctrl b":         {Action: ActionBackwardChar},
		"ctrl a":         {Action: ActionBeginningOfLine},
		"ctrl e":         {Action: ActionEndOfLine},
		"home":           {Action: ActionBeginningOfLine},
		"end":            {Action: ActionEndOfLine},
		"meta f":         {Action: ActionForwardWord},
		"meta b":         {Action: ActionBackwardWord},
		"shift right":    {Action: ActionForwardWord},
		"shift left":     {Action: ActionBackwardWord},
		"ctrl d":         {Action: ActionDeleteChar},
		"ctrl h":         {Action: ActionBackwardDeleteChar},
		"delete":         {Action: ActionDeleteChar},
		"backspace":      {Action: ActionBackwardDeleteChar},
		"ctrl u":         {Action: ActionBackwardKillLine},
		"ctrl k":         {Action: ActionForwardKillLine},
		"meta x":         {Action: ActionKillWholeLine},
		"meta d":         {Action: ActionKillWord},
		"ctrl w":         {Action: ActionBackwardKillWord},
		"meta backspace": {Action: ActionBackwardKillWord},
		"ctrl t":         {Action: ActionTransposeChars},
		"ctrl l":         {Action: ActionClearScreen},
		"ctrl y":         {Action: ActionPaste},
		"ctrl _":         {Action: ActionUndo},

		"right":  {Action: ActionForwardChar, PassThrough: true},
		"left":   {Action: ActionBackwardChar, PassThrough: true},
		"up":     {Action: ActionPreviousLine, PassThrough: true},
		"ctrl p": {Action: ActionPreviousLine, PassThrough: true},
		"down":   {Action: ActionNextLine, PassThrough: true},
		"ctrl n": {Action: ActionNextLine, PassThrough: true},
	}}
	if multiline {
		km.bindings["enter"] = Binding{Action: ActionInsertNewline}
	}
	return km
}

// Lookup returns the binding for key.
func (km *KeyMap) Lookup(key string) (Binding, bool) {
	if km == nil || km.bindings == nil {
		return Binding{}, false
	}
	b, ok := km.bindings[key]
	return b, ok
}

// Keys returns every bound key name in sorted order.
func (km *KeyMap) Keys() []string {
	if km == nil {
		return nil
	}
	keys := make([]string, 0, len(km.bindings))
	for k := range km.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
