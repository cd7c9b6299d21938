package readline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultKeyMap(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap(false)
	tests := []struct {
		key  string
		want Binding
	}{
		{"ctrl f", Binding{Action: ActionForwardChar}},
		{"right", Binding{Action: ActionForwardChar, PassThrough: true}},
		{"ctrl a", Binding{Action: ActionBeginningOfLine}},
		{"end", Binding{Action: ActionEndOfLine}},
		{"shift left", Binding{Action: ActionBackwardWord}},
		{"ctrl p", Binding{Action: ActionPreviousLine, PassThrough: true}},
		{"down", Binding{Action: ActionNextLine, PassThrough: true}},
		{"meta x", Binding{Action: ActionKillWholeLine}},
		{"meta backspace", Binding{Action: ActionBackwardKillWord}},
		{"ctrl l", Binding{Action: ActionClearScreen}},
		{"ctrl _", Binding{Action: ActionUndo}},
	}
	for _, tt := range tests {
		b, ok := km.Lookup(tt.key)
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, b, tt.key)
	}

	_, ok := km.Lookup("enter")
	assert.False(t, ok, "enter is unbound in single-line buffers")
	_, ok = km.Lookup("tab")
	assert.False(t, ok)

	multi := NewDefaultKeyMap(true)
	b, ok := multi.Lookup("enter")
	require.True(t, ok)
	assert.Equal(t, ActionInsertNewline, b.Action)
	assert.Len(t, multi.Keys(), len(km.Keys())+1)
}

func TestKeyMap_Keys(t *testing.T) {
	t.Parallel()

	keys := NewDefaultKeyMap(false).Keys()
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "ctrl y")

	var nilMap *KeyMap
	assert.Nil(t, nilMap.Keys())
	_, ok := nilMap.Lookup("ctrl a")
	assert.False(t, ok)
}

func TestAction_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "backward-kill-word", ActionBackwardKillWord.String())
	assert.Equal(t, "undo", ActionUndo.String())
	assert.Equal(t, "unknown", Action(999).String())
}

func TestKeypressConsumed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		pos       int
		multiline bool
		key       string
		consumed  bool
		wantText  string
		wantPos   int
	}{
		{name: "printable", text: "ab", pos: 1, key: "x", consumed: true, wantText: "axb", wantPos: 2},
		{name: "wide character", text: "", pos: 0, key: "世", consumed: true, wantText: "世", wantPos: 1},
		{name: "unbound named key", text: "ab", pos: 1, key: "f5", consumed: false, wantText: "ab", wantPos: 1},
		{name: "enter single-line", text: "ab", pos: 1, key: "enter", consumed: false, wantText: "ab", wantPos: 1},
		{name: "enter multiline", text: "ab", pos: 1, multiline: true, key: "enter", consumed: true, wantText: "a\nb", wantPos: 2},
		{name: "right inside", text: "ab", pos: 1, key: "right", consumed: true, wantText: "ab", wantPos: 2},
		{name: "right at end", text: "ab", pos: 2, key: "right", consumed: false, wantText: "ab", wantPos: 2},
		{name: "left at start", text: "ab", pos: 0, key: "left", consumed: false, wantText: "ab", wantPos: 0},
		{name: "ctrl b at start", text: "ab", pos: 0, key: "ctrl b", consumed: true, wantText: "ab", wantPos: 0},
		{name: "up on first row", text: "a\nb", pos: 1, key: "up", consumed: false, wantText: "a\nb", wantPos: 1},
		{name: "up on second row", text: "a\nb", pos: 3, key: "up", consumed: true, wantText: "a\nb", wantPos: 1},
		{name: "ctrl n on last row", text: "a\nb", pos: 3, key: "ctrl n", consumed: false, wantText: "a\nb", wantPos: 3},
		{name: "down on first row", text: "a\nb", pos: 0, key: "down", consumed: true, wantText: "a\nb", wantPos: 2},
		{name: "bound edit at edge", text: "ab", pos: 2, key: "delete", consumed: true, wantText: "ab", wantPos: 2},
		{name: "space", text: "ab", pos: 2, key: " ", consumed: true, wantText: "ab ", wantPos: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ed := newTestEditor(tt.text, tt.pos, WithMultiline(tt.multiline))
			assert.Equal(t, tt.consumed, ed.Keypress(80, tt.key))
			assert.Equal(t, tt.wantText, ed.Text())
			assert.Equal(t, tt.wantPos, ed.Cursor())
		})
	}
}

func TestKeypressWidth(t *testing.T) {
	t.Parallel()

	ed := newTestEditor("abcdef", 5)
	assert.Equal(t, DefaultWidth, ed.Width())

	ed.Keypress(4, "up")
	assert.Equal(t, 4, ed.Width())
	assert.Equal(t, 1, ed.Cursor(), "row 1 column 1 moves to row 0 column 1")

	ed.Keypress(0, "ctrl e")
	assert.Equal(t, 4, ed.Width(), "zero width keeps the previous one")
}

func TestIsValidKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want bool
	}{
		{"a", true},
		{" ", true},
		{"é", true},
		{"世", true},
		{"e\u0301", false},
		{"tab", false},
		{"ctrl a", false},
		{"\t", false},
		{"\x1b", false},
		{"", false},
		{"ab", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidKey(tt.key), "%q", tt.key)
	}
}
