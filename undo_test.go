package readline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoHistory(t *testing.T) {
	t.Parallel()

	t.Run("unchanged text is not recorded", func(t *testing.T) {
		t.Parallel()
		var h UndoHistory
		h.Push(Snapshot{Cursor: 0, Text: "ab"}, Snapshot{Cursor: 2, Text: "ab"})
		assert.True(t, h.Empty())
		_, ok := h.Pop()
		assert.False(t, ok)
	})

	t.Run("pop returns before snapshots newest first", func(t *testing.T) {
		t.Parallel()
		var h UndoHistory
		h.Push(Snapshot{Cursor: 0, Text: ""}, Snapshot{Cursor: 1, Text: "a"})
		h.Push(Snapshot{Cursor: 1, Text: "a"}, Snapshot{Cursor: 2, Text: "ab"})
		require.Equal(t, 2, h.Len())

		s, ok := h.Pop()
		require.True(t, ok)
		assert.Equal(t, Snapshot{Cursor: 1, Text: "a"}, s)

		s, ok = h.Pop()
		require.True(t, ok)
		assert.Equal(t, Snapshot{Cursor: 0, Text: ""}, s)
		assert.True(t, h.Empty())
	})

	t.Run("push after pop drops undone entries", func(t *testing.T) {
		t.Parallel()
		var h UndoHistory
		h.Push(Snapshot{Text: ""}, Snapshot{Text: "a"})
		h.Push(Snapshot{Text: "a"}, Snapshot{Text: "ab"})
		_, _ = h.Pop()
		h.Push(Snapshot{Text: "a"}, Snapshot{Text: "ax"})
		assert.Equal(t, 2, h.Len())

		s, _ := h.Pop()
		assert.Equal(t, "a", s.Text)
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		var h UndoHistory
		h.Push(Snapshot{Text: ""}, Snapshot{Text: "a"})
		h.Reset()
		assert.True(t, h.Empty())
		assert.Equal(t, 0, h.Len())
	})
}
