package readline

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// IsValidKey reports whether key is printable input that should be inserted
// into the buffer: a single wide character, or a single rune with a code
// point of at least 32. Named keys such as "ctrl a" or "tab" are rejected.
func IsValidKey(key string) bool {
	if uniseg.GraphemeClusterCount(key) != 1 {
		return false
	}
	if runewidth.StringWidth(key) == 2 {
		return true
	}
	runes := []rune(key)
	return len(runes) == 1 && runes[0] >= 32
}
