package readline

import "io"

// csiKeys maps CSI sequences (after "ESC [") to key names.
var csiKeys = map[string]string{
	"A":    "up",
	"B":    "down",
	"C":    "right",
	"D":    "left",
	"H":    "home",
	"F":    "end",
	"Z":    "shift tab",
	"1~":   "home",
	"7~":   "home",
	"4~":   "end",
	"8~":   "end",
	"3~":   "delete",
	"1;2A": "shift up",
	"1;2B": "shift down",
	"1;2C": "shift right",
	"1;2D": "shift left",
	"1;3C": "meta right",
	"1;3D": "meta left",
	"1;5C": "ctrl right",
	"1;5D": "ctrl left",
}

// ss3Keys maps SS3 sequences (after "ESC O") to key names.
var ss3Keys = map[rune]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
}

// readKey reads one key from raw terminal input and returns its name:
// printable characters as themselves, control bytes as "ctrl x", escape
// sequences as named keys and ESC-prefixed keys as "meta x".
func readKey(in io.RuneReader) (string, error) {
	r, _, err := in.ReadRune()
	if err != nil {
		return "", err
	}
	if r == '\x1b' {
		return readEscapeKey(in)
	}
	return runeKeyName(r), nil
}

func runeKeyName(r rune) string {
	switch r {
	case '\r', '\n':
		return "enter"
	case '\t':
		return "tab"
	case 0x7f:
		return "backspace"
	case 0x00:
		return "ctrl space"
	case 0x1f:
		return "ctrl _"
	}
	if r >= 0x01 && r <= 0x1a {
		return "ctrl " + string('a'+r-1)
	}
	return string(r)
}

func readEscapeKey(in io.RuneReader) (string, error) {
	r, _, err := in.ReadRune()
	if err == io.EOF {
		return "esc", nil
	}
	if err != nil {
		return "", err
	}

	switch r {
	case '[':
		seq, err := readCSI(in)
		if err != nil {
			return "", err
		}
		if name, ok := csiKeys[seq]; ok {
			return name, nil
		}
		return "esc [" + seq, nil
	case 'O':
		r2, _, err := in.ReadRune()
		if err != nil {
			return "", err
		}
		if name, ok := ss3Keys[r2]; ok {
			return name, nil
		}
		return "esc O" + string(r2), nil
	case '\x1b':
		return "esc", nil
	}
	return "meta " + runeKeyName(r), nil
}

// readCSI reads the parameter bytes and final byte of a CSI sequence. At
// most 10 runes are read so garbage input cannot stall the prompt.
func readCSI(in io.RuneReader) (string, error) {
	seq := make([]rune, 0, 10)
	for range 10 {
		r, _, err := in.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)
		if r >= 0x40 && r <= 0x7e {
			break
		}
	}
	return string(seq), nil
}
