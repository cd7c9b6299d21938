package readline

import (
	"bytes"
	"io"
)

// mockTerminal implements terminalInterface with scripted input and a
// captured output buffer, for tests.
type mockTerminal struct {
	input        []rune
	inputPos     int
	rawMode      bool
	closed       bool
	terminalSize [2]int
	output       bytes.Buffer
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Output() io.Writer {
	return &m.output
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}
