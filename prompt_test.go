package readline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPrompt creates a prompt reading input from a mock terminal.
func newTestPrompt(t *testing.T, input string, options ...PromptOption) (*Prompt, *mockTerminal) {
	t.Helper()

	config := PromptConfig{Prefix: "$ "}
	for _, option := range options {
		option(&config)
	}
	terminal := newMockTerminal(input)
	p, err := newPromptWithTerminal(config, terminal)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p, terminal
}

func TestNewPromptWithTerminal(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompt(t, "")
	require.NotNil(t, p.config.HistoryConfig)
	assert.Greater(t, p.config.HistoryConfig.MaxEntries, 0)
	assert.Same(t, ThemeDefault, p.config.ColorScheme)
	assert.NotNil(t, p.Editor())
}

func TestPromptRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		options []PromptOption
		want    string
		wantErr error
	}{
		{name: "simple line", input: "hello\r", want: "hello"},
		{name: "line feed submits", input: "hello\n", want: "hello"},
		{name: "empty line", input: "\r", want: ""},
		{name: "backspace", input: "helo\x7f\x7flo\r", want: "hello"},
		{name: "kill word", input: "hello world\x17\r", want: "hello "},
		{name: "kill and paste", input: "one two\x17\x01\x19 \r", want: "two one "},
		{name: "arrow editing", input: "ac\x1b[Db\r", want: "abc"},
		{name: "undo", input: "abc\x17\x1f\r", want: "abc"},
		{name: "ctrl c", input: "abc\x03", wantErr: ErrInterrupted},
		{name: "ctrl d on empty buffer", input: "\x04", wantErr: ErrEOF},
		{name: "ctrl d deletes otherwise", input: "ab\x01\x04\r", want: "b"},
		{name: "input ends", input: "abc", wantErr: ErrEOF},
		{
			name:    "completion",
			input:   "git st\t\t\r",
			options: []PromptOption{WithEditorOptions(WithCompleter(NewPrefixCompleter([]string{"status", "stash"})))},
			want:    "git stash",
		},
		{
			name:    "multiline",
			input:   "a\rb\x1b\r",
			options: []PromptOption{WithEditorOptions(WithMultiline(true))},
			want:    "a\nb",
		},
		{
			name:    "max chars",
			input:   "abcdef\r",
			options: []PromptOption{WithEditorOptions(WithMaxChars(3))},
			want:    "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, terminal := newTestPrompt(t, tt.input, tt.options...)
			got, err := p.Run()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.False(t, terminal.rawMode, "raw mode is restored")
		})
	}
}

func TestPromptInterruptOutput(t *testing.T) {
	t.Parallel()

	p, terminal := newTestPrompt(t, "\x03")
	_, err := p.Run()
	require.ErrorIs(t, err, ErrInterrupted)
	assert.Contains(t, terminal.output.String(), "^C")
}

func TestPromptRunWithCancelledContext(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompt(t, "hello\r")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.RunWithContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPromptHistoryNavigation(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompt(t, "draft\x1b[A\x1b[A\x1b[B\r", WithMemoryHistory(10))
	p.SetHistory([]string{"first", "second"})

	got, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, "second", got)
	assert.Equal(t, []string{"first", "second"}, p.History(), "repeat of the newest entry is not added")
}

func TestPromptHistoryReturnsToDraft(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompt(t, "draft\x1b[A\x1b[B\r", WithMemoryHistory(10))
	p.AddHistory("old")

	got, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, "draft", got)
	assert.Equal(t, []string{"old", "draft"}, p.History())

	p.ClearHistory()
	assert.Empty(t, p.History())
}

func TestPromptMultilineUpMovesCursorFirst(t *testing.T) {
	t.Parallel()

	// The first up moves from row 1 to row 0; the second reaches the history.
	p, _ := newTestPrompt(t, "a\rb\x1b[Ax\x1b[A\x1b\r",
		WithMemoryHistory(10),
		WithEditorOptions(WithMultiline(true)),
	)
	p.AddHistory("old")

	got, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, "old", got)
}

func TestPromptHistoryPersistence(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "history")
	config := &HistoryConfig{Enabled: true, File: file}

	terminal := newMockTerminal("ls -la\r")
	p, err := newPromptWithTerminal(PromptConfig{Prefix: "$ ", HistoryConfig: config}, terminal)
	require.NoError(t, err)
	_, err = p.Run()
	require.NoError(t, err)
	require.NoError(t, p.Close())
	assert.True(t, terminal.closed)
	assert.Contains(t, terminal.output.String(), "\x1b[?25h")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "ls -la\n", string(data))

	reopened, _ := newTestPrompt(t, "\x1b[A\r", WithHistory(config))
	got, err := reopened.Run()
	require.NoError(t, err)
	assert.Equal(t, "ls -la", got)
}

func TestPromptRunsRepeatedly(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompt(t, "one\r\x1ftwo\r", WithMemoryHistory(10))

	first, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, "one", first)

	second, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, "two", second, "undo history does not leak between runs")
}

func TestPromptEditorWidth(t *testing.T) {
	t.Parallel()

	p, terminal := newTestPrompt(t, "")
	terminal.terminalSize = [2]int{10, 24}
	assert.Equal(t, 8, p.editorWidth())

	p.SetPrefix("a very long prefix ")
	assert.Equal(t, 1, p.editorWidth())
}

func TestPromptSetTheme(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompt(t, "")
	p.SetTheme(ThemeLight)
	assert.Same(t, ThemeLight, p.renderer.colorScheme)

	p.SetTheme(nil)
	assert.Same(t, ThemeDefault, p.config.ColorScheme)
	assert.Same(t, ThemeDefault, p.renderer.colorScheme)
}
