package readline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
)

// Common errors
var (
	// ErrEOF is returned when the user presses Ctrl+D on an empty buffer or
	// input ends
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
)

// PromptConfig holds the configuration for a Prompt.
type PromptConfig struct {
	Prefix        string         // Prompt prefix (e.g., "$ ")
	ColorScheme   *ColorScheme   // Color scheme (nil for default)
	HistoryConfig *HistoryConfig // History configuration (nil for default)
	EditorOptions []Option       // Options for the underlying Editor
}

// PromptOption represents a configuration option for a Prompt.
type PromptOption func(*PromptConfig)

// WithColorScheme sets the color scheme.
func WithColorScheme(colorScheme *ColorScheme) PromptOption {
	return func(c *PromptConfig) {
		c.ColorScheme = colorScheme
	}
}

// WithHistory configures the history of submitted lines.
//
// Example:
//
//	readline.NewPrompt("$ ", readline.WithHistory(&readline.HistoryConfig{
//		Enabled:    true,
//		MaxEntries: 100,
//		File:       "~/.myapp_history",
//	}))
func WithHistory(config *HistoryConfig) PromptOption {
	return func(c *PromptConfig) {
		c.HistoryConfig = config
	}
}

// WithMemoryHistory enables memory-only history with at most maxEntries
// entries.
func WithMemoryHistory(maxEntries int) PromptOption {
	return func(c *PromptConfig) {
		c.HistoryConfig = &HistoryConfig{Enabled: true, MaxEntries: maxEntries}
	}
}

// WithEditorOptions passes options through to the prompt's Editor.
func WithEditorOptions(options ...Option) PromptOption {
	return func(c *PromptConfig) {
		c.EditorOptions = append(c.EditorOptions, options...)
	}
}

// Prompt is a terminal host for an Editor: it reads keys from the terminal,
// feeds them to the editor and renders the result.
//
// Keys the editor leaves unconsumed get the prompt's own handling:
//   - enter (or meta enter in multiline mode): submit the buffer
//   - ctrl c: return ErrInterrupted
//   - up / down on the first / last row: walk the history
//
// Ctrl+D on an empty buffer returns ErrEOF before it reaches the editor.
type Prompt struct {
	config   PromptConfig
	output   io.Writer
	editor   *Editor
	history  *HistoryManager
	renderer *renderer
	terminal terminalInterface
}

// NewPrompt creates a prompt on the controlling terminal.
//
// Example:
//
//	p, err := readline.NewPrompt("$ ",
//		readline.WithMemoryHistory(100),
//		readline.WithEditorOptions(
//			readline.WithCompleter(readline.NewPrefixCompleter([]string{"status", "stash"})),
//		),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	line, err := p.Run()
func NewPrompt(prefix string, options ...PromptOption) (*Prompt, error) {
	config := PromptConfig{Prefix: prefix}
	for _, option := range options {
		option(&config)
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal: %w", err)
	}

	p, err := newPromptWithTerminal(config, terminal)
	if err != nil {
		_ = terminal.Close()
		return nil, err
	}
	return p, nil
}

func newPromptWithTerminal(config PromptConfig, terminal terminalInterface) (*Prompt, error) {
	if config.HistoryConfig == nil {
		config.HistoryConfig = DefaultHistoryConfig()
	}
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}

	history := NewHistoryManager(config.HistoryConfig)
	if err := history.Load(); err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	output := terminal.Output()
	return &Prompt{
		config:   config,
		output:   output,
		editor:   New(config.EditorOptions...),
		history:  history,
		renderer: newRenderer(output, config.ColorScheme),
		terminal: terminal,
	}, nil
}

// Editor returns the editing engine behind the prompt, for example to swap
// the completer between runs.
func (p *Prompt) Editor() *Editor {
	return p.editor
}

// Run reads one line. It is RunWithContext with a background context.
func (p *Prompt) Run() (string, error) {
	return p.RunWithContext(context.Background())
}

// RunWithContext reads one line until it is submitted, interrupted or the
// context is done. The context is checked between keys.
func (p *Prompt) RunWithContext(ctx context.Context) (string, error) {
	if err := p.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := p.terminal.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
		}
	}()

	p.editor.Reset()
	p.editor.SetWidth(p.editorWidth())
	p.history.ResetNavigation()
	if err := p.render(); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		key, err := readKey(p.terminal)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if key == "ctrl d" && p.editor.Text() == "" {
			return "", ErrEOF
		}

		if !p.editor.Keypress(p.editorWidth(), key) {
			switch key {
			case "enter", "meta enter":
				result := p.editor.Text()
				p.history.Add(result)
				if err := p.renderer.finish(); err != nil {
					return "", fmt.Errorf("failed to render: %w", err)
				}
				return result, nil
			case "ctrl c":
				fmt.Fprint(p.output, "^C\r\n")
				return "", ErrInterrupted
			case "up":
				if entry, ok := p.history.Previous(p.editor.Text()); ok {
					p.setBuffer(entry)
				}
			case "down":
				if entry, ok := p.history.Next(); ok {
					p.setBuffer(entry)
				}
			}
		}

		if err := p.render(); err != nil {
			return "", fmt.Errorf("failed to render: %w", err)
		}
	}
}

// Close saves the history and releases the terminal. It is safe to call
// Close multiple times.
func (p *Prompt) Close() error {
	if p.output != nil {
		fmt.Fprint(p.output, "\x1b[?25h") // Show cursor
	}
	if p.history != nil {
		if err := p.history.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", err)
		}
	}
	if p.terminal != nil {
		return p.terminal.Close()
	}
	return nil
}

// History returns the submitted lines, oldest first.
func (p *Prompt) History() []string {
	return p.history.Entries()
}

// AddHistory appends a line to the history.
func (p *Prompt) AddHistory(line string) {
	p.history.Add(line)
}

// SetHistory replaces the history.
func (p *Prompt) SetHistory(lines []string) {
	p.history.Set(lines)
}

// ClearHistory drops the history.
func (p *Prompt) ClearHistory() {
	p.history.Clear()
}

// SetPrefix changes the prompt prefix.
func (p *Prompt) SetPrefix(prefix string) {
	p.config.Prefix = prefix
}

// SetTheme changes the color scheme.
func (p *Prompt) SetTheme(theme *ColorScheme) {
	if theme == nil {
		theme = ThemeDefault
	}
	p.config.ColorScheme = theme
	p.renderer.colorScheme = theme
}

func (p *Prompt) setBuffer(text string) {
	p.editor.SetText(text)
	p.editor.SetCursor(len([]rune(text)))
}

// editorWidth is the terminal width left of the prefix.
func (p *Prompt) editorWidth() int {
	w, _, _ := p.terminal.Size()
	if w <= 0 {
		w = 80
	}
	return max(1, w-runewidth.StringWidth(p.config.Prefix))
}

func (p *Prompt) render() error {
	return p.renderer.render(p.config.Prefix, p.editor)
}
