package readline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned when a settings document has invalid values.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the file form of the editor and prompt configuration.
//
// Example document:
//
//	word_chars: "abcdefghijklmnopqrstuvwxyz0123456789_-"
//	multiline: true
//	max_chars: 256
//	completion:
//	  key: tab
//	  reverse_key: shift tab
//	  delims: " \t\n;|"
//	theme: dark
//	history:
//	  enabled: true
//	  max_entries: 500
//	  file: ~/.myapp_history
type Settings struct {
	WordChars  string              `yaml:"word_chars"`
	Multiline  bool                `yaml:"multiline"`
	MaxChars   int                 `yaml:"max_chars"`
	Width      int                 `yaml:"width"`
	Completion *CompletionSettings `yaml:"completion"`
	Theme      string              `yaml:"theme"`
	History    *HistoryConfig      `yaml:"history"`
}

// CompletionSettings configures completion keys and delimiters.
type CompletionSettings struct {
	Key        string  `yaml:"key"`
	ReverseKey string  `yaml:"reverse_key"`
	Delims     *string `yaml:"delims"`
}

// LoadSettings decodes a YAML settings document. Unknown fields are
// rejected. An empty document yields zero Settings.
func LoadSettings(r io.Reader) (*Settings, error) {
	var s Settings
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadSettingsFile reads settings from a YAML file. The path may start with
// "~/" for the home directory.
func LoadSettingsFile(path string) (*Settings, error) {
	expanded, err := expandHistoryPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(expanded) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()
	return LoadSettings(f)
}

func (s *Settings) validate() error {
	if s.MaxChars < 0 {
		return fmt.Errorf("%w: max_chars must not be negative, got %d", ErrInvalidSettings, s.MaxChars)
	}
	if s.Width < 0 {
		return fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidSettings, s.Width)
	}
	if s.Theme != "" {
		if _, ok := ThemeByName(s.Theme); !ok {
			return fmt.Errorf("%w: unknown theme %q", ErrInvalidSettings, s.Theme)
		}
	}
	if s.History != nil && s.History.MaxEntries < 0 {
		return fmt.Errorf("%w: history.max_entries must not be negative", ErrInvalidSettings)
	}
	return nil
}

// Options converts the settings to Editor options. Zero values keep the
// defaults.
func (s *Settings) Options() []Option {
	var opts []Option
	if s.WordChars != "" {
		opts = append(opts, WithWordChars(s.WordChars))
	}
	if s.Multiline {
		opts = append(opts, WithMultiline(true))
	}
	if s.MaxChars > 0 {
		opts = append(opts, WithMaxChars(s.MaxChars))
	}
	if s.Width > 0 {
		opts = append(opts, WithWidth(s.Width))
	}
	if c := s.Completion; c != nil {
		if c.Key != "" || c.ReverseKey != "" {
			opts = append(opts, WithCompletionKeys(c.Key, c.ReverseKey))
		}
		if c.Delims != nil {
			opts = append(opts, WithCompleterDelims(*c.Delims))
		}
	}
	return opts
}

// PromptOptions converts the settings to Prompt options, including the
// editor options.
func (s *Settings) PromptOptions() []PromptOption {
	opts := []PromptOption{WithEditorOptions(s.Options()...)}
	if theme, ok := ThemeByName(s.Theme); ok && s.Theme != "" {
		opts = append(opts, WithColorScheme(theme))
	}
	if s.History != nil {
		opts = append(opts, WithHistory(s.History))
	}
	return opts
}
