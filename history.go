package readline

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HistoryConfig configures the history of submitted lines.
//
// File path supports multiple formats:
//   - Empty string: memory-only history (no persistence)
//   - Absolute path: "/home/user/.app_history"
//   - Home directory: "~/.app_history"
//   - Relative path: "./app_history" (converted to absolute)
type HistoryConfig struct {
	Enabled     bool   `yaml:"enabled"`       // Enable/disable history
	MaxEntries  int    `yaml:"max_entries"`   // Entries kept in memory (default: 1000)
	File        string `yaml:"file"`          // Persistence file (empty = memory only)
	MaxFileSize int64  `yaml:"max_file_size"` // Bytes before rotation (default: 1MB)
	MaxBackups  int    `yaml:"max_backups"`   // Rotated files kept (default: 3)
}

// DefaultHistoryConfig returns an enabled, memory-only history configuration.
func DefaultHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		Enabled:     true,
		MaxEntries:  1000,
		MaxFileSize: 1024 * 1024,
		MaxBackups:  3,
	}
}

// GetDefaultHistoryFile returns $XDG_CONFIG_HOME/readline/history, falling
// back to ~/.config/readline/history.
func GetDefaultHistoryFile() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "readline", "history")
}

// HistoryManager keeps submitted lines, walks through them for up/down
// navigation and persists them to a file.
//
// Entries may span several lines; in the file every entry is written on one
// line with backslashes and line breaks escaped.
type HistoryManager struct {
	config  *HistoryConfig
	entries []string

	// navigation state: pos == len(entries) means the line being edited
	pos     int
	pending string
}

// NewHistoryManager creates a history manager, filling in defaults for
// unset limits.
func NewHistoryManager(config *HistoryConfig) *HistoryManager {
	if config == nil {
		config = DefaultHistoryConfig()
	}
	c := *config
	if c.MaxEntries <= 0 {
		c.MaxEntries = 1000
	}
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 1024 * 1024
	}
	if c.MaxBackups < 0 {
		c.MaxBackups = 3
	}
	if c.File != "" {
		if absPath, err := expandHistoryPath(c.File); err == nil {
			c.File = absPath
		}
	}
	return &HistoryManager{config: &c}
}

// IsEnabled returns whether history is enabled.
func (hm *HistoryManager) IsEnabled() bool {
	return hm.config.Enabled
}

// Entries returns a copy of the history, oldest first.
func (hm *HistoryManager) Entries() []string {
	if !hm.config.Enabled {
		return []string{}
	}
	return append([]string{}, hm.entries...)
}

// Add appends an entry, skipping empty entries and repeats of the newest
// one, and resets navigation.
func (hm *HistoryManager) Add(entry string) {
	defer hm.ResetNavigation()
	if !hm.config.Enabled || entry == "" {
		return
	}
	if n := len(hm.entries); n > 0 && hm.entries[n-1] == entry {
		return
	}
	hm.entries = append(hm.entries, entry)
	hm.trim()
}

// Set replaces the history.
func (hm *HistoryManager) Set(entries []string) {
	if !hm.config.Enabled {
		return
	}
	hm.entries = append([]string{}, entries...)
	hm.trim()
	hm.ResetNavigation()
}

// Clear drops every entry.
func (hm *HistoryManager) Clear() {
	hm.entries = nil
	hm.ResetNavigation()
}

func (hm *HistoryManager) trim() {
	if over := len(hm.entries) - hm.config.MaxEntries; over > 0 {
		hm.entries = hm.entries[over:]
	}
}

// ResetNavigation moves the navigation position back past the newest entry.
func (hm *HistoryManager) ResetNavigation() {
	hm.pos = len(hm.entries)
	hm.pending = ""
}

// Previous steps to the next older entry. current is the text being edited;
// it is remembered when navigation starts so Next can bring it back.
func (hm *HistoryManager) Previous(current string) (string, bool) {
	if !hm.config.Enabled || hm.pos == 0 {
		return "", false
	}
	if hm.pos == len(hm.entries) {
		hm.pending = current
	}
	hm.pos--
	return hm.entries[hm.pos], true
}

// Next steps to the next newer entry, ending at the text that was being
// edited when navigation started.
func (hm *HistoryManager) Next() (string, bool) {
	if !hm.config.Enabled || hm.pos >= len(hm.entries) {
		return "", false
	}
	hm.pos++
	if hm.pos == len(hm.entries) {
		return hm.pending, true
	}
	return hm.entries[hm.pos], true
}

var (
	historyEscaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`)
	historyUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n")
)

// Load reads the history file, if one is configured and exists.
func (hm *HistoryManager) Load() error {
	if !hm.config.Enabled || hm.config.File == "" {
		return nil
	}

	file, err := os.Open(hm.config.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			entries = append(entries, historyUnescaper.Replace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	hm.entries = entries
	hm.trim()
	hm.ResetNavigation()
	return nil
}

// Save writes the history file, rotating it first when it grew past
// MaxFileSize.
func (hm *HistoryManager) Save() error {
	if !hm.config.Enabled || hm.config.File == "" {
		return nil
	}

	if err := hm.rotateIfNeeded(); err != nil {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}

	if dir := filepath.Dir(hm.config.File); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	if err := hm.writeEntries(hm.entries); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

func (hm *HistoryManager) writeEntries(entries []string) error {
	file, err := os.Create(hm.config.File)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, historyEscaper.Replace(entry)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (hm *HistoryManager) rotateIfNeeded() error {
	info, err := os.Stat(hm.config.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < hm.config.MaxFileSize {
		return nil
	}
	return hm.rotate()
}

// rotate shifts file.N to file.N+1, moves the current file to file.1 and
// keeps the newer half of the entries (all of them when fewer than 100).
func (hm *HistoryManager) rotate() error {
	file := hm.config.File
	if hm.config.MaxBackups == 0 {
		if err := os.Truncate(file, 0); err != nil {
			return err
		}
	} else {
		oldest := file + "." + strconv.Itoa(hm.config.MaxBackups)
		if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove oldest backup: %w", err)
		}
		for i := hm.config.MaxBackups - 1; i >= 1; i-- {
			from := file + "." + strconv.Itoa(i)
			if _, err := os.Stat(from); err != nil {
				continue
			}
			if err := os.Rename(from, file+"."+strconv.Itoa(i+1)); err != nil {
				return fmt.Errorf("failed to rotate backup %d: %w", i, err)
			}
		}
		if err := os.Rename(file, file+".1"); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	keep := len(hm.entries)
	if keep >= 100 {
		keep /= 2
	}
	hm.entries = hm.entries[len(hm.entries)-keep:]
	hm.ResetNavigation()
	return nil
}

// expandHistoryPath expands a leading "~" and makes the path absolute.
func expandHistoryPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return absPath, nil
}
