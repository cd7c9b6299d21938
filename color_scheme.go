package readline

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors the Prompt renders with.
type ColorScheme struct {
	Name   string `yaml:"name"`
	Prefix Color  `yaml:"prefix"` // Prompt prefix on the first row
	Input  Color  `yaml:"input"`  // Buffer text
	Margin Color  `yaml:"margin"` // Continuation marker on following rows
}

// Color represents an RGB color with optional bold formatting.
type Color struct {
	R    uint8 `yaml:"r"`
	G    uint8 `yaml:"g"`
	B    uint8 `yaml:"b"`
	Bold bool  `yaml:"bold"`
}

// ThemeDefault is the default color scheme with green prefix and white text
var ThemeDefault = &ColorScheme{
	Name:   "default",
	Prefix: Color{R: 0, G: 255, B: 0, Bold: true},
	Input:  Color{R: 255, G: 255, B: 255, Bold: true},
	Margin: Color{R: 128, G: 128, B: 128},
}

// ThemeDark is a dark theme with light blue prefix and off-white text
var ThemeDark = &ColorScheme{
	Name:   "dark",
	Prefix: Color{R: 102, G: 217, B: 239, Bold: true},
	Input:  Color{R: 248, G: 248, B: 242},
	Margin: Color{R: 98, G: 114, B: 164},
}

// ThemeLight is a light theme with blue prefix and dark gray text
var ThemeLight = &ColorScheme{
	Name:   "light",
	Prefix: Color{R: 0, G: 119, B: 187, Bold: true},
	Input:  Color{R: 36, G: 41, B: 46},
	Margin: Color{R: 149, G: 157, B: 165},
}

// ThemeSolarizedDark is the Solarized Dark color scheme
var ThemeSolarizedDark = &ColorScheme{
	Name:   "solarized-dark",
	Prefix: Color{R: 133, G: 153, B: 0, Bold: true},
	Input:  Color{R: 147, G: 161, B: 161},
	Margin: Color{R: 88, G: 110, B: 117},
}

var themes = []*ColorScheme{ThemeDefault, ThemeDark, ThemeLight, ThemeSolarizedDark}

// ThemeByName looks a built-in theme up by name, ignoring case. An empty
// name selects ThemeDefault.
func ThemeByName(name string) (*ColorScheme, bool) {
	if name == "" {
		return ThemeDefault, true
	}
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return nil, false
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string
	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
