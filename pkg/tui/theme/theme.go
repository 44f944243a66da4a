// ABOUTME: Semantic color theme types: Color, Palette, Theme
// ABOUTME: Color.Apply wraps text in ANSI codes; Palette maps chip, control and dropdown roles to colors

package theme

import "strings"

// Color represents a terminal color that can style text.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// SGR creates a Color from SGR parameters, e.g. "38;5;208" or "1;7".
// A value that already starts with ESC is used as-is.
func SGR(params string) Color {
	params = strings.TrimSpace(params)
	if params == "" {
		return Color{}
	}
	if strings.HasPrefix(params, "\x1b") {
		return Color{code: params}
	}
	return Color{code: "\x1b[" + params + "m"}
}

// Apply wraps text with the ANSI color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Bold returns a new Color that prepends bold (\x1b[1m) to the code.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Dim returns a new Color that prepends dim (\x1b[2m) to the code.
func (c Color) Dim() Color {
	return Color{code: "\x1b[2m" + c.code}
}

// Palette holds all semantic colors for a theme.
type Palette struct {
	// Text
	Text        Color
	Muted       Color
	Accent      Color
	Placeholder Color

	// Semantic
	Error Color

	// Chips
	Chip        Color
	ChipFocused Color
	ChipDelete  Color

	// Show-more / hide controls
	Control        Color
	ControlFocused Color

	// Dropdown and frames
	Selection Color
	Border    Color

	// Formatting
	Bold    Color
	Dim     Color
	Reverse Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `yaml:"name"`
	Palette Palette `yaml:"-"`
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Text:        NewColor("\x1b[0m"),
		Muted:       NewColor("\x1b[2m"),
		Accent:      NewColor("\x1b[38;5;208m"),
		Placeholder: NewColor("\x1b[2m"),

		Error: NewColor("\x1b[31m"),

		Chip:        NewColor("\x1b[48;5;237m"),
		ChipFocused: NewColor("\x1b[1m\x1b[48;5;31m"),
		ChipDelete:  NewColor("\x1b[38;5;246m"),

		Control:        NewColor("\x1b[4m"),
		ControlFocused: NewColor("\x1b[1m\x1b[7m"),

		Selection: NewColor("\x1b[7m"),
		Border:    NewColor("\x1b[90m"),

		Bold:    NewColor("\x1b[1m"),
		Dim:     NewColor("\x1b[2m"),
		Reverse: NewColor("\x1b[7m"),
	}
}
