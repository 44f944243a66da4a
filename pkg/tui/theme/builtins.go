// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "sort"

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Text:        NewColor("\x1b[97m"),
			Muted:       NewColor("\x1b[38;5;245m"),
			Accent:      NewColor("\x1b[38;5;214m"),
			Placeholder: NewColor("\x1b[38;5;240m"),

			Error: NewColor("\x1b[38;5;203m"),

			Chip:        NewColor("\x1b[48;5;236m"),
			ChipFocused: NewColor("\x1b[1m\x1b[48;5;24m"),
			ChipDelete:  NewColor("\x1b[38;5;244m"),

			Control:        NewColor("\x1b[38;5;117m"),
			ControlFocused: NewColor("\x1b[1m\x1b[48;5;24m"),

			Selection: NewColor("\x1b[48;5;238m"),
			Border:    NewColor("\x1b[38;5;240m"),

			Bold:    NewColor("\x1b[1m"),
			Dim:     NewColor("\x1b[2m"),
			Reverse: NewColor("\x1b[7m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Text:        NewColor("\x1b[30m"),
			Muted:       NewColor("\x1b[38;5;244m"),
			Accent:      NewColor("\x1b[38;5;166m"),
			Placeholder: NewColor("\x1b[38;5;249m"),

			Error: NewColor("\x1b[38;5;160m"),

			Chip:        NewColor("\x1b[48;5;254m"),
			ChipFocused: NewColor("\x1b[1m\x1b[97m\x1b[48;5;25m"),
			ChipDelete:  NewColor("\x1b[38;5;242m"),

			Control:        NewColor("\x1b[38;5;25m"),
			ControlFocused: NewColor("\x1b[1m\x1b[97m\x1b[48;5;25m"),

			Selection: NewColor("\x1b[48;5;252m"),
			Border:    NewColor("\x1b[38;5;249m"),

			Bold:    NewColor("\x1b[1m"),
			Dim:     NewColor("\x1b[2m"),
			Reverse: NewColor("\x1b[7m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Text:        NewColor("\x1b[0m"),
			Muted:       NewColor("\x1b[2m"),
			Accent:      NewColor("\x1b[1m"),
			Placeholder: NewColor("\x1b[2m"),

			Error: NewColor("\x1b[1m"),

			Chip:        NewColor("\x1b[0m"),
			ChipFocused: NewColor("\x1b[7m"),
			ChipDelete:  NewColor("\x1b[2m"),

			Control:        NewColor("\x1b[4m"),
			ControlFocused: NewColor("\x1b[7m"),

			Selection: NewColor("\x1b[7m"),
			Border:    NewColor("\x1b[2m"),

			Bold:    NewColor("\x1b[1m"),
			Dim:     NewColor("\x1b[2m"),
			Reverse: NewColor("\x1b[7m"),
		},
	},
}

// Builtin returns the built-in theme with the given name, or nil.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
