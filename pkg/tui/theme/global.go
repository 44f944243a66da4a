// ABOUTME: Lock-free global theme pointer using atomic.Pointer
// ABOUTME: Current() returns the active theme; Set() swaps it; Use() resolves a builtin name or file path

package theme

import (
	"fmt"
	"strings"
	"sync/atomic"
)

var current atomic.Pointer[Theme]

func init() {
	p := DefaultPalette()
	current.Store(&Theme{Name: "default", Palette: p})
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return current.Load()
}

// Set atomically replaces the active theme.
func Set(t *Theme) {
	current.Store(t)
}

// Resolve returns the builtin theme called ref, or loads ref as a YAML theme
// file when it looks like a path.
func Resolve(ref string) (*Theme, error) {
	if ref == "" {
		return Builtin("default"), nil
	}
	if th := Builtin(ref); th != nil {
		return th, nil
	}
	if strings.ContainsAny(ref, "/\\.") {
		return LoadFile(ref)
	}
	return nil, fmt.Errorf("unknown theme %q (builtins: %s)", ref, strings.Join(BuiltinNames(), ", "))
}
