// ABOUTME: Core widget interfaces: Component, InputHandler, Focusable, Measurer
// ABOUTME: Defines the contract shared by chips, chip lists, inputs, dropdowns and the picker

package tui

import (
	"strings"

	"github.com/mauromedda/multiselect-go/pkg/tui/width"
)

// CursorMarker is a zero-width marker that components embed in render output
// to indicate the text cursor. Hosts strip it with ExtractCursor and draw the
// cursor themselves.
const CursorMarker = "\x1b_ms:c\x07"

// Component is the base interface for all widgets.
// Components render into a pooled RenderBuffer and must not exceed the given width.
type Component interface {
	// Render writes the component's visual lines into out.
	// Lines must not exceed width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate clears any cached render state, forcing a full re-render
	// on the next Render call.
	Invalidate()
}

// InputHandler is implemented by components that process keyboard input.
// data is a raw terminal key sequence as understood by package key.
type InputHandler interface {
	HandleInput(data string)
}

// Focusable is implemented by components that participate in focus management.
type Focusable interface {
	SetFocused(focused bool)
	IsFocused() bool
}

// Measurer returns the display width of a rendered fragment. It is the
// injected measurement capability used by layout code; width.VisibleWidth is
// the default.
type Measurer func(s string) int

// DefaultMeasurer measures terminal display columns.
func DefaultMeasurer(s string) int {
	return width.VisibleWidth(s)
}

// ExtractCursor finds the CursorMarker in lines, removes it, and returns
// (row, col). Returns (-1, -1) if not found.
func ExtractCursor(lines []string) (row, col int) {
	for i, line := range lines {
		idx := strings.Index(line, CursorMarker)
		if idx >= 0 {
			before := line[:idx]
			lines[i] = before + line[idx+len(CursorMarker):]
			return i, width.VisibleWidth(before)
		}
	}
	return -1, -1
}
