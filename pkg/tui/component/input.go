// ABOUTME: Single-line text input component with cursor and a one-slot kill buffer
// ABOUTME: Supports horizontal scrolling, placeholder text, and Emacs-style keybindings

package component

import (
	"strings"
	"unicode/utf8"

	"github.com/mauromedda/multiselect-go/pkg/tui"
	"github.com/mauromedda/multiselect-go/pkg/tui/key"
	"github.com/mauromedda/multiselect-go/pkg/tui/theme"
	"github.com/mauromedda/multiselect-go/pkg/tui/width"
)

// Input is a single-line text input with cursor tracking.
type Input struct {
	text        []rune
	cursor      int
	placeholder string
	focused     bool
	dirty       bool
	scrollOff   int
	killed      string
}

// NewInput creates a new empty Input component.
func NewInput() *Input {
	return &Input{
		text:  make([]rune, 0, 64),
		dirty: true,
	}
}

// Text returns the current input text.
func (inp *Input) Text() string {
	return string(inp.text)
}

// SetText replaces the input text and moves cursor to the end.
func (inp *Input) SetText(s string) {
	inp.text = []rune(s)
	inp.cursor = len(inp.text)
	inp.scrollOff = 0
	inp.dirty = true
}

// CursorPos returns the cursor position in runes.
func (inp *Input) CursorPos() int {
	return inp.cursor
}

// SetPlaceholder sets the placeholder text shown when the input is empty.
func (inp *Input) SetPlaceholder(p string) {
	inp.placeholder = p
	inp.dirty = true
}

// SetFocused sets the focus state.
func (inp *Input) SetFocused(focused bool) {
	inp.focused = focused
	inp.dirty = true
}

// IsFocused returns the focus state.
func (inp *Input) IsFocused() bool {
	return inp.focused
}

// Invalidate marks the component for re-render.
func (inp *Input) Invalidate() {
	inp.dirty = true
}

// HandleInput processes raw terminal input data.
// Multi-rune printable input (a paste) is inserted as a whole.
func (inp *Input) HandleInput(data string) {
	k := key.ParseKey(data)
	if k.Type == key.KeyUnknown && isPrintable(data) {
		for _, r := range data {
			inp.insertRune(r)
		}
		return
	}
	inp.HandleKey(k)
}

func isPrintable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x20 || r == 0x7f || r == utf8.RuneError {
			return false
		}
	}
	return true
}

// HandleKey processes a parsed key and reports whether the text changed.
func (inp *Input) HandleKey(k key.Key) bool {
	before := string(inp.text)
	switch k.Type {
	case key.KeyRune:
		if !k.Alt {
			inp.insertRune(k.Rune)
		}
	case key.KeyBackspace:
		inp.backspace()
	case key.KeyDelete:
		inp.delete()
	case key.KeyLeft:
		inp.moveCursorLeft()
	case key.KeyRight:
		inp.moveCursorRight()
	case key.KeyHome:
		inp.moveCursorHome()
	case key.KeyEnd:
		inp.moveCursorEnd()
	case key.KeyCtrl:
		inp.handleCtrl(k.Rune)
	}
	return string(inp.text) != before
}

func (inp *Input) handleCtrl(r rune) {
	switch r {
	case 'a':
		inp.moveCursorHome()
	case 'e':
		inp.moveCursorEnd()
	case 'k':
		inp.killToEnd()
	case 'u':
		inp.killToStart()
	case 'w':
		inp.deleteWordBackward()
	case 'y':
		inp.yank()
	}
}

func (inp *Input) insertRune(r rune) {
	inp.text = append(inp.text, 0)
	copy(inp.text[inp.cursor+1:], inp.text[inp.cursor:])
	inp.text[inp.cursor] = r
	inp.cursor++
	inp.dirty = true
}

func (inp *Input) backspace() {
	if inp.cursor == 0 {
		return
	}
	inp.text = append(inp.text[:inp.cursor-1], inp.text[inp.cursor:]...)
	inp.cursor--
	inp.dirty = true
}

func (inp *Input) delete() {
	if inp.cursor >= len(inp.text) {
		return
	}
	inp.text = append(inp.text[:inp.cursor], inp.text[inp.cursor+1:]...)
	inp.dirty = true
}

func (inp *Input) moveCursorLeft() {
	if inp.cursor > 0 {
		inp.cursor--
		inp.dirty = true
	}
}

func (inp *Input) moveCursorRight() {
	if inp.cursor < len(inp.text) {
		inp.cursor++
		inp.dirty = true
	}
}

func (inp *Input) moveCursorHome() {
	inp.cursor = 0
	inp.dirty = true
}

func (inp *Input) moveCursorEnd() {
	inp.cursor = len(inp.text)
	inp.dirty = true
}

func (inp *Input) killToEnd() {
	if inp.cursor >= len(inp.text) {
		return
	}
	inp.killed = string(inp.text[inp.cursor:])
	inp.text = inp.text[:inp.cursor]
	inp.dirty = true
}

func (inp *Input) killToStart() {
	if inp.cursor == 0 {
		return
	}
	inp.killed = string(inp.text[:inp.cursor])
	inp.text = append(inp.text[:0], inp.text[inp.cursor:]...)
	inp.cursor = 0
	inp.dirty = true
}

func (inp *Input) yank() {
	if inp.killed == "" {
		return
	}
	runes := []rune(inp.killed)
	newText := make([]rune, 0, len(inp.text)+len(runes))
	newText = append(newText, inp.text[:inp.cursor]...)
	newText = append(newText, runes...)
	newText = append(newText, inp.text[inp.cursor:]...)
	inp.text = newText
	inp.cursor += len(runes)
	inp.dirty = true
}

func (inp *Input) deleteWordBackward() {
	if inp.cursor == 0 {
		return
	}
	pos := inp.cursor - 1
	// Skip spaces
	for pos > 0 && inp.text[pos] == ' ' {
		pos--
	}
	// Skip non-spaces (word chars)
	for pos > 0 && inp.text[pos-1] != ' ' {
		pos--
	}
	inp.killed = string(inp.text[pos:inp.cursor])
	inp.text = append(inp.text[:pos], inp.text[inp.cursor:]...)
	inp.cursor = pos
	inp.dirty = true
}

// Render writes the input line into the buffer with optional cursor marker.
func (inp *Input) Render(out *tui.RenderBuffer, w int) {
	defer func() { inp.dirty = false }()

	if len(inp.text) == 0 {
		line := ""
		if inp.placeholder != "" {
			line = theme.Current().Palette.Placeholder.Apply(width.TruncateToWidth(inp.placeholder, max(w-1, 1)))
		}
		if inp.focused {
			line = tui.CursorMarker + line
		}
		out.WriteLine(line)
		return
	}

	if !inp.focused {
		out.WriteLine(width.TruncateToWidth(string(inp.text), w))
		return
	}

	inp.updateScrollOffset(w)

	var b strings.Builder
	visibleStart := inp.scrollOff
	visibleEnd := min(visibleStart+w-1, len(inp.text)) // leave room for cursor

	for i := visibleStart; i < visibleEnd; i++ {
		if i == inp.cursor {
			b.WriteString(tui.CursorMarker)
		}
		b.WriteRune(inp.text[i])
	}
	if inp.cursor >= visibleEnd {
		b.WriteString(tui.CursorMarker)
	}

	out.WriteLine(b.String())
}

func (inp *Input) updateScrollOffset(w int) {
	if w <= 1 {
		return
	}
	// Ensure cursor is visible
	if inp.cursor < inp.scrollOff {
		inp.scrollOff = inp.cursor
	}
	if inp.cursor >= inp.scrollOff+w-1 {
		inp.scrollOff = inp.cursor - w + 2
	}
}
