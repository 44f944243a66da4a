// ABOUTME: Defines the Key type, ParseKey for raw terminal input, and Encode for the reverse mapping.
// ABOUTME: Covers the keys widgets react to: arrows, Home/End, Backspace/Delete, Enter, Escape, Tab, Ctrl letters.

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // Printable character, or the letter of a Ctrl combination
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events widgets can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character (including space)
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyCtrl                     // Ctrl+letter other than the named ones; Rune holds the letter
	KeyCtrlC                    // Ctrl+C
	KeyUnknown                  // Unrecognized input
)

// ParseKey parses raw terminal input data into a Key.
// It handles single runes, control characters, and escape sequences.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d || b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f || b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b == 0x03:
		return Key{Type: KeyCtrlC, Ctrl: true}
	case b >= 0x01 && b <= 0x1a:
		return Key{Type: KeyCtrl, Rune: rune('a' + b - 1), Ctrl: true}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence resolves ESC-prefixed data via the legacy CSI/SS3 table.
func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Alt+letter: ESC followed by a single printable byte (0x20..0x7e)
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

// Encode returns the raw sequence ParseKey maps back to k.
// Returns "" for keys that have no terminal encoding.
func Encode(k Key) string {
	switch k.Type {
	case KeyRune:
		if k.Alt {
			return "\x1b" + string(k.Rune)
		}
		return string(k.Rune)
	case KeyCtrl:
		if k.Rune < 'a' || k.Rune > 'z' {
			return ""
		}
		return string(rune(k.Rune - 'a' + 1))
	case KeyCtrlC:
		return "\x03"
	case KeyEnter:
		return "\r"
	case KeyTab:
		return "\t"
	case KeyBackspace:
		return "\x7f"
	case KeyEscape:
		return "\x1b"
	}
	if seq, ok := encodedSequences[k.Type]; ok {
		return seq
	}
	return ""
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		if k.Rune == ' ' {
			return "Space"
		}
		if k.Alt {
			return fmt.Sprintf("Alt+%c", k.Rune)
		}
		return string(k.Rune)
	case KeyCtrl:
		return fmt.Sprintf("Ctrl+%c", k.Rune-'a'+'A')
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

// IsSpace reports whether k is the space bar.
func (k Key) IsSpace() bool {
	return k.Type == KeyRune && k.Rune == ' ' && !k.Alt
}
