// ABOUTME: Host key bindings (bubbles/key) and translation of tea.KeyMsg into raw widget input
// ABOUTME: Widgets parse raw sequences with key.ParseKey, so the host re-encodes what bubbletea decoded

package btea

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/multiselect-go/internal/keybindings"
	tuikey "github.com/mauromedda/multiselect-go/pkg/tui/key"
)

// KeyMap holds the bindings the host consumes before input reaches a widget.
type KeyMap struct {
	Done   key.Binding
	Cancel key.Binding
	Help   key.Binding
	Copy   key.Binding
}

// NewKeyMap builds host bindings from a keybindings manager.
func NewKeyMap(m *keybindings.Manager) KeyMap {
	bind := func(a keybindings.Action, desc string) key.Binding {
		keys := m.Keys(a)
		if len(keys) == 0 {
			return key.NewBinding(key.WithDisabled())
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
	}
	return KeyMap{
		Done:   bind(keybindings.ActionDone, "done"),
		Cancel: bind(keybindings.ActionCancel, "cancel"),
		Help:   bind(keybindings.ActionHelp, "toggle help"),
		Copy:   bind(keybindings.ActionCopy, "copy"),
	}
}

// DefaultKeyMap returns the default host bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(keybindings.MustDefault())
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Done, k.Cancel, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Copy}}
}

// namedKeys maps bubbletea key types to widget keys.
var namedKeys = map[tea.KeyType]tuikey.KeyType{
	tea.KeyEnter:     tuikey.KeyEnter,
	tea.KeyTab:       tuikey.KeyTab,
	tea.KeyShiftTab:  tuikey.KeyBackTab,
	tea.KeyBackspace: tuikey.KeyBackspace,
	tea.KeyDelete:    tuikey.KeyDelete,
	tea.KeyUp:        tuikey.KeyUp,
	tea.KeyDown:      tuikey.KeyDown,
	tea.KeyLeft:      tuikey.KeyLeft,
	tea.KeyRight:     tuikey.KeyRight,
	tea.KeyHome:      tuikey.KeyHome,
	tea.KeyEnd:       tuikey.KeyEnd,
	tea.KeyPgUp:      tuikey.KeyPageUp,
	tea.KeyPgDown:    tuikey.KeyPageDown,
	tea.KeyEsc:       tuikey.KeyEscape,
	tea.KeyCtrlC:     tuikey.KeyCtrlC,
}

// rawInput re-encodes a bubbletea key event as the terminal bytes widgets
// parse. Multi-rune events (pastes) pass through whole. Returns "" for keys
// widgets do not handle.
func rawInput(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return tuikey.Encode(tuikey.Key{Type: tuikey.KeyRune, Rune: msg.Runes[0], Alt: msg.Alt})
		}
		return string(msg.Runes)
	case tea.KeySpace:
		return " "
	}
	if kt, ok := namedKeys[msg.Type]; ok {
		return tuikey.Encode(tuikey.Key{Type: kt})
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return tuikey.Encode(tuikey.Key{Type: tuikey.KeyCtrl, Rune: 'a' + rune(msg.Type-tea.KeyCtrlA)})
	}
	return ""
}
