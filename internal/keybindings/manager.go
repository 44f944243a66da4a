// ABOUTME: Host key bindings manager with O(1) key-to-action lookup
// ABOUTME: Overrides from settings replace an action's default keys; unknown actions and conflicts are errors

package keybindings

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Action is a host-level command bound to one or more keys.
type Action string

const (
	ActionDone   Action = "done"
	ActionCancel Action = "cancel"
	ActionHelp   Action = "help"
	ActionCopy   Action = "copy"
)

// Actions lists every action in display order.
var Actions = []Action{ActionDone, ActionCancel, ActionHelp, ActionCopy}

// Sentinel errors returned by New.
var (
	ErrUnknownAction = errors.New("unknown key action")
	ErrConflict      = errors.New("key bound to several actions")
)

// Defaults returns a fresh copy of the default bindings. Keys use the
// bubbletea names ("ctrl+s", "alt+enter").
func Defaults() map[Action][]string {
	return map[Action][]string{
		ActionDone:   {"ctrl+s"},
		ActionCancel: {"ctrl+c"},
		ActionHelp:   {"ctrl+g"},
		ActionCopy:   {"ctrl+o"},
	}
}

// ConflictInfo describes a key shared by several actions.
type ConflictInfo struct {
	Key     string
	Actions []Action
}

// Manager maps keys to actions.
type Manager struct {
	bindings map[Action][]string
	lookup   map[string]Action // "ctrl+s" → ActionDone
}

// New merges overrides onto the defaults. An override replaces all keys of
// its action; an empty list leaves the default in place.
func New(overrides map[string][]string) (*Manager, error) {
	b := Defaults()
	for name, keys := range overrides {
		a := Action(strings.ToLower(strings.TrimSpace(name)))
		if !slices.Contains(Actions, a) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		if len(keys) == 0 {
			continue
		}
		normalized := make([]string, len(keys))
		for i, k := range keys {
			normalized[i] = strings.ToLower(strings.TrimSpace(k))
		}
		b[a] = normalized
	}

	m := &Manager{bindings: b}
	if c := m.Conflicts(); len(c) > 0 {
		return nil, fmt.Errorf("%w: %q → %v", ErrConflict, c[0].Key, c[0].Actions)
	}
	m.buildLookup()
	return m, nil
}

// MustDefault returns a Manager with the default bindings.
func MustDefault() *Manager {
	m, err := New(nil)
	if err != nil {
		panic(err)
	}
	return m
}

// Keys returns the keys bound to a.
func (m *Manager) Keys(a Action) []string {
	return slices.Clone(m.bindings[a])
}

// ActionFor returns the action bound to key, or "" if unbound.
func (m *Manager) ActionFor(key string) Action {
	return m.lookup[strings.ToLower(key)]
}

// Conflicts detects keys bound to several actions, ordered by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]Action)
	for _, a := range Actions {
		for _, k := range m.bindings[a] {
			keyActions[k] = append(keyActions[k], a)
		}
	}

	var conflicts []ConflictInfo
	for _, k := range slices.Sorted(maps.Keys(keyActions)) {
		if actions := keyActions[k]; len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

// FormatAll returns a table of all bindings.
func (m *Manager) FormatAll() string {
	var b strings.Builder
	for _, a := range Actions {
		keys := m.bindings[a]
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-20s %s\n", strings.Join(keys, ", "), a)
	}
	return b.String()
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[string]Action, len(m.bindings)*2)
	for action, keys := range m.bindings {
		for _, k := range keys {
			m.lookup[k] = action
		}
	}
}
