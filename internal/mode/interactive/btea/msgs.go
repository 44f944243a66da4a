// ABOUTME: Messages and state shared between the host models and the widget event bus
// ABOUTME: fitMsg carries one coalesced layout pass; shared collects bus output between updates

package btea

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/multiselect-go/internal/keybindings"
	"github.com/mauromedda/multiselect-go/pkg/tui/clipboard"
	"github.com/mauromedda/multiselect-go/pkg/tui/component"
)

// ErrCancelled is returned by the Run functions when the user cancels.
var ErrCancelled = errors.New("cancelled")

// fitMsg asks the host to run the pending chip list fit pass.
type fitMsg struct{}

// Options configures a host model.
type Options struct {
	Title    string
	Localize component.Localizer
	// Bus must be the bus the hosted widget publishes on.
	Bus *component.Bus
	// Keys overrides the default host bindings.
	Keys *keybindings.Manager
	// Copy writes to the clipboard; clipboard.Write when nil.
	Copy func(string) error
}

func (o Options) keyMap() KeyMap {
	if o.Keys == nil {
		return DefaultKeyMap()
	}
	return NewKeyMap(o.Keys)
}

func (o Options) localizer() component.Localizer {
	if o.Localize == nil {
		return component.English
	}
	return o.Localize
}

func (o Options) copier() func(string) error {
	if o.Copy == nil {
		return clipboard.Write
	}
	return o.Copy
}

// shared is the mutable state bus handlers and scheduler callbacks write
// into. Models are copied by value, so they hold it by pointer.
type shared struct {
	status       string
	fitRequested bool
	removals     []string
}

func (s *shared) takeFit() tea.Cmd {
	if !s.fitRequested {
		return nil
	}
	s.fitRequested = false
	return func() tea.Msg { return fitMsg{} }
}

func (s *shared) subscribe(opts Options) {
	if opts.Bus == nil {
		return
	}
	l := opts.localizer()
	opts.Bus.Subscribe(func(e component.Event) {
		if text := describe(e, l); text != "" {
			s.status = text
		}
	})
}

// describe returns the status line for an event, or "" for events that do
// not produce one.
func describe(e component.Event, l component.Localizer) string {
	switch ev := e.(type) {
	case component.ItemAdded:
		return l("item_added", map[string]any{"Value": ev.Item.Name})
	case component.ItemDeleted:
		return l("item_removed", map[string]any{"Value": ev.Item.Name})
	case component.LimitReached:
		return l("limit_reached", map[string]any{"Limit": ev.Limit})
	}
	return ""
}

// copyText sends text to the clipboard and reports the outcome on the
// status line.
func (s *shared) copyText(text string, copy func(string) error, l component.Localizer) {
	if text == "" {
		return
	}
	if err := copy(text); err != nil {
		s.status = err.Error()
		return
	}
	s.status = l("copied", nil)
}

// contentWidth is the width inside the frame border and padding.
func contentWidth(termWidth int) int {
	if termWidth <= 0 {
		return 60
	}
	return max(termWidth-4, 10)
}
