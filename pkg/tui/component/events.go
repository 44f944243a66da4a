// ABOUTME: Notifications published by chip lists and pickers on an eventbus.Bus
// ABOUTME: ItemAdded, ItemDeleted, SelectionChanged and LimitReached carry the item or a selection snapshot

package component

import (
	"sync"

	"github.com/mauromedda/multiselect-go/internal/eventbus"
	"github.com/mauromedda/multiselect-go/internal/locale"
	"github.com/mauromedda/multiselect-go/internal/log"
)

// Event is a notification emitted by a widget. Hosts type-switch on the
// concrete value.
type Event interface {
	event()
}

// ItemAdded is published when a chip is appended to a ChipList.
type ItemAdded struct {
	Item Item
}

// ItemDeleted is published when a chip's delete affordance is used.
// HandleFocus is set when the widget moves focus itself after removal.
type ItemDeleted struct {
	Item        Item
	Index       int
	HandleFocus bool
}

// SelectionChanged carries the full selection after a picker add or remove.
type SelectionChanged struct {
	Selected []Attribute
}

// LimitReached is published when an add is refused because the selection is full.
type LimitReached struct {
	Limit int
}

func (ItemAdded) event()        {}
func (ItemDeleted) event()      {}
func (SelectionChanged) event() {}
func (LimitReached) event()     {}

// Bus delivers widget events to the host.
type Bus = eventbus.Bus[Event]

// NewBus creates an event bus for widget notifications.
func NewBus() *Bus {
	return eventbus.New[Event]()
}

// Localizer maps a message key to display text, substituting data into the
// message template. internal/locale provides the catalog-backed one.
type Localizer func(key string, data map[string]any) string

var englishCatalog = sync.OnceValue(func() *locale.Catalog {
	c, err := locale.New("en")
	if err != nil {
		log.Error("component: english catalog: %v", err)
		return nil
	}
	return c
})

// English is the Localizer used when none is configured. It reads the
// embedded en catalog; unknown keys come back unchanged.
func English(key string, data map[string]any) string {
	c := englishCatalog()
	if c == nil {
		return key
	}
	return c.Lookup(key, data)
}
