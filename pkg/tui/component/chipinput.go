// ABOUTME: ChipInput is a text box that appends a deletable chip to a collapsible ChipList on Enter
// ABOUTME: Tab, Up and Backspace on an empty box enter the chip row; Tab, Escape or moving past the end leave it

package component

import (
	"strings"

	"github.com/mauromedda/multiselect-go/pkg/chips/focus"
	"github.com/mauromedda/multiselect-go/pkg/tui"
	"github.com/mauromedda/multiselect-go/pkg/tui/key"
)

// ChipInputOptions configures a ChipInput.
type ChipInputOptions struct {
	List        ChipListOptions
	Placeholder string
	MaxChars    int // applied to entered chips, see Item.MaxChars
}

// ChipInput pairs a text box with the chip row it feeds. Focus is on the box
// or, after the user moves into it, on the row.
type ChipInput struct {
	opts  ChipInputOptions
	list  *ChipList
	input *Input

	focused bool
	onList  bool
}

// NewChipInput creates an empty box over an empty chip row.
func NewChipInput(opts ChipInputOptions) *ChipInput {
	ci := &ChipInput{
		opts:  opts,
		list:  NewChipList(opts.List),
		input: NewInput(),
	}
	ci.input.SetPlaceholder(opts.Placeholder)
	return ci
}

// List returns the chip row.
func (ci *ChipInput) List() *ChipList { return ci.list }

// Input returns the text box.
func (ci *ChipInput) Input() *Input { return ci.input }

// OnList reports whether keys go to the chip row rather than the box.
func (ci *ChipInput) OnList() bool { return ci.onList }

// Commit appends the trimmed text as a deletable chip and clears the box.
// Blank text adds nothing. Repeated text adds another chip.
func (ci *ChipInput) Commit() bool {
	text := strings.TrimSpace(ci.input.Text())
	if text == "" {
		return false
	}
	ci.list.Add(Item{Name: text, MaxChars: ci.opts.MaxChars, Deletable: true})
	ci.input.SetText("")
	return true
}

// SetFocused gives or takes keyboard focus.
func (ci *ChipInput) SetFocused(focused bool) {
	ci.focused = focused
	ci.sync()
}

// IsFocused returns the focus state.
func (ci *ChipInput) IsFocused() bool { return ci.focused }

func (ci *ChipInput) sync() {
	if ci.onList && ci.list.Len() == 0 {
		ci.onList = false
	}
	ci.input.SetFocused(ci.focused && !ci.onList)
	ci.list.SetFocused(ci.focused && ci.onList)
}

func (ci *ChipInput) focusList(last bool) {
	if ci.list.Len() == 0 {
		return
	}
	ci.onList = true
	ci.sync()
	if last {
		ci.list.FocusItem(ci.list.Layout().VisibleItems() - 1)
	}
}

func (ci *ChipInput) focusInput() {
	ci.onList = false
	ci.sync()
}

// Invalidate forces a re-render and a fit pass.
func (ci *ChipInput) Invalidate() {
	ci.input.Invalidate()
	ci.list.Invalidate()
}

// HandleInput processes a raw key sequence.
func (ci *ChipInput) HandleInput(data string) {
	ci.sync()
	k := key.ParseKey(data)
	if ci.onList {
		ci.handleListKey(k)
		return
	}
	switch k.Type {
	case key.KeyEnter:
		ci.Commit()
		return
	case key.KeyTab, key.KeyUp:
		ci.focusList(false)
		return
	case key.KeyBackTab:
		ci.focusList(true)
		return
	case key.KeyBackspace:
		if ci.input.Text() == "" {
			ci.focusList(true)
			return
		}
	}
	ci.input.HandleInput(data)
}

func (ci *ChipInput) handleListKey(k key.Key) {
	switch k.Type {
	case key.KeyTab, key.KeyBackTab, key.KeyEscape:
		ci.focusInput()
		return
	}
	if !ci.list.HandleKey(k) && ci.forward(k) {
		ci.focusInput()
		return
	}
	ci.sync()
}

// forward reports whether k moves toward the end of the row.
func (ci *ChipInput) forward(k key.Key) bool {
	rtl := ci.list.opts.Direction == focus.RTL
	switch k.Type {
	case key.KeyDown:
		return true
	case key.KeyRight:
		return !rtl
	case key.KeyLeft:
		return rtl
	}
	return false
}

// Render draws the chip row, when it has chips, above the text box.
func (ci *ChipInput) Render(out *tui.RenderBuffer, w int) {
	ci.sync()
	if ci.list.Len() > 0 {
		ci.list.Render(out, w)
	}
	ci.input.Render(out, w)
}
