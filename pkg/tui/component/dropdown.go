// ABOUTME: Dropdown of autocomplete candidates filtered by the picker's text
// ABOUTME: Highlight is -1 (none) or a visible index; Up/Down wrap around; viewport scrolls to the highlight

package component

import (
	"github.com/mauromedda/multiselect-go/pkg/tui"
	"github.com/mauromedda/multiselect-go/pkg/tui/fuzzy"
	"github.com/mauromedda/multiselect-go/pkg/tui/key"
	"github.com/mauromedda/multiselect-go/pkg/tui/theme"
	"github.com/mauromedda/multiselect-go/pkg/tui/width"
)

// NoHighlight is the dropdown index meaning no candidate is highlighted.
const NoHighlight = -1

const defaultDropdownHeight = 8

// Dropdown is a filterable, scrollable candidate list.
type Dropdown struct {
	items     []Attribute
	visible   []Attribute
	highlight int
	scrollOff int
	maxHeight int
	filter    string
	mode      fuzzy.Mode
	dirty     bool
}

// NewDropdown creates an empty dropdown matching with mode.
func NewDropdown(mode fuzzy.Mode) *Dropdown {
	return &Dropdown{
		highlight: NoHighlight,
		maxHeight: defaultDropdownHeight,
		mode:      mode,
		dirty:     true,
	}
}

// SetItems replaces the candidate list and refilters. The highlight is kept
// when still in range.
func (d *Dropdown) SetItems(items []Attribute) {
	d.items = items
	d.applyFilter()
}

// SetFilter sets the text fragment candidates must match.
func (d *Dropdown) SetFilter(f string) {
	if f == d.filter {
		return
	}
	d.filter = f
	d.applyFilter()
}

// Filter returns the current text fragment.
func (d *Dropdown) Filter() string {
	return d.filter
}

// SetMaxHeight limits the number of visible rows.
func (d *Dropdown) SetMaxHeight(h int) {
	d.maxHeight = max(h, 1)
	d.adjustScroll()
	d.dirty = true
}

// Visible returns the filtered candidates in display order.
func (d *Dropdown) Visible() []Attribute {
	return d.visible
}

// Len returns the number of filtered candidates.
func (d *Dropdown) Len() int {
	return len(d.visible)
}

// Highlight returns the highlighted index, or NoHighlight.
func (d *Dropdown) Highlight() int {
	return d.highlight
}

// SetHighlight highlights index i. Out-of-range values clear the highlight.
func (d *Dropdown) SetHighlight(i int) {
	if i < 0 || i >= len(d.visible) {
		i = NoHighlight
	}
	d.highlight = i
	d.adjustScroll()
	d.dirty = true
}

// Highlighted returns the highlighted candidate.
func (d *Dropdown) Highlighted() (Attribute, bool) {
	if d.highlight < 0 || d.highlight >= len(d.visible) {
		return Attribute{}, false
	}
	return d.visible[d.highlight], true
}

// Next moves the highlight down, wrapping from the last candidate to the
// first. With nothing highlighted it selects the first.
func (d *Dropdown) Next() {
	n := len(d.visible)
	if n == 0 {
		return
	}
	if d.highlight < 0 {
		d.SetHighlight(0)
		return
	}
	d.SetHighlight((d.highlight + 1) % n)
}

// Prev moves the highlight up, wrapping from the first candidate to the
// last. With nothing highlighted it selects the last.
func (d *Dropdown) Prev() {
	n := len(d.visible)
	if n == 0 {
		return
	}
	if d.highlight < 0 {
		d.SetHighlight(n - 1)
		return
	}
	d.SetHighlight((d.highlight - 1 + n) % n)
}

// Invalidate marks the component for re-render.
func (d *Dropdown) Invalidate() {
	d.dirty = true
}

// HandleInput processes keyboard input for navigation.
func (d *Dropdown) HandleInput(data string) {
	switch key.ParseKey(data).Type {
	case key.KeyUp:
		d.Prev()
	case key.KeyDown:
		d.Next()
	}
}

func (d *Dropdown) adjustScroll() {
	if d.highlight < 0 {
		d.scrollOff = min(d.scrollOff, max(len(d.visible)-d.maxHeight, 0))
		return
	}
	if d.highlight < d.scrollOff {
		d.scrollOff = d.highlight
	}
	if d.highlight >= d.scrollOff+d.maxHeight {
		d.scrollOff = d.highlight - d.maxHeight + 1
	}
}

func (d *Dropdown) applyFilter() {
	names := make([]string, len(d.items))
	for i, it := range d.items {
		names[i] = it.Name
	}
	idx := fuzzy.Filter(d.mode, d.filter, names)
	d.visible = make([]Attribute, len(idx))
	for i, j := range idx {
		d.visible[i] = d.items[j]
	}
	if d.highlight >= len(d.visible) {
		d.highlight = len(d.visible) - 1
	}
	d.adjustScroll()
	d.dirty = true
}

// Render writes the visible window of candidates into the buffer.
func (d *Dropdown) Render(out *tui.RenderBuffer, w int) {
	defer func() { d.dirty = false }()
	if len(d.visible) == 0 {
		return
	}

	p := theme.Current().Palette
	end := min(d.scrollOff+d.maxHeight, len(d.visible))
	for i := d.scrollOff; i < end; i++ {
		line := width.TruncateToWidth("  "+d.visible[i].Name, w)
		if i == d.highlight {
			line = p.Bold.Code() + p.Selection.Code() + line + "\x1b[0m"
		}
		out.WriteLine(line)
	}
}
