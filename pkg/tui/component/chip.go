// ABOUTME: Chip is one removable labeled entry of a chip row, rendered as "[ text × ]"
// ABOUTME: Item carries display text rules: short text override and max-character truncation

package component

import (
	"github.com/mauromedda/multiselect-go/pkg/tui"
	"github.com/mauromedda/multiselect-go/pkg/tui/theme"
	"github.com/mauromedda/multiselect-go/pkg/tui/width"
)

// DefaultMaxChars is the truncation length used when Item.MaxChars is 0.
const DefaultMaxChars = 40

const deleteMark = "×"

// Item is the data behind a chip.
type Item struct {
	Name      string
	Value     string
	ShortText string // shown instead of Name when set
	MaxChars  int    // 0 means DefaultMaxChars; negative disables truncation
	Deletable bool
}

// Key identifies the item for width caching: Value when set, else Name.
func (it Item) Key() string {
	if it.Value != "" {
		return it.Value
	}
	return it.Name
}

func (it Item) maxChars() int {
	if it.MaxChars == 0 {
		return DefaultMaxChars
	}
	return it.MaxChars
}

// DisplayText returns the text drawn inside the chip.
func (it Item) DisplayText() string {
	if it.ShortText != "" {
		return it.ShortText
	}
	s, _ := width.TruncateChars(it.Name, it.maxChars())
	return s
}

// HasTooltip reports whether the drawn text differs from the full name, in
// which case hosts show Name when the chip is focused.
func (it Item) HasTooltip() bool {
	if it.ShortText != "" {
		return true
	}
	_, cut := width.TruncateChars(it.Name, it.maxChars())
	return cut
}

// Chip renders a single Item.
type Chip struct {
	item    Item
	focused bool
}

// NewChip creates a chip for it.
func NewChip(it Item) *Chip {
	return &Chip{item: it}
}

// Item returns the chip's data.
func (c *Chip) Item() Item { return c.item }

// SetFocused sets the focus state.
func (c *Chip) SetFocused(focused bool) { c.focused = focused }

// IsFocused returns the focus state.
func (c *Chip) IsFocused() bool { return c.focused }

// Invalidate is a no-op; chips render from their item on every call.
func (c *Chip) Invalidate() {}

// PlainLabel returns the unstyled chip text.
func (c *Chip) PlainLabel() string {
	s := "[ " + c.item.DisplayText() + " "
	if c.item.Deletable {
		s += deleteMark + " "
	}
	return s + "]"
}

// Label returns the chip text styled with the current theme.
func (c *Chip) Label() string {
	p := theme.Current().Palette
	col := p.Chip
	if c.focused {
		col = p.ChipFocused
	}
	s := col.Code() + "[ " + c.item.DisplayText() + " "
	if c.item.Deletable {
		s += p.ChipDelete.Code() + deleteMark + "\x1b[0m" + col.Code() + " "
	}
	return s + "]\x1b[0m"
}

// Width returns the chip's display width measured with m.
func (c *Chip) Width(m tui.Measurer) int {
	if m == nil {
		m = tui.DefaultMeasurer
	}
	return m(c.PlainLabel())
}

// Describe returns the text a screen reader would announce for the chip.
func (c *Chip) Describe(l Localizer) string {
	if l == nil {
		l = English
	}
	s := c.item.Name
	if c.item.Deletable {
		s += ", " + l("delete", nil)
	}
	return s
}

// Render writes the chip as one line, truncated to w.
func (c *Chip) Render(out *tui.RenderBuffer, w int) {
	out.WriteLine(width.TruncateToWidth(c.Label(), w))
}
