// ABOUTME: Picker is the attribute picker: text input, autocomplete dropdown and a row of selected chips
// ABOUTME: Enforces unique names and a selection limit, commits freeform text, tracks required validity

package component

import (
	"strings"

	"github.com/mauromedda/multiselect-go/internal/log"
	"github.com/mauromedda/multiselect-go/pkg/chips/focus"
	"github.com/mauromedda/multiselect-go/pkg/tui"
	"github.com/mauromedda/multiselect-go/pkg/tui/fuzzy"
	"github.com/mauromedda/multiselect-go/pkg/tui/key"
	"github.com/mauromedda/multiselect-go/pkg/tui/theme"
	"github.com/mauromedda/multiselect-go/pkg/tui/width"
)

// Attribute is a selectable value of the picker.
type Attribute struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// PickerOptions configures a Picker.
type PickerOptions struct {
	Limit         int // maximum selection size; 0 means unlimited
	AllowFreeform bool
	HideDropdown  bool
	Required      bool
	InvalidText   string // shown while invalid; defaults to the localized oneAttributeRequired
	Placeholder   string
	Match         fuzzy.Mode
	Direction     focus.Direction
	Localize      Localizer
	Bus           *Bus
}

// Picker is the attribute picker widget. Focus is either on the input
// (focus.External for the chip row) or on one of the selected chips.
type Picker struct {
	opts PickerOptions

	candidates []Attribute
	selected   []Attribute

	input    *Input
	dropdown *Dropdown
	router   *focus.Router

	focused     bool
	blurredOnce bool
}

// NewPicker creates an empty picker.
func NewPicker(opts PickerOptions) *Picker {
	if opts.Localize == nil {
		opts.Localize = English
	}
	p := &Picker{
		opts:     opts,
		input:    NewInput(),
		dropdown: NewDropdown(opts.Match),
		router:   focus.NewRouter(opts.Direction),
	}
	p.input.SetPlaceholder(opts.Placeholder)
	return p
}

// Input returns the text input.
func (p *Picker) Input() *Input { return p.input }

// Dropdown returns the candidate dropdown.
func (p *Picker) Dropdown() *Dropdown { return p.dropdown }

// Focused returns the chip holding focus, or focus.External for the input.
func (p *Picker) Focused() focus.Element { return p.router.Focused() }

// SetDirection changes how Left/Right move between chips.
func (p *Picker) SetDirection(dir focus.Direction) {
	p.opts.Direction = dir
	p.router.SetDirection(dir)
}

// SetCandidates replaces the assignable attributes and clears the highlight.
func (p *Picker) SetCandidates(c []Attribute) {
	p.candidates = append([]Attribute(nil), c...)
	p.refreshDropdown()
	p.dropdown.SetHighlight(NoHighlight)
}

// Candidates returns the assignable attributes.
func (p *Picker) Candidates() []Attribute {
	return append([]Attribute(nil), p.candidates...)
}

// Selected returns a snapshot of the selection.
func (p *Picker) Selected() []Attribute {
	out := make([]Attribute, len(p.selected))
	copy(out, p.selected)
	return out
}

// SetSelected replaces the selection without notifying. Later duplicates by
// name are dropped.
func (p *Picker) SetSelected(sel []Attribute) {
	p.selected = p.selected[:0]
	seen := make(map[string]bool, len(sel))
	for _, a := range sel {
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		p.selected = append(p.selected, a)
	}
	if f := p.router.Focused(); f.Kind == focus.KindItem && f.Index >= len(p.selected) {
		p.focusInput()
	}
	p.refreshDropdown()
}

// Text returns the input text.
func (p *Picker) Text() string {
	return p.input.Text()
}

// ClearText empties the input.
func (p *Picker) ClearText() {
	p.input.SetText("")
	p.refreshDropdown()
}

// Invalid reports whether the picker shows its required-value error: it is
// required, has been blurred at least once and has nothing selected.
func (p *Picker) Invalid() bool {
	return p.opts.Required && p.blurredOnce && len(p.selected) == 0
}

// InvalidText returns the error text shown while Invalid.
func (p *Picker) InvalidText() string {
	if p.opts.InvalidText != "" {
		return p.opts.InvalidText
	}
	return p.opts.Localize("oneAttributeRequired", nil)
}

func (p *Picker) limitReached() bool {
	return p.opts.Limit > 0 && len(p.selected) >= p.opts.Limit
}

// AddAttribute appends a to the selection. It returns false without changes
// for nil, a name already selected, or a full selection; the last case also
// publishes LimitReached. On success the text is cleared and
// SelectionChanged is published.
func (p *Picker) AddAttribute(a *Attribute) bool {
	if a == nil || p.indexOf(a.Name) >= 0 {
		return false
	}
	if p.limitReached() {
		log.Debug("picker: limit %d reached, %q refused", p.opts.Limit, a.Name)
		p.opts.Bus.Publish(LimitReached{Limit: p.opts.Limit})
		return false
	}

	p.selected = append(p.selected, *a)
	p.input.SetText("")
	p.refreshDropdown()
	p.opts.Bus.Publish(SelectionChanged{Selected: p.Selected()})
	return true
}

// RemoveAt removes the selected attribute at i and publishes SelectionChanged.
func (p *Picker) RemoveAt(i int) bool {
	return p.removeAt(i, focus.TriggerProgrammatic, false)
}

func (p *Picker) removeAt(i int, t focus.Trigger, handleFocus bool) bool {
	if i < 0 || i >= len(p.selected) {
		return false
	}
	onChip := p.router.Focused().Kind == focus.KindItem
	p.router.Deleted(p.chipLayout(), i, t, handleFocus)
	p.selected = append(p.selected[:i], p.selected[i+1:]...)
	if onChip && p.router.Focused() == focus.External {
		p.focusInput()
	}
	p.refreshDropdown()
	p.opts.Bus.Publish(SelectionChanged{Selected: p.Selected()})
	return true
}

func (p *Picker) indexOf(name string) int {
	for i, a := range p.selected {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// CommitText applies Enter: the highlighted candidate is added, otherwise
// the typed text is committed as a freeform entry. A hidden dropdown still
// keeps its highlight.
func (p *Picker) CommitText() bool {
	if c, ok := p.dropdown.Highlighted(); ok {
		return p.AddAttribute(&c)
	}
	return p.commitFreeform()
}

// commitFreeform adds the trimmed input text. A case-insensitive match of a
// candidate name adds that candidate with its own casing; a case-insensitive
// duplicate of a selection is ignored.
func (p *Picker) commitFreeform() bool {
	if !p.opts.AllowFreeform {
		return false
	}
	text := strings.TrimSpace(p.input.Text())
	if text == "" {
		return false
	}
	for _, a := range p.selected {
		if fuzzy.EqualFold(a.Name, text) {
			log.Debug("picker: %q already selected", text)
			return false
		}
	}
	for _, c := range p.candidates {
		if fuzzy.EqualFold(c.Name, text) {
			return p.AddAttribute(&c)
		}
	}
	return p.AddAttribute(&Attribute{Name: text, Value: text})
}

// available returns the candidates not yet selected.
func (p *Picker) available() []Attribute {
	out := make([]Attribute, 0, len(p.candidates))
	for _, c := range p.candidates {
		if p.indexOf(c.Name) < 0 {
			out = append(out, c)
		}
	}
	return out
}

func (p *Picker) refreshDropdown() {
	p.dropdown.SetItems(p.available())
	p.dropdown.SetFilter(p.input.Text())
}

func (p *Picker) chipLayout() focus.Layout {
	return focus.Layout{Items: len(p.selected)}
}

// SetFocused gives or takes keyboard focus. Losing focus marks the picker as
// blurred for required validation.
func (p *Picker) SetFocused(focused bool) {
	if p.focused == focused {
		return
	}
	p.focused = focused
	if focused {
		if p.router.Focused() == focus.External {
			p.focusInput()
		}
		return
	}
	p.blurredOnce = true
	p.input.SetFocused(false)
}

// IsFocused returns the focus state.
func (p *Picker) IsFocused() bool {
	return p.focused
}

// focusInput moves focus to the text input and sets the initial highlight:
// none for freeform pickers, the first candidate otherwise.
func (p *Picker) focusInput() {
	p.router.Blur()
	p.input.SetFocused(p.focused)
	if p.opts.AllowFreeform || p.dropdown.Len() == 0 {
		p.dropdown.SetHighlight(NoHighlight)
	} else {
		p.dropdown.SetHighlight(0)
	}
}

func (p *Picker) focusChip(i int) {
	if i < 0 || i >= len(p.selected) {
		return
	}
	p.router.Focus(focus.Item(i))
	p.input.SetFocused(false)
}

// Invalidate marks the picker for re-render.
func (p *Picker) Invalidate() {
	p.input.Invalidate()
	p.dropdown.Invalidate()
}

// HandleInput processes a raw key sequence.
func (p *Picker) HandleInput(data string) {
	k := key.ParseKey(data)
	if p.router.Focused().Kind == focus.KindItem {
		p.handleChipKey(k)
		return
	}
	p.handleInputKey(k, data)
}

func (p *Picker) handleInputKey(k key.Key, data string) {
	switch k.Type {
	case key.KeyEscape:
		if p.opts.AllowFreeform {
			p.dropdown.SetHighlight(NoHighlight)
		}
		return
	case key.KeyLeft, key.KeyBackspace:
		if p.input.CursorPos() == 0 && len(p.selected) > 0 {
			p.focusChip(len(p.selected) - 1)
			return
		}
	case key.KeyUp:
		p.dropdown.Prev()
		return
	case key.KeyDown:
		p.dropdown.Next()
		return
	case key.KeyEnter:
		p.CommitText()
		return
	case key.KeyTab:
		p.focusChip(0)
		return
	case key.KeyBackTab:
		p.focusChip(len(p.selected) - 1)
		return
	}

	before := p.input.Text()
	p.input.HandleInput(data)
	if p.input.Text() == before {
		return
	}
	p.dropdown.SetFilter(p.input.Text())
	if p.opts.AllowFreeform {
		p.dropdown.SetHighlight(NoHighlight)
	} else {
		p.dropdown.SetHighlight(0)
	}
}

func (p *Picker) handleChipKey(k key.Key) {
	l := p.chipLayout()
	i := p.router.Focused().Index

	switch k.Type {
	case key.KeyBackspace:
		p.removeAt(i, focus.TriggerBackspace, true)
	case key.KeyDelete:
		p.removeAt(i, focus.TriggerDelete, true)
	case key.KeyLeft:
		p.moveChip(l, focus.ActionLeft)
	case key.KeyRight:
		p.moveChip(l, focus.ActionRight)
	case key.KeyUp:
		p.router.Navigate(l, focus.ActionUp)
	case key.KeyDown:
		if !p.router.Navigate(l, focus.ActionDown) {
			p.focusInput()
		}
	case key.KeyHome:
		p.router.Navigate(l, focus.ActionHome)
	case key.KeyEnd:
		p.router.Navigate(l, focus.ActionEnd)
	case key.KeyTab, key.KeyBackTab, key.KeyEscape:
		p.focusInput()
	case key.KeyRune:
		if k.Rune == 'x' && !k.Alt {
			p.removeAt(i, focus.TriggerProgrammatic, true)
		}
	}
}

// moveChip moves along the chip row; moving forward past the last chip
// returns to the input, moving back past the first stays put.
func (p *Picker) moveChip(l focus.Layout, a focus.Action) {
	forward := (a == focus.ActionRight) != (p.opts.Direction == focus.RTL)
	if !p.router.Navigate(l, a) && forward {
		p.focusInput()
	}
}

// Status describes the active element: the remove hint of a focused chip or
// the add hint of the highlighted candidate.
func (p *Picker) Status() string {
	if f := p.router.Focused(); f.Kind == focus.KindItem && f.Index < len(p.selected) {
		return p.opts.Localize("picker_remove_value", map[string]any{"Value": p.selected[f.Index].Name})
	}
	if c, ok := p.dropdown.Highlighted(); ok && !p.opts.HideDropdown {
		return p.opts.Localize("picker_add_value", map[string]any{"Value": c.Name})
	}
	return ""
}

// Render draws the chip row, the input line, the invalid message and, while
// the input has focus, the dropdown.
func (p *Picker) Render(out *tui.RenderBuffer, w int) {
	pal := theme.Current().Palette
	f := p.router.Focused()

	if len(p.selected) > 0 {
		parts := make([]string, len(p.selected))
		for i, a := range p.selected {
			c := NewChip(Item{Name: a.Name, Value: a.Value, Deletable: true})
			c.SetFocused(p.focused && f == focus.Item(i))
			parts[i] = c.Label()
		}
		for _, row := range wrapParts(parts, w) {
			out.WriteLine(row)
		}
	}

	p.input.Render(out, w)

	if p.Invalid() {
		out.WriteLines(width.Wrap(pal.Error.Apply(p.InvalidText()), w))
	}

	if p.focused && f == focus.External && !p.opts.HideDropdown {
		p.dropdown.Render(out, w)
	}
}
