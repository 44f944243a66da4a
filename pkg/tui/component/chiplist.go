// ABOUTME: ChipList is a collapsible row of chips with a "+N more" control and keyboard focus routing
// ABOUTME: Fit passes are coalesced through tui.Scheduler and run at most once per render

package component

import (
	"strings"

	"github.com/mauromedda/multiselect-go/internal/log"
	"github.com/mauromedda/multiselect-go/pkg/chips/fit"
	"github.com/mauromedda/multiselect-go/pkg/chips/focus"
	"github.com/mauromedda/multiselect-go/pkg/tui"
	"github.com/mauromedda/multiselect-go/pkg/tui/key"
	"github.com/mauromedda/multiselect-go/pkg/tui/theme"
	"github.com/mauromedda/multiselect-go/pkg/tui/width"
)

// chipGap is the column between adjacent chips and controls.
const chipGap = 1

// ChipListOptions configures a ChipList.
type ChipListOptions struct {
	Collapsible bool            // collapse overflowing chips behind "+N more"
	AutoRemove  bool            // delete affordances remove the chip immediately
	Direction   focus.Direction // RTL swaps Left/Right
	Localize    Localizer
	Bus         *Bus
	Measure     tui.Measurer
	Description string // optional label line above the chips
}

type deleteRequest struct {
	key         string
	trigger     focus.Trigger
	handleFocus bool
}

// ChipList is the list container widget.
type ChipList struct {
	opts ChipListOptions

	chips     []*Chip
	collapsed bool
	hidden    int
	overflows bool

	fitter *fit.Fitter
	router *focus.Router
	sched  *tui.Scheduler

	focused   bool
	lastWidth int
	pending   *deleteRequest
}

// NewChipList creates an empty list. Collapsible lists start collapsed.
func NewChipList(opts ChipListOptions) *ChipList {
	if opts.Localize == nil {
		opts.Localize = English
	}
	if opts.Measure == nil {
		opts.Measure = tui.DefaultMeasurer
	}
	return &ChipList{
		opts:      opts,
		collapsed: opts.Collapsible,
		fitter:    fit.NewFitter(),
		router:    focus.NewRouter(opts.Direction),
		sched:     tui.NewScheduler(nil),
	}
}

// Scheduler exposes the fit scheduler so a host can be notified when a
// layout pass is requested.
func (cl *ChipList) Scheduler() *tui.Scheduler {
	return cl.sched
}

// SetDirection changes the text direction.
func (cl *ChipList) SetDirection(dir focus.Direction) {
	cl.opts.Direction = dir
	cl.router.SetDirection(dir)
}

// Items returns a snapshot of the chips' data in order.
func (cl *ChipList) Items() []Item {
	out := make([]Item, len(cl.chips))
	for i, c := range cl.chips {
		out[i] = c.item
	}
	return out
}

// Len returns the number of chips.
func (cl *ChipList) Len() int {
	return len(cl.chips)
}

// Collapsed reports whether the list is in the collapsed state.
func (cl *ChipList) Collapsed() bool {
	return cl.collapsed
}

// Hidden returns the number of trailing chips collapsed away.
func (cl *ChipList) Hidden() int {
	return cl.hidden
}

// Layout returns the focus snapshot of the current state.
func (cl *ChipList) Layout() focus.Layout {
	return focus.Layout{
		Items:       len(cl.chips),
		Hidden:      cl.hidden,
		Collapsed:   cl.collapsed,
		Collapsible: cl.opts.Collapsible,
		Overflows:   cl.overflows,
	}
}

// Focused returns the element holding focus within the list.
func (cl *ChipList) Focused() focus.Element {
	return cl.router.Focused()
}

// FocusItem moves focus to the chip at i if it is visible.
func (cl *ChipList) FocusItem(i int) bool {
	if cl.Layout().IndexOf(focus.Item(i)) < 0 {
		return false
	}
	cl.router.Focus(focus.Item(i))
	cl.syncChipFocus()
	return true
}

// Add appends a chip and publishes ItemAdded. The first chip becomes the
// focus target when nothing in the list is focused.
func (cl *ChipList) Add(it Item) {
	cl.chips = append(cl.chips, NewChip(it))
	if cl.router.Focused() == focus.External {
		cl.router.Focus(focus.Item(0))
	}
	cl.syncChipFocus()
	cl.RequestFit()
	cl.opts.Bus.Publish(ItemAdded{Item: it})
}

// Remove deletes the chip at i. When it follows a delete affordance on the
// same chip (AutoRemove off), focus follows that affordance's rule; otherwise
// a chip that held focus hands it to the list's outside.
func (cl *ChipList) Remove(i int) bool {
	if i < 0 || i >= len(cl.chips) {
		return false
	}
	trig, hf := focus.TriggerProgrammatic, false
	if p := cl.pending; p != nil && p.key == cl.chips[i].item.Key() {
		trig, hf = p.trigger, p.handleFocus
	}
	cl.removeAt(i, trig, hf)
	return true
}

// RemoveKey deletes the first chip whose Key equals k.
func (cl *ChipList) RemoveKey(k string) bool {
	for i, c := range cl.chips {
		if c.item.Key() == k {
			return cl.Remove(i)
		}
	}
	return false
}

func (cl *ChipList) removeAt(i int, t focus.Trigger, handleFocus bool) {
	before := cl.Layout()
	cl.router.Deleted(before, i, t, handleFocus)

	removed := cl.chips[i]
	cl.chips = append(cl.chips[:i], cl.chips[i+1:]...)
	cl.pending = nil
	if !cl.hasKey(removed.item.Key()) {
		cl.fitter.Forget(removed.item.Key())
	}
	cl.hidden = min(cl.hidden, len(cl.chips))
	if cl.router.Focused() == focus.External && cl.focused && len(cl.chips) > 0 {
		cl.router.Focus(cl.Layout().LastVisible())
	}
	cl.syncChipFocus()
	cl.RequestFit()
}

func (cl *ChipList) hasKey(k string) bool {
	for _, c := range cl.chips {
		if c.item.Key() == k {
			return true
		}
	}
	return false
}

// requestDelete is the delete affordance of chip i: it notifies the host and,
// with AutoRemove, removes the chip.
func (cl *ChipList) requestDelete(i int, t focus.Trigger, handleFocus bool) {
	it := cl.chips[i].item
	if !it.Deletable {
		log.Debug("chiplist: chip %q is not deletable", it.Name)
		return
	}
	ev := ItemDeleted{Item: it, Index: i, HandleFocus: handleFocus}
	if cl.opts.AutoRemove {
		cl.opts.Bus.Publish(ev)
		cl.removeAt(i, t, handleFocus)
		return
	}
	// Recorded before publishing: a handler may remove the chip right away.
	cl.pending = &deleteRequest{key: it.Key(), trigger: t, handleFocus: handleFocus}
	cl.opts.Bus.Publish(ev)
}

// DeleteFocused runs the delete affordance of the focused chip as a
// programmatic deletion that moves focus like the Delete key.
func (cl *ChipList) DeleteFocused() bool {
	f := cl.router.Focused()
	if f.Kind != focus.KindItem {
		return false
	}
	cl.requestDelete(f.Index, focus.TriggerProgrammatic, true)
	return true
}

// Toggle flips between collapsed and expanded. Only collapsible lists toggle.
func (cl *ChipList) Toggle() {
	if !cl.opts.Collapsible {
		return
	}
	cl.collapsed = !cl.collapsed
	if cl.collapsed {
		cl.fit(cl.lastWidth)
	} else {
		cl.hidden = 0
	}
	cl.router.Toggled(cl.Layout(), cl.focused)
	cl.syncChipFocus()
}

// RequestFit schedules a fit pass for the next render. Repeated requests
// before that render coalesce into one pass.
func (cl *ChipList) RequestFit() {
	if cl.sched.Request() {
		log.Debug("chiplist: fit scheduled")
	}
}

// Fit runs a fit pass for container width w immediately and applies the
// refit focus rule.
func (cl *ChipList) Fit(w int) {
	cl.sched.Take()
	cl.fit(w)
	if cl.router.Refit(cl.Layout()) {
		log.Debug("chiplist: focus redirected to %+v after refit", cl.router.Focused())
	}
	cl.syncChipFocus()
}

func (cl *ChipList) fit(w int) {
	if w <= 0 {
		return
	}
	cl.lastWidth = w
	items := make([]fit.Measured, len(cl.chips))
	for i, c := range cl.chips {
		cw := c.Width(cl.opts.Measure)
		if cw > 0 {
			cw += chipGap
		}
		items[i] = fit.Measured{Key: c.item.Key(), Width: cw}
	}
	showMore := cl.opts.Measure(cl.showMoreLabel(len(cl.chips))) + chipGap

	// Every width carries its trailing gap; the last one on the row has
	// nothing after it, so the container gets that column back.
	res := cl.fitter.Fit(items, w+chipGap, showMore, true)
	cl.overflows = res.Hidden > 0
	if cl.opts.Collapsible && cl.collapsed {
		cl.hidden = res.Hidden
	} else {
		cl.hidden = 0
	}
	log.Debug("chiplist: fit width=%d chips=%d hidden=%d overflows=%v", w, len(cl.chips), cl.hidden, cl.overflows)
}

func (cl *ChipList) showMoreLabel(n int) string {
	return cl.opts.Localize("hiddenChildren", map[string]any{"Num": n})
}

func (cl *ChipList) hideLabel() string {
	return cl.opts.Localize("hide", nil)
}

// SetFocused sets whether the list holds keyboard focus. Gaining focus with
// no focused element focuses the first one.
func (cl *ChipList) SetFocused(focused bool) {
	cl.focused = focused
	if focused && cl.router.Focused() == focus.External {
		if fs := cl.Layout().Focusables(); len(fs) > 0 {
			cl.router.Focus(fs[0])
		}
	}
	cl.syncChipFocus()
}

// IsFocused returns the focus state.
func (cl *ChipList) IsFocused() bool {
	return cl.focused
}

func (cl *ChipList) syncChipFocus() {
	f := cl.router.Focused()
	for i, c := range cl.chips {
		c.SetFocused(cl.focused && f == focus.Item(i))
	}
}

// Status describes the focused chip for a host's status line: its name and,
// for deletable chips, the delete action. It is "" when no chip is focused.
func (cl *ChipList) Status() string {
	f := cl.router.Focused()
	if !cl.focused || f.Kind != focus.KindItem || f.Index >= len(cl.chips) {
		return ""
	}
	return cl.chips[f.Index].Describe(cl.opts.Localize)
}

// Invalidate forces a fit pass on the next render.
func (cl *ChipList) Invalidate() {
	cl.RequestFit()
}

// HandleInput processes a raw key sequence.
func (cl *ChipList) HandleInput(data string) {
	cl.HandleKey(key.ParseKey(data))
}

// HandleKey processes a parsed key and reports whether it was consumed.
// Navigation past either end is not consumed so a host can move focus on.
func (cl *ChipList) HandleKey(k key.Key) bool {
	l := cl.Layout()
	f := cl.router.Focused()

	var handled bool
	switch k.Type {
	case key.KeyLeft:
		handled = cl.router.Navigate(l, focus.ActionLeft)
	case key.KeyRight:
		handled = cl.router.Navigate(l, focus.ActionRight)
	case key.KeyUp:
		handled = cl.router.Navigate(l, focus.ActionUp)
	case key.KeyDown:
		handled = cl.router.Navigate(l, focus.ActionDown)
	case key.KeyHome:
		handled = cl.router.Navigate(l, focus.ActionHome)
	case key.KeyEnd:
		handled = cl.router.Navigate(l, focus.ActionEnd)
	case key.KeyBackspace, key.KeyDelete:
		if f.Kind != focus.KindItem {
			return false
		}
		t := focus.TriggerBackspace
		if k.Type == key.KeyDelete {
			t = focus.TriggerDelete
		}
		cl.requestDelete(f.Index, t, true)
		handled = true
	case key.KeyEnter:
		handled = cl.activate(f)
	case key.KeyRune:
		switch {
		case k.IsSpace():
			handled = cl.activate(f)
		case k.Rune == 'x' && !k.Alt:
			handled = cl.DeleteFocused()
		}
	}
	cl.syncChipFocus()
	return handled
}

func (cl *ChipList) activate(f focus.Element) bool {
	if !f.IsControl() {
		return false
	}
	cl.Toggle()
	return true
}

// Render fits the chips to w when the width changed or a fit is pending,
// then draws either the collapsed single row or the expanded wrapped rows.
func (cl *ChipList) Render(out *tui.RenderBuffer, w int) {
	if cl.sched.Pending() || w != cl.lastWidth {
		cl.Fit(w)
	}
	p := theme.Current().Palette

	if cl.opts.Description != "" {
		out.WriteLine(width.TruncateToWidth(p.Muted.Apply(cl.opts.Description), w))
	}

	l := cl.Layout()
	f := cl.router.Focused()
	visible := l.VisibleItems()

	parts := make([]string, 0, visible+1)
	for i := 0; i < visible; i++ {
		parts = append(parts, cl.chips[i].Label())
	}
	if l.ShowMoreVisible() {
		parts = append(parts, cl.controlLabel(cl.showMoreLabel(cl.hidden), f == focus.ShowMore, p))
	}
	if l.ShowLessVisible() {
		parts = append(parts, cl.controlLabel(cl.hideLabel(), f == focus.ShowLess, p))
	}

	if cl.collapsed {
		out.WriteLine(width.TruncateToWidth(strings.Join(parts, " "), w))
	} else {
		for _, row := range wrapParts(parts, w) {
			out.WriteLine(row)
		}
	}

	if cl.focused && f.Kind == focus.KindItem && f.Index < len(cl.chips) {
		if it := cl.chips[f.Index].item; it.HasTooltip() {
			out.WriteLines(width.Wrap(p.Muted.Apply(it.Name), w))
		}
	}
}

func (cl *ChipList) controlLabel(text string, focused bool, p theme.Palette) string {
	if focused {
		return p.ControlFocused.Apply(text)
	}
	return p.Control.Apply(text)
}

// wrapParts lays styled parts out into rows of at most w columns separated by
// one space. A part wider than w gets a row of its own, truncated.
func wrapParts(parts []string, w int) []string {
	var rows []string
	var cur strings.Builder
	col := 0
	for _, part := range parts {
		pw := width.VisibleWidth(part)
		if col > 0 && col+chipGap+pw > w {
			rows = append(rows, cur.String())
			cur.Reset()
			col = 0
		}
		if col > 0 {
			cur.WriteByte(' ')
			col += chipGap
		}
		if pw > w {
			part = width.TruncateToWidth(part, w)
			pw = w
		}
		cur.WriteString(part)
		col += pw
	}
	if col > 0 || len(rows) == 0 {
		rows = append(rows, cur.String())
	}
	return rows
}
