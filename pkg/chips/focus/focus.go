// ABOUTME: Focus router for a collapsible chip row: arrow navigation, deletion hand-off, refit redirection
// ABOUTME: Operates on a Layout snapshot (item count, hidden tail, controls) independent of any renderer

package focus

// Kind distinguishes the focusable element types of a chip row.
type Kind int

const (
	KindExternal Kind = iota // Outside the row: the picker's input, or nothing
	KindItem                 // A visible chip
	KindShowMore             // The "+N more" control
	KindShowLess             // The "hide" control
)

// Element identifies a focus target. Index is only meaningful for KindItem.
type Element struct {
	Kind  Kind
	Index int
}

var (
	// External is the focus anchor outside the row.
	External = Element{Kind: KindExternal, Index: -1}
	// ShowMore is the overflow indicator shown while collapsed.
	ShowMore = Element{Kind: KindShowMore, Index: -1}
	// ShowLess is the control that collapses an expanded row.
	ShowLess = Element{Kind: KindShowLess, Index: -1}
)

// Item returns the element for the chip at index i.
func Item(i int) Element {
	return Element{Kind: KindItem, Index: i}
}

// IsControl reports whether e is one of the show-more/show-less controls.
func (e Element) IsControl() bool {
	return e.Kind == KindShowMore || e.Kind == KindShowLess
}

// Direction is the text direction used to interpret Left/Right.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// Layout is a snapshot of what a chip row currently shows.
type Layout struct {
	Items       int  // number of chips
	Hidden      int  // trailing chips collapsed away
	Collapsed   bool // row is in the collapsed (single line) state
	Collapsible bool // overflow behavior enabled
	Overflows   bool // chips would not fit on one row if collapsed
}

// VisibleItems returns how many chips are rendered.
func (l Layout) VisibleItems() int {
	if !l.Collapsed {
		return l.Items
	}
	return l.Items - l.Hidden
}

// ShowMoreVisible reports whether the "+N more" control is rendered.
func (l Layout) ShowMoreVisible() bool {
	return l.Collapsible && l.Collapsed && l.Hidden > 0
}

// ShowLessVisible reports whether the "hide" control is rendered.
func (l Layout) ShowLessVisible() bool {
	return l.Collapsible && !l.Collapsed && l.Overflows
}

// Focusables returns the visible focusable elements in navigation order:
// visible chips, then show-more, then show-less.
func (l Layout) Focusables() []Element {
	n := l.VisibleItems()
	out := make([]Element, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, Item(i))
	}
	if l.ShowMoreVisible() {
		out = append(out, ShowMore)
	}
	if l.ShowLessVisible() {
		out = append(out, ShowLess)
	}
	return out
}

// IndexOf returns the position of e among the focusables, or -1.
func (l Layout) IndexOf(e Element) int {
	for i, f := range l.Focusables() {
		if f == e {
			return i
		}
	}
	return -1
}

// LastVisible returns the last focusable element, or External for an empty row.
func (l Layout) LastVisible() Element {
	fs := l.Focusables()
	if len(fs) == 0 {
		return External
	}
	return fs[len(fs)-1]
}

// Action is a navigation request.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionHome
	ActionEnd
)

// Trigger is what caused a chip to be deleted.
type Trigger int

const (
	TriggerBackspace    Trigger = iota // Backspace on the focused chip
	TriggerDelete                      // Delete on the focused chip
	TriggerProgrammatic                // Delete icon or host call
)

// AfterBackspace returns the position, in the list after removal, that receives focus when
// the element at pos of an n-element list is removed with Backspace. -1 means External.
func AfterBackspace(pos, n int) int {
	if n <= 1 {
		return -1
	}
	if pos == 0 {
		return 0
	}
	return pos - 1
}

// AfterDelete is AfterBackspace for the Delete key: focus stays anchored on the next element,
// or the previous one when the last element was removed.
func AfterDelete(pos, n int) int {
	if n <= 1 {
		return -1
	}
	if pos == n-1 {
		return pos - 1
	}
	return pos
}

// Router tracks the focused element of one chip row.
// The zero value has focus on External.
type Router struct {
	focused Element
	dir     Direction
}

// NewRouter creates a Router for the given text direction.
func NewRouter(dir Direction) *Router {
	return &Router{focused: External, dir: dir}
}

// SetDirection changes how Left/Right are interpreted.
func (r *Router) SetDirection(dir Direction) {
	r.dir = dir
}

// Focused returns the focused element.
func (r *Router) Focused() Element {
	return r.focused
}

// Focus moves focus to e without validation.
func (r *Router) Focus(e Element) {
	r.focused = e
}

// Blur hands focus to External.
func (r *Router) Blur() {
	r.focused = External
}

// Navigate moves focus within l according to a. Movement clamps at the ends.
// It returns false when focus did not move, so a host can route the key elsewhere.
func (r *Router) Navigate(l Layout, a Action) bool {
	fs := l.Focusables()
	if len(fs) == 0 {
		return false
	}
	pos := l.IndexOf(r.focused)

	target := pos
	switch r.resolve(a) {
	case ActionHome:
		target = 0
	case ActionEnd:
		target = len(fs) - 1
	case ActionUp:
		if pos > 0 {
			target = pos - 1
		}
	case ActionDown:
		if pos >= 0 && pos < len(fs)-1 {
			target = pos + 1
		}
	}
	if target < 0 || target == pos {
		return false
	}
	r.focused = fs[target]
	return true
}

// resolve folds Left/Right onto Up/Down (previous/next) honoring the text direction.
func (r *Router) resolve(a Action) Action {
	switch a {
	case ActionLeft:
		if r.dir == RTL {
			return ActionDown
		}
		return ActionUp
	case ActionRight:
		if r.dir == RTL {
			return ActionUp
		}
		return ActionDown
	}
	return a
}

// Deleted updates focus after the chip at index was removed from the row described by before.
// Focus only moves when the deleted chip held it and the trigger handles focus; otherwise
// item indices after the removed chip are shifted down.
func (r *Router) Deleted(before Layout, index int, t Trigger, handleFocus bool) {
	if r.focused != Item(index) {
		if r.focused.Kind == KindItem && r.focused.Index > index {
			r.focused.Index--
		}
		return
	}
	if t == TriggerProgrammatic && !handleFocus {
		r.focused = External
		return
	}

	fs := before.Focusables()
	pos := before.IndexOf(Item(index))
	if pos < 0 {
		r.focused = External
		return
	}

	next := AfterDelete(pos, len(fs))
	if t == TriggerBackspace {
		next = AfterBackspace(pos, len(fs))
	}
	if next < 0 {
		r.focused = External
		return
	}
	after := append(fs[:pos:pos], fs[pos+1:]...)
	target := after[next]
	if target.Kind == KindItem && target.Index > index {
		target.Index--
	}
	r.focused = target
}

// Toggled is called after the show-more/show-less control flipped the collapsed state.
// While the row holds focus, focus lands on the last visible focusable of after.
func (r *Router) Toggled(after Layout, hasFocus bool) {
	if !hasFocus {
		return
	}
	r.focused = after.LastVisible()
}

// Refit applies a new fit result. Focus on a chip that is now hidden, or on a control that is
// no longer rendered, is redirected to the last visible focusable. Reports whether focus moved.
func (r *Router) Refit(after Layout) bool {
	var lost bool
	switch r.focused.Kind {
	case KindItem:
		lost = r.focused.Index >= after.VisibleItems()
	case KindShowMore:
		lost = !after.ShowMoreVisible()
	case KindShowLess:
		lost = !after.ShowLessVisible()
	}
	if !lost {
		return false
	}
	r.focused = after.LastVisible()
	return true
}
