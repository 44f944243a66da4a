// ABOUTME: ListModel hosts a component.ChipList, or a ChipInput feeding one, in a Bubble Tea program
// ABOUTME: Resizes request a fit; requests coalesce into one fitMsg; the host removes chips on ItemDeleted

package btea

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/multiselect-go/internal/log"
	"github.com/mauromedda/multiselect-go/pkg/chips/focus"
	"github.com/mauromedda/multiselect-go/pkg/tui"
	"github.com/mauromedda/multiselect-go/pkg/tui/component"
)

// ListModel is the Bubble Tea model for a chip list, optionally fed by a
// text box.
type ListModel struct {
	list  *component.ChipList
	input *component.ChipInput
	sh    *shared
	keys  KeyMap
	help  help.Model
	title string
	width int
	fits  int

	localize component.Localizer
	copy     func(string) error

	done      bool
	cancelled bool
}

// NewListModel wraps cl. Unless the list removes chips itself, the host
// removes a chip when its delete affordance publishes ItemDeleted.
func NewListModel(cl *component.ChipList, opts Options, autoRemove bool) ListModel {
	sh := &shared{}
	sh.subscribe(opts)
	if opts.Bus != nil && !autoRemove {
		opts.Bus.Subscribe(func(e component.Event) {
			if ev, ok := e.(component.ItemDeleted); ok {
				sh.removals = append(sh.removals, ev.Item.Key())
			}
		})
	}
	cl.Scheduler().SetNotify(func() { sh.fitRequested = true })
	if cl.Scheduler().Pending() {
		sh.fitRequested = true
	}
	cl.SetFocused(true)
	return ListModel{
		list:  cl,
		sh:    sh,
		keys:  opts.keyMap(),
		help:  help.New(),
		title: opts.Title,

		localize: opts.localizer(),
		copy:     opts.copier(),
	}
}

// NewChipInputModel wraps ci; typed entries become chips of its list.
func NewChipInputModel(ci *component.ChipInput, opts Options, autoRemove bool) ListModel {
	m := NewListModel(ci.List(), opts, autoRemove)
	m.input = ci
	ci.SetFocused(true)
	return m
}

// List returns the hosted widget.
func (m ListModel) List() *component.ChipList { return m.list }

// Items returns the chips left in the list.
func (m ListModel) Items() []component.Item { return m.list.Items() }

// Done reports whether the user confirmed.
func (m ListModel) Done() bool { return m.done }

// Cancelled reports whether the user cancelled.
func (m ListModel) Cancelled() bool { return m.cancelled }

// Fits returns how many fit passes the host has run.
func (m ListModel) Fits() int { return m.fits }

// Init implements tea.Model.
func (m ListModel) Init() tea.Cmd {
	return m.sh.takeFit()
}

// Update implements tea.Model.
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.list.RequestFit()

	case fitMsg:
		// A render since the request has already run the pass.
		if !m.list.Scheduler().Pending() {
			break
		}
		m.list.Fit(contentWidth(m.width))
		m.fits++
		log.Debug("list: fit pass %d at width %d", m.fits, contentWidth(m.width))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Done):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.sh.copyText(m.copyPayload(), m.copy, m.localize)
			return m, nil
		}
		if raw := rawInput(msg); raw != "" {
			m.sh.status = ""
			if m.input != nil {
				m.input.HandleInput(raw)
			} else {
				m.list.HandleInput(raw)
			}
			m.applyRemovals()
		}
	}
	return m, m.sh.takeFit()
}

func (m ListModel) applyRemovals() {
	for _, k := range m.sh.removals {
		m.list.RemoveKey(k)
	}
	m.sh.removals = m.sh.removals[:0]
	if m.input != nil {
		m.input.SetFocused(true)
	}
}

// copyPayload is the focused chip's key, or every key one per line.
func (m ListModel) copyPayload() string {
	items := m.list.Items()
	if f := m.list.Focused(); m.list.IsFocused() && f.Kind == focus.KindItem && f.Index < len(items) {
		return items[f.Index].Key()
	}
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.Key()
	}
	return strings.Join(keys, "\n")
}

// View implements tea.Model.
func (m ListModel) View() string {
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	if m.input != nil {
		m.input.Render(buf, contentWidth(m.width))
		tui.ExtractCursor(buf.Lines)
	} else {
		m.list.Render(buf, contentWidth(m.width))
	}

	st := Styles()
	var body strings.Builder
	if m.title != "" {
		body.WriteString(st.Title.Render(m.title))
		body.WriteByte('\n')
	}
	body.WriteString(buf.String())

	parts := []string{st.Frame.Render(body.String())}
	status := m.sh.status
	if status == "" {
		status = m.list.Status()
	}
	if status != "" {
		parts = append(parts, st.Status.Render(status))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
