// ABOUTME: PickerModel hosts a component.Picker in a Bubble Tea program
// ABOUTME: Done validates the required rule before quitting; bus events feed the status line

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

// PickerModel is the Bubble Tea model for the attribute picker.
type PickerModel struct {
	picker *component.Picker
	sh     *shared
	keys   KeyMap
	help   help.Model
	title  string
	width  int
	height int

	localize component.Localizer
	copy     func(string) error

	done      bool
	cancelled bool
}

// NewPickerModel wraps p. The picker receives focus immediately.
func NewPickerModel(p *component.Picker, opts Options) PickerModel {
	sh := &shared{}
	sh.subscribe(opts)
	p.SetFocused(true)
	return PickerModel{
		picker: p,
		sh:     sh,
		keys:   opts.keyMap(),
		help:   help.New(),
		title:  opts.Title,

		localize: opts.localizer(),
		copy:     opts.copier(),
	}
}

// Picker returns the hosted widget.
func (m PickerModel) Picker() *component.Picker { return m.picker }

// Selected returns the picker's selection.
func (m PickerModel) Selected() []component.Attribute { return m.picker.Selected() }

// Done reports whether the user confirmed the selection.
func (m PickerModel) Done() bool { return m.done }

// Cancelled reports whether the user cancelled.
func (m PickerModel) Cancelled() bool { return m.cancelled }

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.picker.Dropdown().SetMaxHeight(max(msg.Height-8, 3))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Done):
			return m.finish()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.sh.copyText(m.copyPayload(), m.copy, m.localize)
			return m, nil
		}
		if raw := rawInput(msg); raw != "" {
			m.sh.status = ""
			m.picker.HandleInput(raw)
		}
	}
	return m, nil
}

// finish blurs the picker so the required rule applies, and quits only when
// the selection is valid.
func (m PickerModel) finish() (tea.Model, tea.Cmd) {
	m.picker.SetFocused(false)
	if m.picker.Invalid() {
		log.Debug("picker: done refused, selection invalid")
		m.picker.SetFocused(true)
		m.sh.status = m.picker.InvalidText()
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

// copyPayload is the focused chip's value, or every selected value one per line.
func (m PickerModel) copyPayload() string {
	sel := m.picker.Selected()
	if f := m.picker.Focused(); f.Kind == focus.KindItem && f.Index < len(sel) {
		return sel[f.Index].Value
	}
	values := make([]string, len(sel))
	for i, a := range sel {
		values[i] = a.Value
	}
	return strings.Join(values, "\n")
}

// View implements tea.Model.
func (m PickerModel) View() string {
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	m.picker.Render(buf, contentWidth(m.width))
	tui.ExtractCursor(buf.Lines)

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
		status = m.picker.Status()
	}
	if status != "" {
		parts = append(parts, st.Status.Render(status))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
