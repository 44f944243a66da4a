// ABOUTME: Tests for the candidate dropdown
// ABOUTME: Covers wraparound navigation, the none highlight, filtering, viewport scrolling, rendering

package component

import (
	"strings"
	"testing"

	"github.com/mauromedda/multiselect-go/pkg/tui"
	"github.com/mauromedda/multiselect-go/pkg/tui/fuzzy"
)

func makeCandidates() []Attribute {
	return []Attribute{
		{Name: "one", Value: "1"},
		{Name: "two", Value: "2"},
		{Name: "three", Value: "3"},
		{Name: "four", Value: "4"},
		{Name: "fourteen", Value: "14"},
	}
}

func newTestDropdown() *Dropdown {
	d := NewDropdown(fuzzy.ModeSubstring)
	d.SetItems(makeCandidates())
	return d
}

func TestDropdown_New(t *testing.T) {
	t.Parallel()

	d := newTestDropdown()
	if d.Highlight() != NoHighlight {
		t.Errorf("expected no highlight, got %d", d.Highlight())
	}
	if _, ok := d.Highlighted(); ok {
		t.Error("Highlighted should report nothing")
	}
	if d.Len() != 5 {
		t.Errorf("expected 5 candidates, got %d", d.Len())
	}
}

func TestDropdown_Navigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start int
		keys  []string
		want  int
	}{
		{name: "down from none selects first", start: NoHighlight, keys: []string{"\x1b[B"}, want: 0},
		{name: "up from none selects last", start: NoHighlight, keys: []string{"\x1b[A"}, want: 4},
		{name: "down from last wraps to first", start: 4, keys: []string{"\x1b[B"}, want: 0},
		{name: "up from first wraps to last", start: 0, keys: []string{"\x1b[A"}, want: 4},
		{name: "down moves by one", start: 1, keys: []string{"\x1b[B", "\x1b[B"}, want: 3},
		{name: "full cycle returns", start: 2, keys: []string{"\x1b[B", "\x1b[B", "\x1b[B", "\x1b[B", "\x1b[B"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newTestDropdown()
			d.SetHighlight(tt.start)
			for _, k := range tt.keys {
				d.HandleInput(k)
			}
			if d.Highlight() != tt.want {
				t.Errorf("highlight = %d, want %d", d.Highlight(), tt.want)
			}
		})
	}
}

func TestDropdown_EmptyNavigation(t *testing.T) {
	t.Parallel()

	d := NewDropdown(fuzzy.ModeSubstring)
	d.Next()
	d.Prev()
	if d.Highlight() != NoHighlight {
		t.Errorf("empty dropdown must stay unhighlighted, got %d", d.Highlight())
	}
}

func TestDropdown_SetHighlightOutOfRange(t *testing.T) {
	t.Parallel()

	d := newTestDropdown()
	d.SetHighlight(9)
	if d.Highlight() != NoHighlight {
		t.Errorf("out of range highlight should clear, got %d", d.Highlight())
	}
}

func TestDropdown_Filter(t *testing.T) {
	t.Parallel()

	d := newTestDropdown()
	d.SetFilter("FOUR")

	got := d.Visible()
	if len(got) != 2 || got[0].Name != "four" || got[1].Name != "fourteen" {
		t.Fatalf("filtered = %v", got)
	}
	if d.Filter() != "FOUR" {
		t.Errorf("Filter() = %q", d.Filter())
	}

	d.SetFilter("xyz")
	if d.Len() != 0 {
		t.Errorf("expected no matches, got %d", d.Len())
	}

	d.SetFilter("")
	if d.Len() != 5 {
		t.Errorf("clearing the filter restores all, got %d", d.Len())
	}
}

func TestDropdown_FilterClampsHighlight(t *testing.T) {
	t.Parallel()

	d := newTestDropdown()
	d.SetHighlight(4)
	d.SetFilter("t")

	if d.Highlight() >= d.Len() {
		t.Errorf("highlight %d out of bounds for %d candidates", d.Highlight(), d.Len())
	}
}

func TestDropdown_RenderViewport(t *testing.T) {
	t.Parallel()

	d := newTestDropdown()
	d.SetMaxHeight(3)
	d.SetHighlight(3)

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	d.Render(buf, 40)

	if buf.Len() != 3 {
		t.Fatalf("expected 3 lines with maxHeight=3, got %d", buf.Len())
	}
	found := false
	for _, line := range buf.Lines {
		if strings.Contains(line, "four") && strings.Contains(line, "\x1b[") {
			found = true
		}
	}
	if !found {
		t.Errorf("highlighted 'four' should be visible and styled: %q", buf.Lines)
	}
	if strings.Contains(buf.Lines[0], "one") {
		t.Error("viewport should have scrolled past 'one'")
	}
}

func TestDropdown_RenderEmpty(t *testing.T) {
	t.Parallel()

	d := NewDropdown(fuzzy.ModeSubstring)
	if out := tui.RenderString(d, 40); out != "" {
		t.Errorf("empty dropdown rendered %q", out)
	}
}
