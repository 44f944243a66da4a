// ABOUTME: Tests for the widget base: pooled buffers, scheduler coalescing, cursor extraction
// ABOUTME: Uses a small mock component to fill render buffers

package tui

import (
	"testing"
)

type mockComponent struct {
	lines []string
	dirty bool
}

func (m *mockComponent) Render(out *RenderBuffer, width int) {
	out.WriteLines(m.lines)
}

func (m *mockComponent) Invalidate() {
	m.dirty = true
}

func TestRenderString(t *testing.T) {
	t.Parallel()

	c := &mockComponent{lines: []string{"hello", "world"}}
	if got := RenderString(c, 80); got != "hello\nworld" {
		t.Errorf("unexpected frame: %q", got)
	}
}

func TestRenderBuffer_Pool(t *testing.T) {
	t.Parallel()

	buf := AcquireBuffer()
	buf.WriteLine("line1")
	buf.WriteLine("line2")

	if buf.Len() != 2 {
		t.Errorf("Len() = %d, want 2", buf.Len())
	}
	if buf.String() != "line1\nline2" {
		t.Errorf("String() = %q", buf.String())
	}

	ReleaseBuffer(buf)

	// Re-acquire should give a clean buffer
	buf2 := AcquireBuffer()
	if buf2.Len() != 0 {
		t.Errorf("re-acquired buffer Len() = %d, want 0", buf2.Len())
	}
	ReleaseBuffer(buf2)
}

func TestScheduler_Coalesces(t *testing.T) {
	t.Parallel()

	notified := 0
	s := NewScheduler(func() { notified++ })

	if !s.Request() {
		t.Fatal("first request should schedule")
	}
	if s.Request() || s.Request() {
		t.Fatal("requests while pending should coalesce")
	}
	if notified != 1 {
		t.Errorf("notify called %d times, want 1", notified)
	}
	if !s.Pending() {
		t.Fatal("expected pending")
	}
	if !s.Take() {
		t.Fatal("Take should report the pending pass")
	}
	if s.Take() {
		t.Fatal("second Take should find nothing pending")
	}
	s.Request()
	if notified != 2 {
		t.Errorf("notify called %d times, want 2", notified)
	}
}

func TestExtractCursor(t *testing.T) {
	t.Parallel()

	lines := []string{"first", "ab" + CursorMarker + "cd"}
	row, col := ExtractCursor(lines)
	if row != 1 || col != 2 {
		t.Errorf("ExtractCursor = (%d, %d), want (1, 2)", row, col)
	}
	if lines[1] != "abcd" {
		t.Errorf("marker not stripped: %q", lines[1])
	}

	row, col = ExtractCursor([]string{"none"})
	if row != -1 || col != -1 {
		t.Errorf("expected (-1, -1), got (%d, %d)", row, col)
	}
}
