// ABOUTME: Tests for chip display text, truncation, tooltips and rendering
// ABOUTME: Uses testify for assertions

package component

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mauromedda/multiselect-go/pkg/tui"
)

func TestItem_DisplayText(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 45)
	tests := []struct {
		name        string
		item        Item
		wantText    string
		wantTooltip bool
	}{
		{name: "short name", item: Item{Name: "four"}, wantText: "four"},
		{name: "exactly default max", item: Item{Name: strings.Repeat("b", 40)}, wantText: strings.Repeat("b", 40)},
		{name: "truncated at default", item: Item{Name: long}, wantText: strings.Repeat("a", 40) + "...", wantTooltip: true},
		{name: "custom max", item: Item{Name: "Mathematics", MaxChars: 4}, wantText: "Math...", wantTooltip: true},
		{name: "negative disables", item: Item{Name: long, MaxChars: -1}, wantText: long},
		{name: "short text wins", item: Item{Name: "Mathematics", ShortText: "Math"}, wantText: "Math", wantTooltip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantText, tt.item.DisplayText())
			assert.Equal(t, tt.wantTooltip, tt.item.HasTooltip())
		})
	}
}

func TestItem_Key(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4", Item{Name: "four", Value: "4"}.Key())
	assert.Equal(t, "four", Item{Name: "four"}.Key())
}

func TestChip_Labels(t *testing.T) {
	t.Parallel()

	c := NewChip(Item{Name: "four", Deletable: true})
	assert.Equal(t, "[ four × ]", c.PlainLabel())
	assert.Equal(t, 10, c.Width(func(s string) int { return len([]rune(s)) }))

	ro := NewChip(Item{Name: "four"})
	assert.Equal(t, "[ four ]", ro.PlainLabel())
	assert.Equal(t, 3, ro.Width(func(string) int { return 3 }))
}

func TestChip_RenderFocus(t *testing.T) {
	t.Parallel()

	c := NewChip(Item{Name: "four", Deletable: true})
	plain := tui.RenderString(c, 40)
	c.SetFocused(true)
	focused := tui.RenderString(c, 40)

	assert.True(t, c.IsFocused())
	assert.Contains(t, plain, "four")
	assert.NotEqual(t, plain, focused, "focused chip is styled differently")
}

func TestChip_Describe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "four, Delete", NewChip(Item{Name: "four", Deletable: true}).Describe(nil))
	assert.Equal(t, "four", NewChip(Item{Name: "four"}).Describe(nil))
}

func TestEnglish(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+ 6 more", English("hiddenChildren", map[string]any{"Num": 6}))
	assert.Equal(t, "Hide", English("hide", nil))
	assert.Equal(t, "missing", English("missing", nil))
}
