// ABOUTME: Lipgloss style bridge from theme.Color ANSI escape codes
// ABOUTME: Parses SGR sequences into lipgloss styles; Styles() caches them per theme

package btea

import (
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/multiselect-go/pkg/tui/theme"
)

type themeStylesEntry struct {
	theme  *theme.Theme
	styles ThemeStyles
}

// cachedStyles is keyed by theme pointer identity.
var cachedStyles atomic.Pointer[themeStylesEntry]

// sgrRe matches a single ANSI SGR sequence like \x1b[38;5;208m.
var sgrRe = regexp.MustCompile(`\x1b\[([\d;]+)m`)

// colorToStyle builds a lipgloss.Style from a raw ANSI escape code string.
// 256-color and basic foreground/background codes map to lipgloss colors;
// bold, faint and reverse map to the matching attributes.
func colorToStyle(code string) lipgloss.Style {
	s := lipgloss.NewStyle()
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		params := strings.Split(m[1], ";")
		if len(params) >= 3 && params[1] == "5" {
			switch params[0] {
			case "38":
				s = s.Foreground(lipgloss.Color(params[2]))
			case "48":
				s = s.Background(lipgloss.Color(params[2]))
			}
			continue
		}
		for _, p := range params {
			n, err := strconv.Atoi(p)
			if err != nil {
				continue
			}
			switch {
			case n == 1:
				s = s.Bold(true)
			case n == 2:
				s = s.Faint(true)
			case n == 7:
				s = s.Reverse(true)
			case n >= 30 && n <= 37:
				s = s.Foreground(lipgloss.Color(strconv.Itoa(n - 30)))
			case n >= 90 && n <= 97:
				s = s.Foreground(lipgloss.Color(strconv.Itoa(n - 90 + 8)))
			case n >= 40 && n <= 47:
				s = s.Background(lipgloss.Color(strconv.Itoa(n - 40)))
			case n >= 100 && n <= 107:
				s = s.Background(lipgloss.Color(strconv.Itoa(n - 100 + 8)))
			}
		}
	}
	return s
}

// ThemeStyles holds the lipgloss styles the host frame uses.
type ThemeStyles struct {
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
	Frame  lipgloss.Style
	Status lipgloss.Style
}

// Styles returns ThemeStyles for the current theme, rebuilding only when the
// theme pointer changes.
func Styles() ThemeStyles {
	t := theme.Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t)
	cachedStyles.Store(&themeStylesEntry{theme: t, styles: s})
	return s
}

func buildStyles(t *theme.Theme) ThemeStyles {
	p := t.Palette
	return ThemeStyles{
		Title:  colorToStyle(p.Accent.Code()).Bold(true),
		Muted:  colorToStyle(p.Muted.Code()),
		Accent: colorToStyle(p.Accent.Code()),
		Error:  colorToStyle(p.Error.Code()),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorToStyle(p.Border.Code()).GetForeground()).
			Padding(0, 1),
		Status: colorToStyle(p.Muted.Code()).Italic(true),
	}
}
