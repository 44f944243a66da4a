// ABOUTME: Pre-sets the lipgloss background hint before BubbleTea's init() sends OSC queries
// ABOUTME: Reads COLORFGBG when the terminal exports it, otherwise assumes a dark background

package termfix

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// Setting the hint before bubbletea's init() skips its OSC 10/11
	// query, whose late reply would otherwise land in the input line.
	// This package must not import bubbletea.
	lipgloss.SetHasDarkBackground(darkBackground(os.Getenv("COLORFGBG")))
}

// darkBackground interprets a COLORFGBG value ("fg;bg" or "fg;default;bg").
// Background colors 0-6 and 8 are dark. Unset or unparseable values count
// as dark.
func darkBackground(colorfgbg string) bool {
	if colorfgbg == "" {
		return true
	}
	parts := strings.Split(colorfgbg, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return true
	}
	return bg < 7 || bg == 8
}
