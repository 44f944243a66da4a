// ABOUTME: ANSI-aware text wrapping and truncation by columns or by characters
// ABOUTME: Wrap breaks at spaces and carries styling across lines; TruncateToWidth and TruncateChars add ellipses

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap breaks s into lines of at most w columns, preferring breaks at spaces.
// A word wider than w is split between grapheme clusters. Styling open at a
// break is closed on that line and reopened on the next.
func Wrap(s string, w int) []string {
	if w <= 0 {
		return nil
	}
	wr := &wrapper{width: w}
	for n, para := range strings.Split(s, "\n") {
		if n > 0 {
			wr.newline()
		}
		for j, word := range strings.Split(para, " ") {
			if j > 0 {
				if wr.col+1+VisibleWidth(word) > w {
					wr.newline()
				} else {
					wr.line.WriteByte(' ')
					wr.col++
				}
			}
			wr.word(word)
		}
	}
	return append(wr.lines, wr.line.String())
}

type wrapper struct {
	width int
	lines []string
	line  strings.Builder
	col   int
	sgr   sgrState
}

func (wr *wrapper) newline() {
	if wr.sgr.active() {
		wr.line.WriteString(sgrReset)
	}
	wr.lines = append(wr.lines, wr.line.String())
	wr.line.Reset()
	wr.line.WriteString(wr.sgr.String())
	wr.col = 0
}

func (wr *wrapper) word(s string) {
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			wr.sgr.apply(s[i:end])
			wr.line.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if wr.col > 0 && wr.col+cw > wr.width {
			wr.newline()
		}
		wr.line.WriteString(cluster)
		wr.col += cw
		i += len(cluster)
	}
}

// TruncateToWidth truncates s to at most maxWidth visible columns.
// If truncation occurs, the last visible character is replaced with ellipsis.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	w := VisibleWidth(s)
	if w <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "\u2026" // single ellipsis character
	}

	var b strings.Builder
	col := 0
	target := maxWidth - 1 // Leave room for ellipsis
	i := 0
	for i < len(s) && col < target {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	b.WriteString("\x1b[0m") // Reset before ellipsis
	b.WriteRune('\u2026')
	return b.String()
}

// TruncateChars shortens plain text to at most maxChars user-perceived
// characters (grapheme clusters), appending "..." when anything was cut.
// maxChars <= 0 disables truncation.
func TruncateChars(s string, maxChars int) (string, bool) {
	if maxChars <= 0 || uniseg.GraphemeClusterCount(s) <= maxChars {
		return s, false
	}
	var b strings.Builder
	state := -1
	rest := s
	for n := 0; n < maxChars && len(rest) > 0; n++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		b.WriteString(cluster)
	}
	b.WriteString("...")
	return b.String(), true
}
