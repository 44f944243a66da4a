// ABOUTME: VisibleWidth computes display width of strings with grapheme-aware segmentation
// ABOUTME: LRU cache (golang-lru) for non-ASCII strings; fast path for pure ASCII

package width

import (
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

// widthCache memoizes measurements of non-ASCII strings. Chip labels are
// re-measured on every fit pass, so the same strings come back constantly.
var widthCache = mustCache(cacheSize)

func mustCache(size int) *lru.Cache[string, int] {
	c, err := lru.New[string, int](size)
	if err != nil {
		panic(err) // only fails for size <= 0
	}
	return c
}

// VisibleWidth returns the display width of s, accounting for ANSI escape
// sequences (which contribute zero width) and grapheme clusters (which may
// be wider than one cell for East Asian characters and emoji).
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.Get(s); ok {
		return w
	}
	w := computeWidth(s)
	widthCache.Add(s, w)
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E)
// with no escape sequences.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// computeWidth measures the visible width by iterating grapheme clusters,
// skipping ANSI escape sequences.
func computeWidth(s string) int {
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
		stripped = rest
		state = newState
	}
	return w
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
