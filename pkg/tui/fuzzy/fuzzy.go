// ABOUTME: Candidate matching for dropdowns: case-folded substring (default) or sahilm/fuzzy ranking
// ABOUTME: Filter returns indices into the input so callers keep their own item types

package fuzzy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// Mode selects how a pattern is matched against candidates.
type Mode int

const (
	// ModeSubstring keeps candidates containing the pattern, ignoring case, in original order.
	ModeSubstring Mode = iota
	// ModeFuzzy keeps candidates matching the pattern as a subsequence, best score first.
	ModeFuzzy
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("unknown match mode")

// ParseMode maps a configuration name ("substring", "fuzzy") to a Mode.
// The empty string selects ModeSubstring.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "substring":
		return ModeSubstring, nil
	case "fuzzy":
		return ModeFuzzy, nil
	}
	return ModeSubstring, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// String returns the configuration name of m.
func (m Mode) String() string {
	if m == ModeFuzzy {
		return "fuzzy"
	}
	return "substring"
}

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Fold returns the case-folded form of s used for case-insensitive comparisons.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Filter returns the indices of items matching pattern under mode.
// An empty pattern matches every item in order.
func Filter(mode Mode, pattern string, items []string) []int {
	if pattern == "" {
		out := make([]int, len(items))
		for i := range items {
			out[i] = i
		}
		return out
	}

	if mode == ModeFuzzy {
		matches := Find(pattern, items)
		out := make([]int, len(matches))
		for i, m := range matches {
			out[i] = m.Index
		}
		return out
	}

	needle := Fold(pattern)
	out := make([]int, 0, len(items))
	for i, it := range items {
		if strings.Contains(Fold(it), needle) {
			out = append(out, i)
		}
	}
	return out
}
