// ABOUTME: ANSI escape sequence stripping and the SGR state carried across wrapped lines
// ABOUTME: Handles CSI, OSC, APC (incl. BEL-terminated cursor markers), and basic ESC sequences

package width

import "strings"

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !containsESC(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			i = end
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// containsESC is a fast check for the presence of ESC (0x1B).
func containsESC(s string) bool {
	return strings.ContainsRune(s, '\x1b')
}

// skipANSISequence advances past an ANSI escape sequence starting at s[i].
// Returns the index of the first byte after the sequence.
func skipANSISequence(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++ // skip ESC
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI sequence: ESC [ ... <final byte 0x40-0x7E>
		i++
		for i < len(s) {
			b := s[i]
			if b >= 0x40 && b <= 0x7E {
				return i + 1
			}
			i++
		}
		return i
	case ']':
		// OSC sequence: ESC ] ... (ST or BEL)
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	case '(':
		// Designate character set: ESC ( <char>
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	case '_', 'P', '^':
		// APC, DCS, PM: terminated by ST or BEL
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default:
		// Simple two-byte ESC sequence
		return i + 1
	}
}

const sgrReset = "\x1b[0m"

// sgrState collects the SGR sequences in effect since the last reset.
// Other escape sequences, such as cursor markers, are ignored.
type sgrState struct {
	seqs []string
}

func (st *sgrState) apply(seq string) {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return
	}
	if seq == sgrReset || seq == "\x1b[m" {
		st.seqs = st.seqs[:0]
		return
	}
	st.seqs = append(st.seqs, seq)
}

func (st *sgrState) active() bool {
	return len(st.seqs) > 0
}

// String reopens the collected styling.
func (st *sgrState) String() string {
	return strings.Join(st.seqs, "")
}
