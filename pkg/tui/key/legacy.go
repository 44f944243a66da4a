// ABOUTME: Legacy escape sequence mappings for CSI and SS3 terminal key codes.
// ABOUTME: Maps raw escape strings to Key values and back for arrows, home, end, page, delete, and backtab.

package key

// legacySequences maps standard CSI and SS3 escape sequences to Key values.
var legacySequences = map[string]Key{
	// CSI sequences
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[H":  {Type: KeyHome},
	"\x1b[F":  {Type: KeyEnd},
	"\x1b[1~": {Type: KeyHome},
	"\x1b[4~": {Type: KeyEnd},
	"\x1b[5~": {Type: KeyPageUp},
	"\x1b[6~": {Type: KeyPageDown},
	"\x1b[3~": {Type: KeyDelete},
	"\x1b[Z":  {Type: KeyBackTab, Shift: true},

	// SS3 variants (sent by some terminals in application mode)
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},
	"\x1bOH": {Type: KeyHome},
	"\x1bOF": {Type: KeyEnd},
}

// encodedSequences is the canonical CSI encoding used by Encode.
var encodedSequences = map[KeyType]string{
	KeyUp:       "\x1b[A",
	KeyDown:     "\x1b[B",
	KeyRight:    "\x1b[C",
	KeyLeft:     "\x1b[D",
	KeyHome:     "\x1b[H",
	KeyEnd:      "\x1b[F",
	KeyPageUp:   "\x1b[5~",
	KeyPageDown: "\x1b[6~",
	KeyDelete:   "\x1b[3~",
	KeyBackTab:  "\x1b[Z",
}
