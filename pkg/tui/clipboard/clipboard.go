// ABOUTME: Clipboard write via the system clipboard (atotto/clipboard) with an OSC 52 fallback
// ABOUTME: OSC 52 is used when no clipboard tool is available, so copying still works over SSH

package clipboard

import (
	"encoding/base64"
	"io"
	"os"

	system "github.com/atotto/clipboard"

	"github.com/mauromedda/multiselect-go/internal/log"
)

// systemWrite and systemUnsupported are replaced in tests.
var (
	systemWrite       = system.WriteAll
	systemUnsupported = func() bool { return system.Unsupported }
)

// Write copies text to the system clipboard. Without a clipboard tool it
// asks the terminal to do it by writing OSC 52 to stderr.
func Write(text string) error {
	return WriteTo(os.Stderr, text)
}

// WriteTo is Write with the OSC 52 fallback sent to w.
func WriteTo(w io.Writer, text string) error {
	if !systemUnsupported() {
		err := systemWrite(text)
		if err == nil {
			return nil
		}
		log.Debug("clipboard: system write failed, using OSC 52: %v", err)
	}
	_, err := io.WriteString(w, OSC52(text))
	return err
}

// OSC52 returns the terminal sequence that sets the clipboard to text.
func OSC52(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
}
