// ABOUTME: Tests for the system clipboard path and the OSC 52 fallback
// ABOUTME: The system clipboard is stubbed; tests are serial because they swap package vars

package clipboard

import (
	"bytes"
	"errors"
	"testing"
)

func stub(t *testing.T, unsupported bool, write func(string) error) {
	t.Helper()
	origWrite, origUnsupported := systemWrite, systemUnsupported
	systemWrite = write
	systemUnsupported = func() bool { return unsupported }
	t.Cleanup(func() { systemWrite, systemUnsupported = origWrite, origUnsupported })
}

func TestOSC52(t *testing.T) {
	if got, want := OSC52("hi"), "\x1b]52;c;aGk=\a"; got != want {
		t.Errorf("OSC52(hi) = %q; want %q", got, want)
	}
}

func TestWriteTo_System(t *testing.T) {
	var got string
	stub(t, false, func(s string) error { got = s; return nil })

	var buf bytes.Buffer
	if err := WriteTo(&buf, "hi"); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if got != "hi" || buf.Len() != 0 {
		t.Errorf("system got %q, fallback wrote %q", got, buf.String())
	}
}

func TestWriteTo_FallsBackWhenUnsupported(t *testing.T) {
	stub(t, true, func(string) error { t.Fatal("system clipboard used"); return nil })

	var buf bytes.Buffer
	if err := WriteTo(&buf, "hi"); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.String() != OSC52("hi") {
		t.Errorf("fallback wrote %q", buf.String())
	}
}

func TestWriteTo_FallsBackOnError(t *testing.T) {
	stub(t, false, func(string) error { return errors.New("no display") })

	var buf bytes.Buffer
	if err := WriteTo(&buf, "hi"); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.String() != OSC52("hi") {
		t.Errorf("fallback wrote %q", buf.String())
	}
}
