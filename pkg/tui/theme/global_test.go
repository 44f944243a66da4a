// ABOUTME: Tests for the global theme: the default palette, Set, Resolve by name or file, concurrent reads
// ABOUTME: Tests that swap the global theme run serially and restore it

package theme

import (
	"strings"
	"sync"
	"testing"
)

func TestCurrent_StartsWithDefaultPalette(t *testing.T) {
	th := Current()
	if th == nil {
		t.Fatal("Current() returned nil")
	}
	want := DefaultPalette()
	if th.Palette.Chip.Code() != want.Chip.Code() || th.Palette.Control.Code() != want.Control.Code() {
		t.Errorf("Current() palette = %+v; want the default chip and control colors", th.Palette)
	}
}

func TestSet_SwapsChipColors(t *testing.T) {
	old := Current()
	defer Set(old)

	light := Builtin("light")
	Set(light)
	if got := Current().Palette.ChipFocused.Code(); got != light.Palette.ChipFocused.Code() {
		t.Errorf("after Set(light), ChipFocused = %q", got)
	}
}

func TestResolve_ChipRoles(t *testing.T) {
	t.Parallel()

	th, err := Resolve("monochrome")
	if err != nil || th.Palette.ChipFocused.Code() != "\x1b[7m" {
		t.Errorf("Resolve(monochrome) = %v, %v", th, err)
	}

	path := writeTheme(t, "name: mine\npalette:\n  control: \"38;5;33\"\n")
	th, err = Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(%s): %v", path, err)
	}
	if th.Palette.Control.Code() != "\x1b[38;5;33m" {
		t.Errorf("Control = %q", th.Palette.Control.Code())
	}

	_, err = Resolve("solarized")
	if err == nil || !strings.Contains(err.Error(), "monochrome") {
		t.Errorf("Resolve(solarized) error = %v; want it to list the builtins", err)
	}
}

func TestCurrent_ConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if Current().Palette.Chip.Code() == "" {
				t.Error("Current() returned a palette without chip colors")
			}
		}()
	}
	wg.Wait()
}
