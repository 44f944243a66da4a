// ABOUTME: Tests for YAML theme file loading
// ABOUTME: Covers valid load, missing fields fallback, invalid YAML, file not found and Resolve

package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTheme(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_ValidYAML(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, `
name: custom
palette:
  chip: "48;5;22"
  chip_focused: "1;48;5;28"
  error: "\e[91m"
`)
	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("Name = %q; want custom", th.Name)
	}
	if got := th.Palette.Chip.Code(); got != "\x1b[48;5;22m" {
		t.Errorf("Chip = %q", got)
	}
	if got := th.Palette.ChipFocused.Code(); got != "\x1b[1;48;5;28m" {
		t.Errorf("ChipFocused = %q", got)
	}
	if got := th.Palette.Error.Code(); got != "\x1b[91m" {
		t.Errorf("Error = %q", got)
	}
}

func TestLoadFile_MissingFieldsFallback(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, "palette:\n  accent: \"35\"\n")
	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	def := DefaultPalette()
	if th.Palette.Selection != def.Selection {
		t.Errorf("Selection should fall back to default, got %q", th.Palette.Selection.Code())
	}
	if th.Palette.Accent.Code() != "\x1b[35m" {
		t.Errorf("Accent = %q", th.Palette.Accent.Code())
	}
	if th.Name != path {
		t.Errorf("unnamed theme should be named after its path, got %q", th.Name)
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, "palette: [unterminated")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	th, err := Resolve("")
	if err != nil || th.Name != "default" {
		t.Errorf("Resolve(\"\") = %v, %v", th, err)
	}
	th, err = Resolve("dark")
	if err != nil || th.Name != "dark" {
		t.Errorf("Resolve(dark) = %v, %v", th, err)
	}
	if _, err := Resolve("neon"); err == nil {
		t.Error("unknown name should fail")
	}

	path := writeTheme(t, "name: file\n")
	th, err = Resolve(path)
	if err != nil || th.Name != "file" {
		t.Errorf("Resolve(path) = %v, %v", th, err)
	}
}
