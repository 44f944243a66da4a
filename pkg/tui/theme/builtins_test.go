// ABOUTME: Tests for the built-in themes: every chip, control and error role is styled
// ABOUTME: Focused chips and controls must look different from their resting state

package theme

import (
	"reflect"
	"slices"
	"testing"
)

func TestBuiltinNames(t *testing.T) {
	t.Parallel()
	want := []string{"dark", "default", "light", "monochrome"}
	if got := BuiltinNames(); !slices.Equal(got, want) {
		t.Errorf("BuiltinNames() = %v; want %v", got, want)
	}
	for _, name := range want {
		if th := Builtin(name); th == nil || th.Name != name {
			t.Errorf("Builtin(%q) = %v", name, th)
		}
	}
	if th := Builtin("solarized"); th != nil {
		t.Errorf("Builtin(solarized) = %v; want nil", th)
	}
}

func TestBuiltinThemes_EveryRoleStyled(t *testing.T) {
	t.Parallel()
	for _, name := range BuiltinNames() {
		v := reflect.ValueOf(Builtin(name).Palette)
		for i := range v.NumField() {
			c, ok := v.Field(i).Interface().(Color)
			if ok && c.Code() == "" {
				t.Errorf("%s: Palette.%s has no code", name, v.Type().Field(i).Name)
			}
		}
	}
}

func TestBuiltinThemes_FocusIsVisible(t *testing.T) {
	t.Parallel()
	for _, name := range BuiltinNames() {
		p := Builtin(name).Palette
		if p.Chip.Code() == p.ChipFocused.Code() {
			t.Errorf("%s: focused chip looks like a resting chip", name)
		}
		if p.Control.Code() == p.ControlFocused.Code() {
			t.Errorf("%s: focused control looks like a resting control", name)
		}
		if p.ChipDelete.Code() == p.ChipFocused.Code() {
			t.Errorf("%s: delete mark blends into the focused chip", name)
		}
	}
}

func TestBuiltinThemes_ErrorStandsOut(t *testing.T) {
	t.Parallel()
	for _, name := range BuiltinNames() {
		p := Builtin(name).Palette
		if p.Error.Code() == p.Text.Code() || p.Error.Code() == p.Muted.Code() {
			t.Errorf("%s: invalid text is styled like ordinary text", name)
		}
		got := p.Error.Apply("At least one value must be set")
		if got == "At least one value must be set" {
			t.Errorf("%s: Error.Apply left the text unstyled", name)
		}
	}
}
