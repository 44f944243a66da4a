// ABOUTME: YAML theme file loading with default fallback
// ABOUTME: Values are SGR parameter strings ("38;5;208"); unset fields inherit from DefaultPalette

package theme

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// yamlPalette is the file representation of a Palette.
// Field names must match Palette so convertPalette can map them by name.
type yamlPalette struct {
	Text        string `yaml:"text"`
	Muted       string `yaml:"muted"`
	Accent      string `yaml:"accent"`
	Placeholder string `yaml:"placeholder"`

	Error string `yaml:"error"`

	Chip        string `yaml:"chip"`
	ChipFocused string `yaml:"chip_focused"`
	ChipDelete  string `yaml:"chip_delete"`

	Control        string `yaml:"control"`
	ControlFocused string `yaml:"control_focused"`

	Selection string `yaml:"selection"`
	Border    string `yaml:"border"`

	Bold    string `yaml:"bold"`
	Dim     string `yaml:"dim"`
	Reverse string `yaml:"reverse"`
}

type yamlTheme struct {
	Name    string      `yaml:"name"`
	Palette yamlPalette `yaml:"palette"`
}

// LoadFile reads a YAML theme file and returns a Theme.
// Missing palette fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	if yt.Name == "" {
		yt.Name = path
	}

	return &Theme{
		Name:    yt.Name,
		Palette: convertPalette(yt.Palette, DefaultPalette()),
	}, nil
}

// convertPalette maps yamlPalette fields onto a Palette, using base for empty fields.
func convertPalette(yp yamlPalette, base Palette) Palette {
	p := base

	ypv := reflect.ValueOf(yp)
	pv := reflect.ValueOf(&p).Elem()
	ypt := ypv.Type()

	for i := range ypt.NumField() {
		val := ypv.Field(i).String()
		if val == "" {
			continue
		}
		pf := pv.FieldByName(ypt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(SGR(val)))
		}
	}

	return p
}
