// ABOUTME: Widget settings loading with global + project YAML merge and CLI overrides
// ABOUTME: Validate rejects bad limits, match modes and directions; builders produce component options

package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/multiselect-go/internal/keybindings"
	"github.com/mauromedda/multiselect-go/pkg/chips/focus"
	"github.com/mauromedda/multiselect-go/pkg/tui/component"
	"github.com/mauromedda/multiselect-go/pkg/tui/fuzzy"
)

// Sentinel errors returned by Validate.
var (
	ErrUnknownMatch     = errors.New("unknown match mode")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrInvalidLimit     = errors.New("invalid limit")
)

// Settings holds the merged configuration. Pointer fields distinguish
// "unset" from an explicit false or zero so a later layer can turn an
// option off.
type Settings struct {
	Collapsible   *bool  `yaml:"collapsible,omitempty"`
	AutoRemove    *bool  `yaml:"autoremove,omitempty"`
	Limit         *int   `yaml:"limit,omitempty"`
	AllowFreeform *bool  `yaml:"allow_freeform,omitempty"`
	HideDropdown  *bool  `yaml:"hide_dropdown,omitempty"`
	Required      *bool  `yaml:"required,omitempty"`
	InvalidText   string `yaml:"invalid_text,omitempty"`
	Placeholder   string `yaml:"placeholder,omitempty"`
	Description   string `yaml:"description,omitempty"`
	Match         string `yaml:"match,omitempty"`
	Direction     string `yaml:"direction,omitempty"`
	Language      string `yaml:"language,omitempty"`
	Theme         string `yaml:"theme,omitempty"`

	Candidates []component.Attribute `yaml:"candidates,omitempty"`
	Selected   []component.Attribute `yaml:"selected,omitempty"`

	// Keys overrides host key bindings by action name (done, cancel, help, copy).
	Keys map[string][]string `yaml:"keys,omitempty"`
}

// Bool returns a pointer to b, for building Settings literals.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for building Settings literals.
func Int(n int) *int { return &n }

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Load reads and merges global and project-local settings for the current
// user. Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	return LoadAllWithHome(projectRoot, UserHome(), nil)
}

// LoadAllWithHome merges, in increasing precedence, the global file under
// home, the project file under projectRoot, and cli. Missing files are skipped.
func LoadAllWithHome(projectRoot, home string, cli *Settings) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile(home))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(global, project), cli)
	ResolveEnvVars(merged)
	return merged, nil
}

// LoadFile reads settings from an explicit path (the --config flag).
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	ResolveEnvVars(s)
	return s, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// Merge returns over layered onto base.
func Merge(base, over *Settings) *Settings {
	return merge(base, over)
}

// merge layers over onto base. Set pointers and non-empty strings and lists
// of over win.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		result := *base
		return &result
	}

	result := *base

	pick(&result.Collapsible, over.Collapsible)
	pick(&result.AutoRemove, over.AutoRemove)
	pick(&result.Limit, over.Limit)
	pick(&result.AllowFreeform, over.AllowFreeform)
	pick(&result.HideDropdown, over.HideDropdown)
	pick(&result.Required, over.Required)

	pickString(&result.InvalidText, over.InvalidText)
	pickString(&result.Placeholder, over.Placeholder)
	pickString(&result.Description, over.Description)
	pickString(&result.Match, over.Match)
	pickString(&result.Direction, over.Direction)
	pickString(&result.Language, over.Language)
	pickString(&result.Theme, over.Theme)

	if len(over.Candidates) > 0 {
		result.Candidates = append([]component.Attribute(nil), over.Candidates...)
	}
	if len(over.Selected) > 0 {
		result.Selected = append([]component.Attribute(nil), over.Selected...)
	}
	if len(over.Keys) > 0 {
		keys := maps.Clone(base.Keys)
		if keys == nil {
			keys = make(map[string][]string, len(over.Keys))
		}
		maps.Copy(keys, over.Keys)
		result.Keys = keys
	}

	return &result
}

func pickString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func pick[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// Validate reports the first invalid setting.
func (s *Settings) Validate() error {
	if n := deref(s.Limit); n < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidLimit, n)
	} else if n > 0 && len(s.Selected) > n {
		return fmt.Errorf("%w: %d preselected values exceed limit %d", ErrInvalidLimit, len(s.Selected), n)
	}
	if _, err := fuzzy.ParseMode(s.Match); err != nil {
		return fmt.Errorf("%w: %q (want substring or fuzzy)", ErrUnknownMatch, s.Match)
	}
	if _, err := ParseDirection(s.Direction); err != nil {
		return err
	}
	if _, err := keybindings.New(s.Keys); err != nil {
		return err
	}
	return nil
}

// KeyBindings returns the host key bindings with the configured overrides.
func (s *Settings) KeyBindings() (*keybindings.Manager, error) {
	return keybindings.New(s.Keys)
}

// ParseDirection maps "ltr"/"rtl" (case-insensitive, empty = ltr) to a focus.Direction.
func ParseDirection(name string) (focus.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ltr":
		return focus.LTR, nil
	case "rtl":
		return focus.RTL, nil
	}
	return focus.LTR, fmt.Errorf("%w: %q (want ltr or rtl)", ErrUnknownDirection, name)
}

// MatchMode returns the configured candidate matching mode.
func (s *Settings) MatchMode() fuzzy.Mode {
	m, _ := fuzzy.ParseMode(s.Match)
	return m
}

// TextDirection returns the configured text direction.
func (s *Settings) TextDirection() focus.Direction {
	d, _ := ParseDirection(s.Direction)
	return d
}

// PickerOptions builds picker options from the settings.
func (s *Settings) PickerOptions(l component.Localizer, bus *component.Bus) component.PickerOptions {
	return component.PickerOptions{
		Limit:         deref(s.Limit),
		AllowFreeform: deref(s.AllowFreeform),
		HideDropdown:  deref(s.HideDropdown),
		Required:      deref(s.Required),
		InvalidText:   s.InvalidText,
		Placeholder:   s.Placeholder,
		Match:         s.MatchMode(),
		Direction:     s.TextDirection(),
		Localize:      l,
		Bus:           bus,
	}
}

// ChipListOptions builds chip list options from the settings. Lists are
// collapsible unless explicitly disabled.
func (s *Settings) ChipListOptions(l component.Localizer, bus *component.Bus) component.ChipListOptions {
	collapsible := true
	if s.Collapsible != nil {
		collapsible = *s.Collapsible
	}
	return component.ChipListOptions{
		Collapsible: collapsible,
		AutoRemove:  deref(s.AutoRemove),
		Direction:   s.TextDirection(),
		Localize:    l,
		Bus:         bus,
		Description: s.Description,
	}
}
