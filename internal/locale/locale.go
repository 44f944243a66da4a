// ABOUTME: Localized widget strings backed by go-i18n bundles loaded from embedded TOML catalogs
// ABOUTME: Catalog.Lookup is injected into components as their key -> string function

package locale

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/mauromedda/multiselect-go/internal/log"
)

//go:embed lang/*.toml
var catalogs embed.FS

// ErrUnknownLanguage is returned when a language tag cannot be parsed.
var ErrUnknownLanguage = errors.New("unknown language")

var supported = []language.Tag{language.English, language.Japanese}

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		for _, name := range []string{"lang/en.toml", "lang/ja.toml"} {
			if _, err := b.LoadMessageFileFS(catalogs, name); err != nil {
				bundleErr = fmt.Errorf("loading catalog %s: %w", name, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Supported returns the languages with a built-in catalog.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Catalog resolves message keys for one language.
type Catalog struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New returns the catalog best matching lang ("en", "ja-JP", ...). An empty
// lang selects English; a well-formed tag without a catalog falls back to English.
func New(lang string) (*Catalog, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
		}
		_, idx, conf := language.NewMatcher(supported).Match(parsed)
		if conf == language.No {
			log.Debug("locale: no catalog for %s, using en", parsed)
		} else {
			tag = supported[idx]
		}
	}
	return &Catalog{
		tag:       tag,
		localizer: i18n.NewLocalizer(b, tag.String()),
	}, nil
}

// Language returns the catalog's language.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Lookup returns the localized string for key, executing it as a template
// against data. Unknown keys come back unchanged.
func (c *Catalog) Lookup(key string, data map[string]any) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Debug("locale: %s: %v", key, err)
		return key
	}
	return s
}
