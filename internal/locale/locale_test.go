// ABOUTME: Tests for localized widget strings
// ABOUTME: Covers English and Japanese lookups, tag matching, fallback and unknown keys

package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		key  string
		data map[string]any
		want string
	}{
		{lang: "en", key: "delete", want: "Delete"},
		{lang: "en", key: "hiddenChildren", data: map[string]any{"Num": 6}, want: "+ 6 more"},
		{lang: "en", key: "picker_add_value", data: map[string]any{"Value": "four"}, want: "Click to add value four"},
		{lang: "ja", key: "hiddenChildren", data: map[string]any{"Num": 3}, want: "他 3 件"},
		{lang: "ja-JP", key: "delete", want: "削除"},
		{lang: "", key: "hide", want: "Hide"},
		{lang: "fr", key: "delete", want: "Delete"},
		{lang: "en", key: "noSuchKey", want: "noSuchKey"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			t.Parallel()
			c, err := New(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Lookup(tt.key, tt.data))
		})
	}
}

func TestNew_Language(t *testing.T) {
	t.Parallel()

	c, err := New("ja")
	require.NoError(t, err)
	assert.Equal(t, language.Japanese, c.Language())

	c, err = New("de")
	require.NoError(t, err)
	assert.Equal(t, language.English, c.Language())
}

func TestNew_InvalidTag(t *testing.T) {
	t.Parallel()

	_, err := New("not a tag!")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLanguage))
}

func TestSupported(t *testing.T) {
	t.Parallel()

	s := Supported()
	assert.Len(t, s, 2)
	s[0] = language.German
	assert.Equal(t, language.English, Supported()[0], "Supported returns a copy")
}
