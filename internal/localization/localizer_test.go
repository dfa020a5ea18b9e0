package localization

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalizer_T(t *testing.T) {
	en, err := New("")
	require.NoError(t, err)
	require.Equal(t, DefaultLocale, en.Locale())
	require.Equal(t, "Shop Now", en.T(KeyShopNow))
	require.Equal(t, "Please configure your product banner in the editor.", en.T(KeyPlaceholderPrompt))

	fr, err := New("fr")
	require.NoError(t, err)
	require.Equal(t, "Acheter", fr.T(KeyShopNow))
	require.Equal(t, "Button Style", fr.T(KeyButtonStyle), "missing french key falls back to english")

	require.Equal(t, "no.such.key", en.T("no.such.key"))
}

func TestTranslations_EnglishIsComplete(t *testing.T) {
	catalogs := Translations()
	en := catalogs["en"]
	require.NotNil(t, en)

	for key := range french {
		_, ok := en.Messages[key]
		require.True(t, ok, "french key %q has no english source", key)
	}
}
