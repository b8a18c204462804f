package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBothLocalesDefineSameKeySet(t *testing.T) {
	en := messages[LanguageEN]
	lt := messages[LanguageLT]

	require.Equal(t, len(en), len(lt), "locales define a different number of keys")

	for key := range en {
		_, ok := lt[key]
		assert.Truef(t, ok, "key %q missing from lt catalogue", key)
	}
	for key := range lt {
		_, ok := en[key]
		assert.Truef(t, ok, "key %q missing from en catalogue", key)
	}
}

func TestTranslationLookup(t *testing.T) {
	assert.Equal(t, "Cart", T(LanguageEN, KeyCart))
	assert.Equal(t, "Krepšelis", T(LanguageLT, KeyCart))
	assert.Equal(t, "Iš viso", T(LanguageLT, KeyCartTotal))
}

func TestMissingKeyFallsBackToKeyString(t *testing.T) {
	assert.Equal(t, "no.such.key", T(LanguageEN, Key("no.such.key")))
	assert.Equal(t, "no.such.key", T(LanguageLT, Key("no.such.key")))
}

func TestUnknownLanguageFallsBackToDefault(t *testing.T) {
	assert.Equal(t, T(DefaultLanguage, KeyShop), T(Language("de"), KeyShop))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageLT, ParseLanguage("lt"))
	assert.Equal(t, LanguageEN, ParseLanguage("en"))
	assert.Equal(t, DefaultLanguage, ParseLanguage("fr"))
	assert.Equal(t, DefaultLanguage, ParseLanguage(""))
}

func TestNoEmptyTranslations(t *testing.T) {
	for lang, catalogue := range messages {
		for key, msg := range catalogue {
			assert.NotEmptyf(t, msg, "empty translation for %s/%s", lang, key)
		}
	}
}
