// Package i18n provides the bilingual message catalogue for the storefront.
// Both locales must define the same key set; i18n_test.go enforces that.
package i18n

// Language is a supported display language.
type Language string

const (
	LanguageEN Language = "en"
	LanguageLT Language = "lt"
)

// DefaultLanguage is used when no preference is stored.
const DefaultLanguage = LanguageEN

// ParseLanguage maps an arbitrary tag to a supported Language, falling
// back to the default for anything unknown.
func ParseLanguage(tag string) Language {
	switch tag {
	case "lt":
		return LanguageLT
	case "en":
		return LanguageEN
	}
	return DefaultLanguage
}

// Valid reports whether the language is one of the two supported locales.
func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageLT
}

// Key is a message identifier. Only the constants in messages.go exist.
type Key string

// T returns the localized string for key in the given language. A miss
// returns the key itself so a missing translation degrades visibly but
// never breaks rendering.
func T(lang Language, key Key) string {
	catalogue, ok := messages[lang]
	if !ok {
		catalogue = messages[DefaultLanguage]
	}
	if msg, ok := catalogue[key]; ok {
		return msg
	}
	return string(key)
}

// Keys returns every defined message key for the given language.
func Keys(lang Language) []Key {
	catalogue := messages[lang]
	keys := make([]Key, 0, len(catalogue))
	for k := range catalogue {
		keys = append(keys, k)
	}
	return keys
}
