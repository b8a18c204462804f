package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norvila-Ecommerce/norvila-store-backend/i18n"
)

func TestLanguageDefaultsToEnglish(t *testing.T) {
	svc := NewLanguageService(nil)
	assert.Equal(t, i18n.LanguageEN, svc.Get("visitor-1"))
}

func TestLanguageSetAndGet(t *testing.T) {
	svc := NewLanguageService(nil)

	svc.Set("visitor-1", i18n.LanguageLT, nil)
	assert.Equal(t, i18n.LanguageLT, svc.Get("visitor-1"))

	// Other visitors are unaffected.
	assert.Equal(t, i18n.LanguageEN, svc.Get("visitor-2"))

	// Switching back works.
	svc.Set("visitor-1", i18n.LanguageEN, nil)
	assert.Equal(t, i18n.LanguageEN, svc.Get("visitor-1"))
}
