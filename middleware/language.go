package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/i18n"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

// LanguageMiddleware resolves the display language for the request:
// explicit ?lang= wins, then the stored per-session preference, then the
// default. Must run after SessionMiddleware.
func LanguageMiddleware(languages *services.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.DefaultLanguage

		if tag := c.Query("lang"); tag != "" {
			lang = i18n.ParseLanguage(tag)
		} else if sessionID := GetSessionID(c); sessionID != "" {
			lang = languages.Get(sessionID)
		}

		c.Set("lang", string(lang))
		c.Next()
	}
}

// GetLanguage returns the resolved display language for the request.
func GetLanguage(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		return lang.(string)
	}
	return string(i18n.DefaultLanguage)
}
