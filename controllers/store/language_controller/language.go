package language_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Norvila-Ecommerce/norvila-store-backend/i18n"
	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

var languages *services.LanguageService

// Init wires the language service; called once from main before routes.
func Init(svc *services.LanguageService) {
	languages = svc
}

type setLanguageRequest struct {
	Language string `json:"language" binding:"required,oneof=en lt"`
}

// GetLanguage godoc
// @Summary Get the stored display language for this session
// @Tags Store - Language
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/language [get]
func GetLanguage(c *gin.Context) {
	lang := languages.Get(middleware.GetSessionID(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Language fetched", gin.H{"language": lang}))
}

// SetLanguage godoc
// @Summary Store an explicit language switch
// @Description Persists the choice for this session; signed-in users also get it written to their profile.
// @Tags Store - Language
// @Accept json
// @Produce json
// @Param request body setLanguageRequest true "Language tag (en or lt)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/language [put]
func SetLanguage(c *gin.Context) {
	var req setLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Language must be 'en' or 'lt'"))
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(c); ok {
		userID = &id
	}

	lang := i18n.ParseLanguage(req.Language)
	languages.Set(middleware.GetSessionID(c), lang, userID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Language updated", gin.H{"language": lang}))
}

// GetTranslations godoc
// @Summary Get the full message catalogue for a language
// @Description Missing keys fall back to the key string on the client, mirroring the server-side lookup.
// @Tags Store - Language
// @Produce json
// @Param lang query string false "Language tag (en, lt)" default(en)
// @Success 200 {object} models.ApiResponse
// @Router /store/translations [get]
func GetTranslations(c *gin.Context) {
	lang := i18n.ParseLanguage(middleware.GetLanguage(c))

	catalogue := make(map[string]string)
	for _, key := range i18n.Keys(lang) {
		catalogue[string(key)] = i18n.T(lang, key)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Translations fetched", gin.H{
		"language": lang,
		"messages": catalogue,
	}))
}
