package contact_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/i18n"
	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

var contact *services.ContactService

// Init wires the contact service; called once from main before routes.
func Init(svc *services.ContactService) {
	contact = svc
}

// SubmitMessage godoc
// @Summary Submit a contact form message
// @Description Stores the message and forwards it to the shop inbox. In demo mode the message is accepted locally.
// @Tags Store - Contact
// @Accept json
// @Produce json
// @Param request body models.ContactMessageRequest true "Name, email, subject, message"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/contact [post]
func SubmitMessage(c *gin.Context) {
	var req models.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	lang := middleware.GetLanguage(c)
	msg, demoMode, err := contact.Submit(req, lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to submit message"))
		return
	}

	message := i18n.T(i18n.ParseLanguage(lang), i18n.KeyMessageSent)
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, gin.H{
		"id":        msg.ID,
		"demo_mode": demoMode,
	}))
}
