package contact_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

var contact *services.ContactService

// Init wires the admin contact inbox to the contact service.
func Init(contactSvc *services.ContactService) {
	contact = contactSvc
}

// ListMessages godoc
// @Summary List contact messages
// @Tags Admin - Contact
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Messages per page" default(20)
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/contact-messages [get]
func ListMessages(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	messages, total, err := contact.List(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch messages"))
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Messages fetched successfully", messages, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}
