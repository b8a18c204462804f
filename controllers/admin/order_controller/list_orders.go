package order_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// ListOrders godoc
// @Summary List all orders
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by order status"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Orders per page" default(20)
// @Success 200 {object} models.PaginatedResponse
// @Failure 503 {object} models.ApiResponse "No database configured"
// @Router /admin/orders [get]
func ListOrders(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	status := c.Query("status")

	list, total, err := orders.ListAllOrders(status, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", list, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}
