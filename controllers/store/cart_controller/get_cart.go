package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// GetCart godoc
// @Summary Get the session cart
// @Tags Store - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	snapshot := sessionCart(c).Snapshot()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", snapshot))
}
