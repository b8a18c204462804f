package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// RemoveItem godoc
// @Summary Remove a cart line
// @Description Removing an unknown line is a no-op, not an error.
// @Tags Store - Cart
// @Produce json
// @Param lineId path string true "Cart line ID"
// @Success 200 {object} models.ApiResponse
// @Router /store/cart/items/{lineId} [delete]
func RemoveItem(c *gin.Context) {
	userCart := sessionCart(c)
	userCart.RemoveItem(c.Param("lineId"))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", userCart.Snapshot()))
}
