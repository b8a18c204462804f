package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// ClearCart godoc
// @Summary Empty the cart
// @Tags Store - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/cart [delete]
func ClearCart(c *gin.Context) {
	userCart := sessionCart(c)
	userCart.Clear()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", userCart.Snapshot()))
}
