package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// UpdateItem godoc
// @Summary Set a cart line's quantity
// @Description Quantity zero or below removes the line.
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Param lineId path string true "Cart line ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/cart/items/{lineId} [put]
func UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	userCart := sessionCart(c)
	userCart.SetQuantity(c.Param("lineId"), req.Quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", userCart.Snapshot()))
}
