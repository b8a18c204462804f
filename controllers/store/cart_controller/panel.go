package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// TogglePanel godoc
// @Summary Toggle the slide-over cart panel
// @Tags Store - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/cart/panel/toggle [post]
func TogglePanel(c *gin.Context) {
	userCart := sessionCart(c)
	userCart.TogglePanel()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart panel toggled", userCart.Snapshot()))
}

// OpenPanel godoc
// @Summary Open the slide-over cart panel
// @Tags Store - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/cart/panel/open [post]
func OpenPanel(c *gin.Context) {
	userCart := sessionCart(c)
	userCart.OpenPanel()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart panel opened", userCart.Snapshot()))
}

// ClosePanel godoc
// @Summary Close the slide-over cart panel
// @Tags Store - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/cart/panel/close [post]
func ClosePanel(c *gin.Context) {
	userCart := sessionCart(c)
	userCart.ClosePanel()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart panel closed", userCart.Snapshot()))
}
