package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Norvila-Ecommerce/norvila-store-backend/i18n"
	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

// AddItem godoc
// @Summary Add a product to the cart
// @Description Adds a (product, size) line or increments an existing one. The requested quantity plus what is already in the cart must not exceed stock.
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product, quantity and optional size"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Not enough stock"
// @Router /store/cart/items [post]
func AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if req.Quantity < 1 {
		req.Quantity = 1
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	product, err := catalog.GetProduct(productID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	userCart := sessionCart(c)

	// Stock clamp lives here, not in the cart: what is already in the
	// cart counts against the available units.
	inCart := 0
	for _, line := range userCart.Lines() {
		if line.ProductID == product.ID.String() {
			inCart += line.Quantity
		}
	}
	if inCart+req.Quantity > product.Stock {
		lang := i18n.ParseLanguage(middleware.GetLanguage(c))
		c.JSON(http.StatusConflict, models.ErrorResponse(c, i18n.T(lang, i18n.KeyNotEnoughStock)))
		return
	}

	userCart.AddItem(product, req.Quantity, req.Size)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", userCart.Snapshot()))
}
