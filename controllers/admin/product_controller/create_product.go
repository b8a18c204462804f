package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/Norvila-Ecommerce/norvila-store-backend/cache"
	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// CreateProduct godoc
// @Summary Create a product
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProductRequest true "Bilingual product payload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "No database configured"
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Catalog writes require a configured database"))
		return
	}

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	product := models.Product{
		TitleEn:       req.TitleEn,
		TitleLt:       req.TitleLt,
		DescriptionEn: req.DescriptionEn,
		DescriptionLt: req.DescriptionLt,
		Price:         req.Price,
		Stock:         req.Stock,
		CategoryID:    req.CategoryID,
		ImageURL:      req.ImageURL,
		Images:        models.StringList(req.Images),
		Sizes:         models.StringList(req.Sizes),
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	catalog_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created", product))
}
