package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/Norvila-Ecommerce/norvila-store-backend/cache"
	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/utils"
)

// CreateCategory godoc
// @Summary Create a category
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CategoryRequest true "Bilingual category payload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already in use"
// @Failure 503 {object} models.ApiResponse "No database configured"
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Catalog writes require a configured database"))
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.NameEn)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing int64
	config.DB.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this slug already exists"))
		return
	}

	category := models.Category{
		Slug:   slug,
		NameEn: req.NameEn,
		NameLt: req.NameLt,
	}
	if err := config.DB.WithContext(ctx).Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}
	catalog_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created", category))
}
