package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalog_cache "github.com/Norvila-Ecommerce/norvila-store-backend/cache"
	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Fails while products still reference the category.
// @Tags Admin - Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Category still has products"
// @Failure 503 {object} models.ApiResponse "No database configured"
// @Router /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Catalog writes require a configured database"))
		return
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var inUse int64
	config.DB.WithContext(ctx).Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&inUse)
	if inUse > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category still has products assigned to it"))
		return
	}

	result := config.DB.WithContext(ctx).Delete(&models.Category{}, "id = ?", categoryID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}
	catalog_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted", nil))
}
