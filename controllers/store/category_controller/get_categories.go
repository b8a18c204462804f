package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/Norvila-Ecommerce/norvila-store-backend/cache"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

var catalog *services.CatalogService

// Init wires the catalog service; called once from main before routes.
func Init(svc *services.CatalogService) {
	catalog = svc
}

// GetCategories godoc
// @Summary List product categories
// @Tags Store - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	if cached, ok := catalog_cache.GetCategories(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", cached))
		return
	}

	categories, err := catalog.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}
	catalog_cache.SetCategories(categories)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
