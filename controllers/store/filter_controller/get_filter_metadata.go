package filter_controller

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

// GetFilterMetadata godoc
// @Summary Get filter sidebar metadata
// @Description Returns categories and the catalog price range for the filter sidebar.
// @Tags Store - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := catalog_cache.GetFilterMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", cached))
		return
	}

	metadata, err := catalog.FilterMetadata()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}
	catalog_cache.SetFilterMetadata(metadata)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
