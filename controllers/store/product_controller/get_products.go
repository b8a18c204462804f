package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Retrieve products narrowed by category, price range, search text and sort key. Search matches the display-language title and description.
// @Tags Store - Products
// @Produce json
// @Param category query string false "Category slug, or 'all'" default(all)
// @Param minPrice query number false "Minimum price" default(0)
// @Param maxPrice query number false "Maximum price" default(1000)
// @Param q query string false "Search text"
// @Param sortBy query string false "Sort key (newest, oldest, price-low, price-high, name-asc, name-desc)" default(newest)
// @Param lang query string false "Display language (en, lt)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	page, limit := parsePagination(c)

	sel := models.DefaultFilterSelection()
	if v := c.Query("category"); v != "" {
		sel.Category = v
	}
	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			sel.MinPrice = f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			sel.MaxPrice = f
		}
	}
	sel.Search = c.Query("q")
	if v := c.Query("sortBy"); v != "" {
		sel.SortBy = models.SortOption(v)
		if !sel.SortBy.Valid() {
			sel.SortBy = models.SortNewest
		}
	}

	products, err := catalog.ListProducts(sel, lang)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	total := len(products)
	pageItems := paginate(products, page, limit)
	totalPages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		pageItems,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	))
}
