package blog_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

var catalog *services.CatalogService

// Init wires the catalog service; called once from main before routes.
func Init(svc *services.CatalogService) {
	catalog = svc
}

// GetPosts godoc
// @Summary List published blog posts
// @Tags Store - Blog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/blog [get]
func GetPosts(c *gin.Context) {
	posts, err := catalog.ListBlogPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch blog posts"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Blog posts fetched successfully", posts))
}
