package blog_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

// GetPostBySlug godoc
// @Summary Get a published blog post by slug
// @Tags Store - Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/blog/{slug} [get]
func GetPostBySlug(c *gin.Context) {
	post, err := catalog.GetBlogPost(c.Param("slug"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Blog post not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch blog post"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Blog post fetched successfully", post))
}
