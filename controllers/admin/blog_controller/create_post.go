package blog_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/utils"
)

// CreatePost godoc
// @Summary Create a blog post
// @Tags Admin - Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.BlogPostRequest true "Bilingual post payload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "No database configured"
// @Router /admin/blog [post]
func CreatePost(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Blog writes require a configured database"))
		return
	}

	var req models.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.TitleEn)
	}

	post := models.BlogPost{
		TitleEn:       req.TitleEn,
		TitleLt:       req.TitleLt,
		ContentEn:     req.ContentEn,
		ContentLt:     req.ContentLt,
		ExcerptEn:     req.ExcerptEn,
		ExcerptLt:     req.ExcerptLt,
		FeaturedImage: req.FeaturedImage,
		Slug:          slug,
		IsPublished:   req.IsPublished,
	}
	if authorID, ok := middleware.GetUserIDFromContext(c); ok {
		post.AuthorID = &authorID
	}
	if req.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create post"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Post created", post))
}
