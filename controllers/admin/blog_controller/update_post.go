package blog_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// UpdatePost godoc
// @Summary Update a blog post
// @Tags Admin - Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body models.UpdateBlogPostRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "No database configured"
// @Router /admin/blog/{id} [put]
func UpdatePost(c *gin.Context) {
	if config.DB == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Blog writes require a configured database"))
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	var req models.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.BlogPost
	err = config.DB.WithContext(ctx).First(&post, "id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch post"))
		return
	}

	updates := map[string]interface{}{}
	if req.TitleEn != nil {
		updates["title_en"] = *req.TitleEn
	}
	if req.TitleLt != nil {
		updates["title_lt"] = *req.TitleLt
	}
	if req.ContentEn != nil {
		updates["content_en"] = *req.ContentEn
	}
	if req.ContentLt != nil {
		updates["content_lt"] = *req.ContentLt
	}
	if req.ExcerptEn != nil {
		updates["excerpt_en"] = *req.ExcerptEn
	}
	if req.ExcerptLt != nil {
		updates["excerpt_lt"] = *req.ExcerptLt
	}
	if req.FeaturedImage != nil {
		updates["featured_image"] = *req.FeaturedImage
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
		// First publish stamps the publication time.
		if *req.IsPublished && post.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}

	if len(updates) > 0 {
		if err := config.DB.WithContext(ctx).Model(&post).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update post"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post updated", post))
}
