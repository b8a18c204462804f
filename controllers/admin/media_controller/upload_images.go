package media_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

var media *services.MediaService

// Init wires the media handlers to the upload service.
func Init(mediaSvc *services.MediaService) {
	media = mediaSvc
}

// UploadImages godoc
// @Summary Upload product or blog images
// @Description Accepts multipart form files under "images" and returns their hosted URLs.
// @Tags Admin - Media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Image files"
// @Param folder formData string false "Target folder" default(products)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Image upload disabled"
// @Router /admin/media/images [post]
func UploadImages(c *gin.Context) {
	if !media.Enabled() {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image upload is not configured"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No images provided"))
		return
	}

	folder := c.DefaultPostForm("folder", "products")

	urls, err := media.UploadImages(c.Request.Context(), files, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded", gin.H{"urls": urls}))
}
