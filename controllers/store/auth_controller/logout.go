package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// Logout godoc
// @Summary Sign out
// @Description Clears the auth cookie. The session cart is kept.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	clearSession(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Signed out", nil))
}
