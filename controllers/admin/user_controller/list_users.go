package user_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

var auth *services.AuthService

// Init wires the admin user handlers to the auth service.
func Init(authSvc *services.AuthService) {
	auth = authSvc
}

// ListUsers godoc
// @Summary List all registered users
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/users [get]
func ListUsers(c *gin.Context) {
	users, err := auth.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch users"))
		return
	}

	responses := make([]models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Users fetched successfully", responses))
}
