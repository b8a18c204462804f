package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/auth_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
)

// SetupAuthRoutes sets up all authentication routes.
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", auth_controller.Register)
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)

		// Google OAuth routes
		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.Me)
	}
}
