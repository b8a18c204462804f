package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/order_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
)

// SetupUserRoutes sets up the signed-in user routes.
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/orders", order_controller.ListOrders)
		user.GET("/orders/:id", order_controller.GetOrder)
		user.GET("/orders/:id/invoice", order_controller.DownloadInvoice)
	}
}
