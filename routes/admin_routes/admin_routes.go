package admin_routes

import (
	"github.com/gin-gonic/gin"

	admin_blog "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/blog_controller"
	admin_category "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/category_controller"
	admin_contact "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/contact_controller"
	admin_dashboard "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/dashboard_controller"
	admin_media "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/media_controller"
	admin_order "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/order_controller"
	admin_product "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/product_controller"
	admin_user "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/user_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
)

// SetupAdminRoutes sets up all admin routes behind the auth + role guards.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdminMiddleware())
	{
		// Dashboard
		admin.GET("/dashboard/stats", admin_dashboard.GetDashboardStats)

		// Orders
		admin.GET("/orders", admin_order.ListOrders)
		admin.PUT("/orders/:id/status", admin_order.UpdateOrderStatus)
		admin.POST("/orders/:id/invoice", admin_order.SendInvoice)

		// Users
		admin.GET("/users", admin_user.ListUsers)
		admin.PUT("/users/:id/role", admin_user.UpdateUserRole)

		// Contact inbox
		admin.GET("/contact-messages", admin_contact.ListMessages)

		// Catalog management
		admin.POST("/products", admin_product.CreateProduct)
		admin.PUT("/products/:id", admin_product.UpdateProduct)
		admin.DELETE("/products/:id", admin_product.DeleteProduct)

		admin.POST("/categories", admin_category.CreateCategory)
		admin.PUT("/categories/:id", admin_category.UpdateCategory)
		admin.DELETE("/categories/:id", admin_category.DeleteCategory)

		// Blog management
		admin.POST("/blog", admin_blog.CreatePost)
		admin.PUT("/blog/:id", admin_blog.UpdatePost)
		admin.DELETE("/blog/:id", admin_blog.DeletePost)

		// Media uploads
		admin.POST("/media/images", admin_media.UploadImages)
	}
}
