package store_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/blog_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/cart_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/category_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/checkout_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/contact_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/filter_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/language_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/product_controller"
)

// SetupStorefrontRoutes sets up the public storefront routes.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	// Catalog
	products := store.Group("/products")
	{
		products.GET("", product_controller.GetProducts)
		products.GET("/:id", product_controller.GetProductByID)
	}

	categories := store.Group("/categories")
	{
		categories.GET("", category_controller.GetCategories)
	}

	store.GET("/filters/metadata", filter_controller.GetFilterMetadata)

	// Blog
	blog := store.Group("/blog")
	{
		blog.GET("", blog_controller.GetPosts)
		blog.GET("/:slug", blog_controller.GetPostBySlug)
	}

	// Session cart
	cart := store.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", cart_controller.AddItem)
		cart.PUT("/items/:id", cart_controller.UpdateItem)
		cart.DELETE("/items/:id", cart_controller.RemoveItem)
		cart.DELETE("", cart_controller.ClearCart)
		cart.POST("/panel/toggle", cart_controller.TogglePanel)
		cart.POST("/panel/open", cart_controller.OpenPanel)
		cart.POST("/panel/close", cart_controller.ClosePanel)
	}

	// Checkout
	store.POST("/checkout", checkout_controller.PlaceOrder)

	// Contact form
	store.POST("/contact", contact_controller.SubmitMessage)

	// Language preference and translation catalogue
	language := store.Group("/language")
	{
		language.GET("", language_controller.GetLanguage)
		language.PUT("", language_controller.SetLanguage)
		language.GET("/translations", language_controller.GetTranslations)
	}
}
