// @title Norvila Store API
// @version 1.0
// @description Bilingual storefront backend for the Norvila e-commerce shop
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Norvila-Ecommerce/norvila-store-backend/cart"
	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	admin_contact "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/contact_controller"
	admin_media "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/media_controller"
	admin_order "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/order_controller"
	admin_user "github.com/Norvila-Ecommerce/norvila-store-backend/controllers/admin/user_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/auth_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/blog_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/cart_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/category_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/checkout_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/contact_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/filter_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/language_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/order_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/controllers/store/product_controller"
	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
	"github.com/Norvila-Ecommerce/norvila-store-backend/routes/admin_routes"
	"github.com/Norvila-Ecommerce/norvila-store-backend/routes/store_routes"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.DetectMockMode()

	// Infrastructure; each of these degrades to a disabled state when its
	// configuration is missing, so a bare `go run .` always boots.
	config.InitDB()
	config.ConnectRedis()
	config.InitGoogleOAuth()

	events := services.NewEventPublisher()
	resendClient := services.NewResendClient()
	mediaService := services.NewMediaService()

	catalogService := services.NewCatalogService(config.DB)
	checkoutService := services.NewCheckoutService(config.DB, events)
	orderService := services.NewOrderService(config.DB, events)
	authService := services.NewAuthService(config.DB)
	languageService := services.NewLanguageService(config.DB)
	contactService := services.NewContactService(config.DB, resendClient)

	carts := cart.NewStore()
	sweeperStop := make(chan struct{})
	carts.StartSweeper(30*time.Minute, sweeperStop)

	// Controller wiring
	product_controller.Init(catalogService)
	category_controller.Init(catalogService)
	filter_controller.Init(catalogService)
	blog_controller.Init(catalogService)
	cart_controller.Init(carts, catalogService)
	checkout_controller.Init(carts, checkoutService, orderService, resendClient)
	contact_controller.Init(contactService)
	language_controller.Init(languageService)
	auth_controller.Init(authService)
	order_controller.Init(orderService)
	admin_order.Init(orderService, resendClient)
	admin_user.Init(authService)
	admin_contact.Init(contactService)
	admin_media.Init(mediaService)

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Idempotency-Key", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.SessionMiddleware())
	router.Use(middleware.OptionalAuthMiddleware())
	router.Use(middleware.LanguageMiddleware(languageService))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(120, time.Minute))

	store_routes.SetupStorefrontRoutes(api)
	store_routes.SetupAuthRoutes(api)
	store_routes.SetupUserRoutes(api)
	admin_routes.SetupAdminRoutes(api)
	log.Println("✅ Routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutting down...")

	close(sweeperStop)
	events.Close()

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Forced shutdown: %v", err)
	}
	config.CloseDB()
	log.Println("✅ Server stopped")
}
