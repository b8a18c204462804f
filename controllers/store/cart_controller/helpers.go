package cart_controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/cart"
	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
)

var (
	carts   *cart.Store
	catalog *services.CatalogService
)

// Init wires the cart store and catalog; called once from main before routes.
func Init(store *cart.Store, svc *services.CatalogService) {
	carts = store
	catalog = svc
}

func sessionCart(c *gin.Context) *cart.Cart {
	return carts.Get(middleware.GetSessionID(c))
}
