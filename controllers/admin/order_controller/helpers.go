package order_controller

import "github.com/Norvila-Ecommerce/norvila-store-backend/services"

var (
	orders *services.OrderService
	resend *services.ResendClient
)

// Init wires the admin order handlers to their services.
func Init(orderSvc *services.OrderService, resendClient *services.ResendClient) {
	orders = orderSvc
	resend = resendClient
}
