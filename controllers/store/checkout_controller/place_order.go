package checkout_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Norvila-Ecommerce/norvila-store-backend/cart"
	"github.com/Norvila-Ecommerce/norvila-store-backend/i18n"
	"github.com/Norvila-Ecommerce/norvila-store-backend/middleware"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
	"github.com/Norvila-Ecommerce/norvila-store-backend/utils"
)

var (
	carts    *cart.Store
	checkout *services.CheckoutService
	orders   *services.OrderService
	resend   *services.ResendClient
)

// Init wires the checkout dependencies; called once from main before routes.
func Init(store *cart.Store, checkoutSvc *services.CheckoutService, orderSvc *services.OrderService, resendClient *services.ResendClient) {
	carts = store
	checkout = checkoutSvc
	orders = orderSvc
	resend = resendClient
}

// PlaceOrder godoc
// @Summary Place an order from the session cart
// @Description Validates the shipping address, prices the cart (free shipping above 50.00) and submits the order. With no backend configured the order resolves as a demo-mode success. An Idempotency-Key header guards against double submission.
// @Tags Store - Checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client-generated key, one per checkout attempt"
// @Param request body models.CheckoutRequest true "Addresses, payment method and notes"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResult}
// @Failure 400 {object} models.ApiResponse "Empty cart, invalid body or address validation failure"
// @Failure 409 {object} models.ApiResponse "Duplicate submission or insufficient stock"
// @Router /store/checkout [post]
func PlaceOrder(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if fields := services.ValidateAddress(req.ShippingAddress); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, fields))
		return
	}
	if !req.SameAsShipping && req.BillingAddress != (models.Address{}) {
		if fields := services.ValidateAddress(req.BillingAddress); len(fields) > 0 {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, fields))
			return
		}
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(c); ok {
		userID = &id
	}

	lang := middleware.GetLanguage(c)
	userCart := carts.Get(middleware.GetSessionID(c))
	lines := userCart.Lines()

	result, err := checkout.PlaceOrder(userID, lines, req, lang, c.GetHeader("Idempotency-Key"))
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	case errors.Is(err, services.ErrDuplicateSubmission):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Order already submitted"))
		return
	case errors.Is(err, services.ErrInsufficientStock):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, i18n.T(i18n.ParseLanguage(lang), i18n.KeyNotEnoughStock)))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}

	// Order accepted; the cart is cleared before the customer sees the
	// confirmation.
	userCart.Clear()
	userCart.ClosePanel()

	if !result.DemoMode && result.OrderID != nil {
		go sendConfirmationEmail(*result.OrderID, userID, req.ShippingAddress, lang)
	}

	message := i18n.T(i18n.ParseLanguage(lang), i18n.KeyOrderPlaced)
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, result))
}

// sendConfirmationEmail builds the invoice PDF and mails it. Failures are
// logged only; the order already succeeded.
func sendConfirmationEmail(orderID uuid.UUID, userID *uuid.UUID, shipping models.Address, lang string) {
	if resend == nil || userID == nil {
		return
	}

	order, err := orders.GetUserOrder(*userID, orderID)
	if err != nil {
		log.Printf("❌ failed to load order %s for confirmation email: %v", orderID, err)
		return
	}

	customerName := shipping.FirstName + " " + shipping.LastName
	items := services.InvoiceItemsFromOrder(order.Items, lang)
	pdfBuffer := services.BuildOrderInvoicePDF(order, items, customerName, shipping.Email)

	err = resend.SendOrderInvoiceEmail(services.OrderInvoiceEmailData{
		CustomerName:  customerName,
		CustomerEmail: shipping.Email,
		OrderNumber:   order.OrderNumber,
		OrderDate:     utils.FormatDate(order.CreatedAt, lang),
		Items:         items,
		Subtotal:      order.Subtotal,
		ShippingCost:  order.ShippingCost,
		TotalAmount:   order.TotalAmount,
		PDFContent:    pdfBuffer.Bytes(),
	})
	if err != nil {
		log.Printf("❌ failed to send confirmation email for order %s: %v", order.OrderNumber, err)
	}
}
