package order_controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/services"
	"github.com/Norvila-Ecommerce/norvila-store-backend/utils"
)

// SendInvoice godoc
// @Summary Re-send the invoice email for an order
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Email sending disabled"
// @Router /admin/orders/{id}/invoice [post]
func SendInvoice(c *gin.Context) {
	if resend == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Transactional email is not configured"))
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	order, err := orders.GetOrder(orderID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	var shipping models.Address
	if err := json.Unmarshal(order.ShippingAddress, &shipping); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read order address"))
		return
	}

	customerName := shipping.FirstName + " " + shipping.LastName
	items := services.InvoiceItemsFromOrder(order.Items, order.Language)
	pdfBuffer := services.BuildOrderInvoicePDF(order, items, customerName, shipping.Email)

	err = resend.SendOrderInvoiceEmail(services.OrderInvoiceEmailData{
		CustomerName:  customerName,
		CustomerEmail: shipping.Email,
		OrderNumber:   order.OrderNumber,
		OrderDate:     utils.FormatDate(order.CreatedAt, order.Language),
		Items:         items,
		Subtotal:      order.Subtotal,
		ShippingCost:  order.ShippingCost,
		TotalAmount:   order.TotalAmount,
		PDFContent:    pdfBuffer.Bytes(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send invoice email"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Invoice email sent", nil))
}
