package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norvila-Ecommerce/norvila-store-backend/mockdata"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

func invoiceTestOrder(lang string) (*models.Order, []InvoiceItem) {
	product := mockdata.Products()[0]
	size := "M"

	order := &models.Order{
		OrderNumber:  "ORD-TEST-00001",
		Subtotal:     59.98,
		ShippingCost: 4.99,
		TotalAmount:  64.97,
		Currency:     "EUR",
		Language:     lang,
		CreatedAt:    time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{Quantity: 2, Price: 29.99, Size: &size, Product: &product},
		},
	}
	return order, InvoiceItemsFromOrder(order.Items, lang)
}

func TestInvoiceItemsFromOrderUsesDisplayLanguage(t *testing.T) {
	product := mockdata.Products()[0]

	en := InvoiceItemsFromOrder([]models.OrderItem{{Quantity: 2, Price: 29.99, Product: &product}}, "en")
	require.Len(t, en, 1)
	assert.Equal(t, product.TitleEn, en[0].ProductName)
	assert.InDelta(t, 59.98, en[0].Subtotal, 0.001)

	lt := InvoiceItemsFromOrder([]models.OrderItem{{Quantity: 1, Price: 29.99, Product: &product}}, "lt")
	require.Len(t, lt, 1)
	assert.Equal(t, product.TitleLt, lt[0].ProductName)
}

func TestInvoiceItemsFromOrderMissingProduct(t *testing.T) {
	items := InvoiceItemsFromOrder([]models.OrderItem{{Quantity: 1, Price: 10}}, "en")
	require.Len(t, items, 1)
	assert.Equal(t, "Item", items[0].ProductName)
}

func TestBuildOrderInvoicePDFLocalized(t *testing.T) {
	// The renderer pulls the date and prices through the shared display
	// formatters; both locales must come out as a non-empty document.
	for _, lang := range []string{"en", "lt"} {
		order, items := invoiceTestOrder(lang)
		buf := BuildOrderInvoicePDF(order, items, "Jonas Jonaitis", "jonas@example.com")
		require.NotNil(t, buf)
		assert.Greater(t, buf.Len(), 0, "lang %s", lang)
	}
}
