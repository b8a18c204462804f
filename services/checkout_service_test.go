package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norvila-Ecommerce/norvila-store-backend/cart"
	"github.com/Norvila-Ecommerce/norvila-store-backend/mockdata"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

func validAddress() models.Address {
	return models.Address{
		FirstName:    "Jonas",
		LastName:     "Kazlauskas",
		Email:        "jonas@example.com",
		Phone:        "+37060000000",
		AddressLine1: "Gedimino pr. 1",
		City:         "Vilnius",
		PostalCode:   "01103",
		Country:      "LT",
	}
}

func TestValidateAddressAccepts(t *testing.T) {
	fields := ValidateAddress(validAddress())
	assert.Empty(t, fields)
}

func TestValidateAddressRejectsEmptyCity(t *testing.T) {
	addr := validAddress()
	addr.City = "   "

	fields := ValidateAddress(addr)
	require.Contains(t, fields, "city")

	addr.City = "Kaunas"
	assert.Empty(t, ValidateAddress(addr))
}

func TestValidateAddressReportsAllMissingFields(t *testing.T) {
	fields := ValidateAddress(models.Address{})
	for _, name := range []string{"first_name", "last_name", "email", "phone", "address_line_1", "city", "postal_code"} {
		assert.Contains(t, fields, name)
	}
}

func TestValidateAddressEmailShape(t *testing.T) {
	cases := map[string]bool{
		"jonas@example.com": true,
		"a@b.co":            true,
		"no-at-sign":        false,
		"@example.com":      false,
		"jonas@":            false,
		"jonas@nodot":       false,
		"jonas@dot.":        false,
	}
	for email, valid := range cases {
		addr := validAddress()
		addr.Email = email
		fields := ValidateAddress(addr)
		if valid {
			assert.NotContains(t, fields, "email", email)
		} else {
			assert.Contains(t, fields, "email", email)
		}
	}
}

func TestShippingCostBoundary(t *testing.T) {
	assert.InDelta(t, 5.99, ShippingCost(50.00), 0.001)
	assert.InDelta(t, 0.0, ShippingCost(51.00), 0.001)
	assert.InDelta(t, 0.0, ShippingCost(50.01), 0.001)
	assert.InDelta(t, 5.99, ShippingCost(0), 0.001)
}

func cartLinesFor(t *testing.T, quantity int) []cart.Line {
	t.Helper()
	product, ok := mockdata.ProductByID(mockdata.Products()[0].ID)
	require.True(t, ok)

	c := cart.New()
	c.AddItem(&product, quantity, nil)
	return c.Lines()
}

func TestSubtotalUsesExactArithmetic(t *testing.T) {
	lines := cartLinesFor(t, 3) // 29.99 × 3
	assert.Equal(t, 89.97, Subtotal(lines))
}

func TestPlaceOrderDemoMode(t *testing.T) {
	svc := NewCheckoutService(nil, nil)
	lines := cartLinesFor(t, 2)

	req := models.CheckoutRequest{ShippingAddress: validAddress(), SameAsShipping: true}
	result, err := svc.PlaceOrder(nil, lines, req, "en", "")
	require.NoError(t, err)

	assert.True(t, result.DemoMode)
	assert.Nil(t, result.OrderID)
	assert.Contains(t, result.OrderNumber, "ORD-")
	assert.InDelta(t, 59.98, result.Subtotal, 0.001)
	assert.InDelta(t, 0.0, result.Shipping, 0.001)
	assert.InDelta(t, 59.98, result.Total, 0.001)
}

func TestPlaceOrderAddsShippingBelowThreshold(t *testing.T) {
	svc := NewCheckoutService(nil, nil)
	lines := cartLinesFor(t, 1) // 29.99

	req := models.CheckoutRequest{ShippingAddress: validAddress(), SameAsShipping: true}
	result, err := svc.PlaceOrder(nil, lines, req, "en", "")
	require.NoError(t, err)

	assert.InDelta(t, 29.99, result.Subtotal, 0.001)
	assert.InDelta(t, 5.99, result.Shipping, 0.001)
	assert.InDelta(t, 35.98, result.Total, 0.001)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := NewCheckoutService(nil, nil)

	req := models.CheckoutRequest{ShippingAddress: validAddress()}
	_, err := svc.PlaceOrder(nil, nil, req, "en", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderRejectsDuplicateIdempotencyKey(t *testing.T) {
	svc := NewCheckoutService(nil, nil)
	lines := cartLinesFor(t, 1)
	req := models.CheckoutRequest{ShippingAddress: validAddress(), SameAsShipping: true}

	key := uuid.NewString()
	_, err := svc.PlaceOrder(nil, lines, req, "en", key)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(nil, lines, req, "en", key)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)

	// A fresh key goes through.
	_, err = svc.PlaceOrder(nil, lines, req, "en", uuid.NewString())
	assert.NoError(t, err)
}

func TestPlaceOrderDistinctOrderNumbers(t *testing.T) {
	svc := NewCheckoutService(nil, nil)
	lines := cartLinesFor(t, 1)
	req := models.CheckoutRequest{ShippingAddress: validAddress(), SameAsShipping: true}

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		result, err := svc.PlaceOrder(nil, lines, req, "en", "")
		require.NoError(t, err)
		assert.False(t, seen[result.OrderNumber], "order number repeated: %s", result.OrderNumber)
		seen[result.OrderNumber] = true
	}
}
