package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

func TestOrderHistoryEmptyWithoutBackend(t *testing.T) {
	svc := NewOrderService(nil, nil)

	history, err := svc.ListUserOrders(uuid.Must(uuid.NewV7()))
	assert.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetOrderNotFoundWithoutBackend(t *testing.T) {
	svc := NewOrderService(nil, nil)

	_, err := svc.GetUserOrder(uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetOrder(uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAllOrdersEmptyWithoutBackend(t *testing.T) {
	svc := NewOrderService(nil, nil)

	orders, total, err := svc.ListAllOrders("", 1, 20)
	assert.NoError(t, err)
	assert.Empty(t, orders)
	assert.Zero(t, total)
}

func TestUpdateStatusRejectedWithoutBackend(t *testing.T) {
	svc := NewOrderService(nil, nil)

	_, err := svc.UpdateStatus(uuid.Must(uuid.NewV7()), models.UpdateOrderStatusRequest{
		Status: models.OrderStatusShipped,
	})
	assert.ErrorIs(t, err, ErrOrderBackendUnavailable)
}
