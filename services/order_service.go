package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// ErrOrderBackendUnavailable is returned from order reads in demo mode,
// where nothing was ever persisted.
var ErrOrderBackendUnavailable = errors.New("order backend unavailable")

// OrderService reads and updates persisted orders. Unlike catalog reads
// there is no fixture fallback: demo-mode orders never existed server-side,
// so history is simply empty.
type OrderService struct {
	db     *gorm.DB
	events *EventPublisher
}

func NewOrderService(db *gorm.DB, events *EventPublisher) *OrderService {
	return &OrderService{db: db, events: events}
}

func (s *OrderService) unavailable() bool {
	return config.MockMode || s.db == nil
}

// ListUserOrders returns the caller's order history, newest first.
func (s *OrderService) ListUserOrders(userID uuid.UUID) ([]models.OrderHistoryResponse, error) {
	if s.unavailable() {
		return []models.OrderHistoryResponse{}, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	history := make([]models.OrderHistoryResponse, len(orders))
	for i, order := range orders {
		count := 0
		for _, item := range order.Items {
			count += item.Quantity
		}
		history[i] = models.OrderHistoryResponse{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Status:      order.Status,
			TotalAmount: order.TotalAmount,
			ItemCount:   count,
			CreatedAt:   order.CreatedAt,
		}
	}
	return history, nil
}

// GetUserOrder loads one order with its items, scoped to the owner.
func (s *OrderService) GetUserOrder(userID, orderID uuid.UUID) (*models.Order, error) {
	if s.unavailable() {
		return nil, ErrNotFound
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder loads one order with its items without an owner scope, for
// admin use.
func (s *OrderService) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	if s.unavailable() {
		return nil, ErrNotFound
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListAllOrders returns every order for the admin dashboard, optionally
// narrowed by status.
func (s *OrderService) ListAllOrders(status string, page, limit int) ([]models.Order, int64, error) {
	if s.unavailable() {
		return []models.Order{}, 0, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := s.db.WithContext(ctx).Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus moves an order through its lifecycle and publishes the
// change for downstream consumers.
func (s *OrderService) UpdateStatus(orderID uuid.UUID, req models.UpdateOrderStatusRequest) (*models.Order, error) {
	if s.unavailable() {
		return nil, ErrOrderBackendUnavailable
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	err := s.db.WithContext(ctx).First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.TrackingNumber != nil {
		updates["tracking_number"] = *req.TrackingNumber
	}
	if err := s.db.WithContext(ctx).Model(&order).Updates(updates).Error; err != nil {
		return nil, err
	}

	order.Status = req.Status
	if req.TrackingNumber != nil {
		order.TrackingNumber = req.TrackingNumber
	}

	if s.events != nil {
		s.events.PublishOrderStatusChanged(&order)
	}
	return &order, nil
}
