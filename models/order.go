package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Address is a shipping or billing address. It is stored as a JSONB
// snapshot on the order so later edits to a profile never rewrite history.
type Address struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// Order is owned by the order backend; this application constructs the
// creation payload and reads results back.
type Order struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          *uuid.UUID     `json:"user_id,omitempty" gorm:"type:uuid;index"`
	OrderNumber     string         `json:"order_number" gorm:"uniqueIndex;not null"`
	Status          string         `json:"status" gorm:"not null;default:'pending';check:status IN ('pending','processing','shipped','delivered','cancelled');index"`
	Subtotal        float64        `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	ShippingCost    float64        `json:"shipping_cost" gorm:"type:numeric(12,2);not null"`
	TotalAmount     float64        `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Currency        string         `json:"currency" gorm:"type:varchar(3);default:'EUR'"`
	Language        string         `json:"language" gorm:"type:varchar(2);default:'en'"`
	ShippingAddress datatypes.JSON `json:"shipping_address" gorm:"type:jsonb;not null"`
	BillingAddress  datatypes.JSON `json:"billing_address" gorm:"type:jsonb;not null"`
	PaymentMethod   string         `json:"payment_method" gorm:"type:varchar(50);default:'cod'"`
	Notes           *string        `json:"notes,omitempty" gorm:"type:text"`
	TrackingNumber  *string        `json:"tracking_number,omitempty" gorm:"type:varchar(100)"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`

	Items []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a priced line captured at checkout time.
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity >= 1"`
	Price     float64   `json:"price" gorm:"type:numeric(12,2);not null"`
	Size      *string   `json:"size,omitempty" gorm:"type:varchar(20)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// CheckoutRequest carries the checkout form. Items come from the session
// cart, not from the request body.
type CheckoutRequest struct {
	ShippingAddress Address `json:"shipping_address" binding:"required"`
	BillingAddress  Address `json:"billing_address"`
	SameAsShipping  bool    `json:"same_as_shipping"`
	PaymentMethod   string  `json:"payment_method" binding:"omitempty,oneof=cod card bank_transfer"`
	Notes           *string `json:"notes,omitempty"`
}

// CheckoutResult is what the storefront shows on the confirmation screen.
type CheckoutResult struct {
	OrderID     *uuid.UUID `json:"order_id,omitempty"`
	OrderNumber string     `json:"order_number"`
	Subtotal    float64    `json:"subtotal"`
	Shipping    float64    `json:"shipping"`
	Total       float64    `json:"total"`
	DemoMode    bool       `json:"demo_mode,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
	TrackingNumber *string `json:"tracking_number,omitempty"`
}

// OrderHistoryResponse is the user-facing order list row.
type OrderHistoryResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}
