package models

// AddToCartRequest adds a product (optionally a specific size) to the
// session cart. The handler enforces the stock clamp before the cart
// mutation, mirroring the product page.
type AddToCartRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"omitempty,min=1"`
	Size      *string `json:"size,omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
