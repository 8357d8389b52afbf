package model

import "github.com/shopspring/decimal"

// CartItem is a single line in a session cart. Quantity is always >= 1;
// an item whose quantity drops to zero is removed, never stored at zero.
type CartItem struct {
	ProductID uint64          `json:"id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Size      string          `json:"size,omitempty"`
	Quantity  int             `json:"quantity"`
}

type AddCartItemRequest struct {
	ProductID uint64  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart snapshot plus the derived total, recomputed
// on every read.
type CartResponse struct {
	Items      []CartItem      `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
