package model

import (
	"time"

	"github.com/OuicestnousCA/oca/constant"
	"github.com/shopspring/decimal"
)

// OrderItem is the subset of a cart item persisted into order metadata.
type OrderItem struct {
	ProductID uint64          `json:"id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0,lte=1000"`
	Price     decimal.Decimal `json:"price"`
	Size      string          `json:"size,omitempty"`
	Image     string          `json:"image,omitempty"`
}

// Order is the durable record of a paid checkout. Created exactly once
// by the payment verifier; afterwards only the status field changes,
// through admin updates. There is no delete path.
type Order struct {
	ID               string                 `db:"id" json:"id"`
	OrderNumber      string                 `db:"order_number" json:"order_number"`
	CustomerEmail    string                 `db:"customer_email" json:"customer_email"`
	CustomerName     string                 `db:"customer_name" json:"customer_name"`
	CustomerPhone    string                 `db:"customer_phone" json:"customer_phone,omitempty"`
	Items            []OrderItem            `db:"-" json:"items"`
	ItemsJSON        []byte                 `db:"items" json:"-"`
	Subtotal         decimal.Decimal        `db:"subtotal" json:"subtotal"`
	ShippingCost     decimal.Decimal        `db:"shipping_cost" json:"shipping_cost"`
	Tax              decimal.Decimal        `db:"tax" json:"tax"`
	Total            decimal.Decimal        `db:"total" json:"total"`
	Status           constant.OrderStatus   `db:"status" json:"status"`
	PaymentStatus    constant.PaymentStatus `db:"payment_status" json:"payment_status"`
	PaymentReference string                 `db:"payment_reference" json:"payment_reference"`
	PaymentProvider  string                 `db:"payment_provider" json:"payment_provider"`
	ShippingAddress  *ShippingAddress       `db:"-" json:"shipping_address,omitempty"`
	ShippingJSON     []byte                 `db:"shipping_address" json:"-"`
	CreatedAt        time.Time              `db:"created_at" json:"created_at"`
}

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	Status  constant.OrderStatus
	Page    int
	PerPage int
}

type OrderListResponse struct {
	Orders     []Order `json:"orders"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
}

type TrackOrderRequest struct {
	OrderNumber string `json:"order_number" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

type UpdateOrderStatusRequest struct {
	Status constant.OrderStatus `json:"status" validate:"required"`
}
