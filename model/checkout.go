package model

import "github.com/shopspring/decimal"

// CheckoutForm is the contact and shipping data collected at checkout.
// It exists only for the duration of the request.
type CheckoutForm struct {
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	// Honeypot is a hidden field a real customer never fills.
	Honeypot string `json:"company,omitempty"`
}

type ShippingAddress struct {
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code,omitempty"`
}

// PaymentMetadata rides along with the gateway transaction and is echoed
// back on verify. The verifier trusts this echo, not a second client
// call, as the source of order contents.
type PaymentMetadata struct {
	CustomerName    string           `json:"customer_name" validate:"required"`
	CustomerEmail   string           `json:"customer_email" validate:"required,email"`
	Phone           string           `json:"phone,omitempty"`
	Honeypot        string           `json:"honeypot,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
	Items           []OrderItem      `json:"items" validate:"required,min=1,dive"`
}

type PaymentInitRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Amount      decimal.Decimal `json:"amount"`
	CallbackURL string          `json:"callback_url"`
	Metadata    PaymentMetadata `json:"metadata"`
}

type PaymentVerifyRequest struct {
	Reference string `json:"reference" validate:"required"`
}

// CheckoutResponse carries the gateway redirect target back to the
// browser.
type CheckoutResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference"`
}

// VerifyResult is the verifier's answer to the browser. Paid reports
// the gateway's verdict; Order is best effort and may be nil even when
// Paid is true (persistence failed after money moved).
type VerifyResult struct {
	Paid           bool        `json:"paid"`
	GatewayStatus  string      `json:"gateway_status"`
	GatewayMessage string      `json:"gateway_message,omitempty"`
	Order          *Order      `json:"order,omitempty"`
	Raw            *VerifyData `json:"data,omitempty"`
}
