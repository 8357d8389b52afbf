package model

// Wire types for the Paystack transaction API. Amounts are in the
// gateway's minor currency unit.

type GatewayInitRequest struct {
	Email       string          `json:"email"`
	Amount      int64           `json:"amount"`
	CallbackURL string          `json:"callback_url,omitempty"`
	Metadata    PaymentMetadata `json:"metadata"`
}

type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type InitializeResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    InitializeData `json:"data"`
}

type GatewayCustomer struct {
	Email string `json:"email"`
}

// VerifyData is the transaction record echoed back by the verify call.
// Status "success" is the only value that materializes an order.
type VerifyData struct {
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency,omitempty"`
	PaidAt    string          `json:"paid_at,omitempty"`
	Channel   string          `json:"channel,omitempty"`
	Customer  GatewayCustomer `json:"customer"`
	Metadata  PaymentMetadata `json:"metadata"`
}

type VerifyResponse struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    VerifyData `json:"data"`
}

const VerifyStatusSuccess = "success"
