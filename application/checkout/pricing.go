package checkout

import (
	"github.com/OuicestnousCA/oca/model"
	"github.com/shopspring/decimal"
)

// PricingPolicy computes shipping and tax on top of the gateway-verified
// subtotal. The store currently ships free and charges no tax, but the
// verifier always totals through a policy so a real one can be wired in
// without touching the payment flow.
type PricingPolicy interface {
	ShippingCost(items []model.OrderItem) decimal.Decimal
	Tax(subtotal decimal.Decimal) decimal.Decimal
}

// FlatPricing is the wired default: free shipping, no tax, everything
// folded into the item total upstream.
type FlatPricing struct{}

func (FlatPricing) ShippingCost(_ []model.OrderItem) decimal.Decimal {
	return decimal.Zero
}

func (FlatPricing) Tax(_ decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}
