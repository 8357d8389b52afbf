package constant

// Checkout input bounds. Requests outside these are rejected before any
// gateway call is made.
const (
	// MaxChargeAmount bounds a single charge in major currency units.
	MaxChargeAmount = 1_000_000

	// MaxOrderItems caps distinct line items per checkout.
	MaxOrderItems = 100

	// MaxItemQuantity caps the quantity of a single line item.
	MaxItemQuantity = 1000

	// MaxItemPrice bounds a single item price in major currency units.
	MaxItemPrice = 1_000_000

	// MaxReferenceLength bounds the gateway transaction reference.
	MaxReferenceLength = 100
)

// MinorUnitFactor converts major currency units to the gateway's minor
// unit (Rand to cents, Naira to kobo).
const MinorUnitFactor = 100
