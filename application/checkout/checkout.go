package checkout

import (
	"context"
	goerrors "errors"
	"strconv"
	"strings"
	"time"

	cartapp "github.com/OuicestnousCA/oca/application/cart"
	"github.com/OuicestnousCA/oca/cmd/config"
	"github.com/OuicestnousCA/oca/constant"
	"github.com/OuicestnousCA/oca/model"
	orderrepo "github.com/OuicestnousCA/oca/repository/order"
	"github.com/OuicestnousCA/oca/thirdparty/paystack"
	"github.com/OuicestnousCA/oca/thirdparty/rabbitmq"
	"github.com/OuicestnousCA/oca/utils/errors"
	"github.com/OuicestnousCA/oca/utils/logger"
	"github.com/OuicestnousCA/oca/utils/sanitize"
	validatorx "github.com/OuicestnousCA/oca/utils/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CheckoutApp interface {
	// Initialize starts a gateway transaction for a validated payload
	// and returns the gateway response verbatim. Nothing is persisted.
	Initialize(ctx context.Context, req *model.PaymentInitRequest) (*model.InitializeResponse, error)

	// Verify asks the gateway whether the referenced transaction was
	// paid and, if and only if it was, materializes the order.
	Verify(ctx context.Context, reference string) (*model.VerifyResult, error)

	// Checkout maps the session cart plus the form into an Initialize
	// call. The cart is left untouched.
	Checkout(ctx context.Context, sessionID string, form *model.CheckoutForm) (*model.CheckoutResponse, error)

	// Complete runs Verify for the reference the gateway redirected
	// back with; on paid it clears the cart, otherwise the cart is
	// preserved for retry.
	Complete(ctx context.Context, sessionID, reference string) (*model.VerifyResult, error)
}

type checkoutAppImpl struct {
	config    *config.Config
	gateway   paystack.Gateway
	orderRepo orderrepo.OrderRepository
	cartApp   cartapp.CartApp
	pricing   PricingPolicy
	publisher rabbitmq.Dispatcher
}

func NewCheckoutApp(config *config.Config, gateway paystack.Gateway, orderRepo orderrepo.OrderRepository, cartApp cartapp.CartApp, pricing PricingPolicy, publisher rabbitmq.Dispatcher) CheckoutApp {
	if pricing == nil {
		pricing = FlatPricing{}
	}
	return &checkoutAppImpl{
		config:    config,
		gateway:   gateway,
		orderRepo: orderRepo,
		cartApp:   cartApp,
		pricing:   pricing,
		publisher: publisher,
	}
}

func (s *checkoutAppImpl) Initialize(ctx context.Context, req *model.PaymentInitRequest) (*model.InitializeResponse, error) {
	// Bot traffic fills the hidden field. The response is the same
	// generic 400 as any validation failure.
	if req.Metadata.Honeypot != "" {
		logger.Info("[Initialize] honeypot tripped", zap.String("email", req.Email))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := validateInitRequest(req); err != nil {
		return nil, err
	}

	sanitizeMetadata(&req.Metadata)

	// Major units to the gateway's minor unit, rounded.
	amountMinor := req.Amount.Mul(decimal.NewFromInt(constant.MinorUnitFactor)).Round(0).IntPart()

	res, err := s.gateway.Initialize(ctx, &model.GatewayInitRequest{
		Email:       req.Email,
		Amount:      amountMinor,
		CallbackURL: req.CallbackURL,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, s.gatewayError("Initialize", err)
	}

	logger.Info("[Initialize] transaction initialized",
		zap.String("reference", res.Data.Reference),
		zap.Int64("amount_minor", amountMinor))
	return res, nil
}

func (s *checkoutAppImpl) Verify(ctx context.Context, reference string) (*model.VerifyResult, error) {
	if !sanitize.Reference(reference) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// Replayed verification (back button, duplicate callback) returns
	// the order already written for this reference.
	existing, err := s.orderRepo.GetByReference(ctx, reference)
	if err != nil {
		logger.Error("[Verify] lookup existing order", zap.String("reference", reference), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return &model.VerifyResult{
			Paid:          true,
			GatewayStatus: model.VerifyStatusSuccess,
			Order:         existing,
		}, nil
	}

	res, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, s.gatewayError("Verify", err)
	}

	// The gateway's verify verdict, not the client's redirect, decides
	// whether this was paid.
	if res.Data.Status != model.VerifyStatusSuccess {
		logger.Info("[Verify] transaction not successful",
			zap.String("reference", reference),
			zap.String("gateway_status", res.Data.Status))
		return &model.VerifyResult{
			Paid:           false,
			GatewayStatus:  res.Data.Status,
			GatewayMessage: res.Message,
			Raw:            &res.Data,
		}, nil
	}

	order, err := s.materializeOrder(ctx, reference, &res.Data)
	if err != nil {
		return nil, err
	}

	return &model.VerifyResult{
		Paid:          true,
		GatewayStatus: res.Data.Status,
		Order:         order,
		Raw:           &res.Data,
	}, nil
}

// materializeOrder turns a gateway-confirmed transaction into the
// durable order row. A nil order with nil error means payment stands
// but bookkeeping failed; the caller must still report success.
func (s *checkoutAppImpl) materializeOrder(ctx context.Context, reference string, data *model.VerifyData) (*model.Order, error) {
	meta := data.Metadata

	// The metadata echo comes from the gateway's transaction record,
	// not from the client, but it is still validated and sanitized
	// before persisting.
	if err := validateMetadata(&meta); err != nil {
		logger.Error("[Verify] malformed metadata echo", zap.String("reference", reference), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	sanitizeMetadata(&meta)

	customerEmail := meta.CustomerEmail
	if customerEmail == "" {
		customerEmail = data.Customer.Email
	}

	subtotal := decimal.NewFromInt(data.Amount).Div(decimal.NewFromInt(constant.MinorUnitFactor))
	shipping := s.pricing.ShippingCost(meta.Items)
	tax := s.pricing.Tax(subtotal)

	order := &model.Order{
		ID:               uuid.NewString(),
		OrderNumber:      generateOrderNumber(time.Now()),
		CustomerEmail:    customerEmail,
		CustomerName:     meta.CustomerName,
		CustomerPhone:    meta.Phone,
		Items:            meta.Items,
		Subtotal:         subtotal,
		ShippingCost:     shipping,
		Tax:              tax,
		Total:            subtotal.Add(shipping).Add(tax),
		Status:           constant.OrderStatusConfirmed,
		PaymentStatus:    constant.PaymentStatusCompleted,
		PaymentReference: reference,
		PaymentProvider:  constant.PaymentProviderPaystack,
		ShippingAddress:  meta.ShippingAddress,
		CreatedAt:        time.Now(),
	}

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		if goerrors.Is(err, orderrepo.ErrDuplicateReference) {
			// Lost the insert race; the winner's row is the order.
			winner, getErr := s.orderRepo.GetByReference(ctx, reference)
			if getErr != nil || winner == nil {
				logger.Error("[Verify] duplicate reference but lookup failed", zap.String("reference", reference))
				return nil, nil
			}
			return winner, nil
		}
		// Money was taken; the missing row is a reconciliation problem,
		// never a payment failure to the customer.
		logger.Error("[Verify] CRITICAL order insert failed after confirmed payment",
			zap.String("reference", reference),
			zap.String("error", err.Error()))
		return nil, nil
	}

	s.dispatchConfirmation(order)
	return order, nil
}

func (s *checkoutAppImpl) dispatchConfirmation(order *model.Order) {
	if s.publisher == nil {
		return
	}

	job := rabbitmq.OrderConfirmationJob{
		OrderNumber:   order.OrderNumber,
		CustomerEmail: order.CustomerEmail,
		CustomerName:  order.CustomerName,
		Items:         order.Items,
		Total:         order.Total.StringFixed(2),
	}
	if order.ShippingAddress != nil {
		job.ShippingAddress = formatAddress(order.ShippingAddress)
	}

	if result := s.publisher.PublishOrderConfirmation(job); !result.Sent {
		logger.Error("[Verify] confirmation dispatch failed",
			zap.String("order_number", order.OrderNumber),
			zap.String("reason", result.Reason))
	}
}

func (s *checkoutAppImpl) Checkout(ctx context.Context, sessionID string, form *model.CheckoutForm) (*model.CheckoutResponse, error) {
	if form.Honeypot != "" {
		logger.Info("[Checkout] honeypot tripped", zap.String("session", sessionID))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(form); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	cart, err := s.cartApp.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}

	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, ci := range cart.Items {
		items = append(items, model.OrderItem{
			ProductID: ci.ProductID,
			Name:      ci.Name,
			Quantity:  ci.Quantity,
			Price:     ci.Price,
			Size:      ci.Size,
			Image:     ci.Image,
		})
	}

	res, err := s.Initialize(ctx, &model.PaymentInitRequest{
		Email:       form.Email,
		Amount:      cart.TotalPrice,
		CallbackURL: s.config.Checkout.CallbackURL,
		Metadata: model.PaymentMetadata{
			CustomerName:  strings.TrimSpace(form.FirstName + " " + form.LastName),
			CustomerEmail: form.Email,
			Phone:         form.Phone,
			ShippingAddress: &model.ShippingAddress{
				Address:    form.Address,
				City:       form.City,
				PostalCode: form.PostalCode,
			},
			Items: items,
		},
	})
	if err != nil {
		return nil, err
	}

	return &model.CheckoutResponse{
		AuthorizationURL: res.Data.AuthorizationURL,
		AccessCode:       res.Data.AccessCode,
		Reference:        res.Data.Reference,
	}, nil
}

func (s *checkoutAppImpl) Complete(ctx context.Context, sessionID, reference string) (*model.VerifyResult, error) {
	result, err := s.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}

	// Failed payment keeps the cart so the customer can retry.
	if !result.Paid {
		return nil, errors.SetCustomError(constant.ErrPaymentNotSuccessful)
	}

	if err := s.cartApp.Clear(ctx, sessionID); err != nil {
		logger.Error("[Complete] clear cart", zap.String("session", sessionID), zap.String("error", err.Error()))
	}

	return result, nil
}

func (s *checkoutAppImpl) gatewayError(method string, err error) error {
	var apiErr *paystack.APIError
	if goerrors.As(err, &apiErr) {
		logger.Error("["+method+"] gateway rejected request",
			zap.Int("status", apiErr.StatusCode),
			zap.String("message", apiErr.Message))
		return errors.SetGatewayError(apiErr.StatusCode, apiErr.Message)
	}
	logger.Error("["+method+"] gateway unreachable", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrGateway)
}

func validateInitRequest(req *model.PaymentInitRequest) error {
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) || req.Amount.GreaterThan(decimal.NewFromInt(constant.MaxChargeAmount)) {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if len(req.Metadata.Items) > constant.MaxOrderItems {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return validateItems(req.Metadata.Items)
}

func validateMetadata(meta *model.PaymentMetadata) error {
	if err := validatorx.ValidateStruct(meta); err != nil {
		return err
	}
	if len(meta.Items) > constant.MaxOrderItems {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return validateItems(meta.Items)
}

func validateItems(items []model.OrderItem) error {
	maxPrice := decimal.NewFromInt(constant.MaxItemPrice)
	for _, item := range items {
		if item.Price.LessThanOrEqual(decimal.Zero) || item.Price.GreaterThan(maxPrice) {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	return nil
}

func sanitizeMetadata(meta *model.PaymentMetadata) {
	meta.CustomerName = sanitize.String(meta.CustomerName)
	meta.CustomerEmail = sanitize.String(meta.CustomerEmail)
	meta.Phone = sanitize.String(meta.Phone)
	if meta.ShippingAddress != nil {
		meta.ShippingAddress.Address = sanitize.String(meta.ShippingAddress.Address)
		meta.ShippingAddress.City = sanitize.String(meta.ShippingAddress.City)
		meta.ShippingAddress.PostalCode = sanitize.String(meta.ShippingAddress.PostalCode)
	}
	for i := range meta.Items {
		meta.Items[i].Name = sanitize.String(meta.Items[i].Name)
		meta.Items[i].Size = sanitize.String(meta.Items[i].Size)
		meta.Items[i].Image = sanitize.String(meta.Items[i].Image)
	}
}

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderNumber builds the human-facing label: base36 timestamp
// plus a short random suffix. It is display-only; payment_reference is
// the uniqueness key.
func generateOrderNumber(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	u := uuid.New()
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[int(u[i])%len(orderNumberAlphabet)]
	}

	return "OCN-" + ts + "-" + string(suffix)
}

func formatAddress(addr *model.ShippingAddress) string {
	parts := []string{addr.Address, addr.City}
	if addr.PostalCode != "" {
		parts = append(parts, addr.PostalCode)
	}
	return strings.Join(parts, ", ")
}
