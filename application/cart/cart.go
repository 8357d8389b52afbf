package cart

import (
	"context"

	"github.com/OuicestnousCA/oca/cmd/config"
	"github.com/OuicestnousCA/oca/constant"
	"github.com/OuicestnousCA/oca/model"
	cartrepo "github.com/OuicestnousCA/oca/repository/cart"
	"github.com/OuicestnousCA/oca/utils/errors"
	"github.com/OuicestnousCA/oca/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartApp holds the per-session cart. It is an explicit dependency
// threaded through handlers, not ambient state; any endpoint holding a
// session id can read or mutate the cart.
type CartApp interface {
	Get(ctx context.Context, sessionID string) (*model.CartResponse, error)
	Add(ctx context.Context, sessionID string, req *model.AddCartItemRequest) (*model.CartResponse, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID uint64, quantity int) (*model.CartResponse, error)
	Remove(ctx context.Context, sessionID string, productID uint64) (*model.CartResponse, error)
	Clear(ctx context.Context, sessionID string) error
}

type cartAppImpl struct {
	config   *config.Config
	cartRepo cartrepo.CartRepository
}

func NewCartApp(config *config.Config, cartRepo cartrepo.CartRepository) CartApp {
	return &cartAppImpl{config: config, cartRepo: cartRepo}
}

func (s *cartAppImpl) Get(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	items, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[Get] cart repo get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return buildResponse(items), nil
}

func (s *cartAppImpl) Add(ctx context.Context, sessionID string, req *model.AddCartItemRequest) (*model.CartResponse, error) {
	items, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[Add] cart repo get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Same product (and size) bumps the stored line; whatever
	// price/name/image rides along on the request is ignored.
	found := false
	for i := range items {
		if items[i].ProductID == req.ProductID && items[i].Size == req.Size {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, model.CartItem{
			ProductID: req.ProductID,
			Name:      req.Name,
			Price:     decimal.NewFromFloat(req.Price),
			Image:     req.Image,
			Size:      req.Size,
			Quantity:  1,
		})
	}

	if err := s.cartRepo.Save(ctx, sessionID, items, s.config.Checkout.CartTTL); err != nil {
		logger.Error("[Add] cart repo save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return buildResponse(items), nil
}

func (s *cartAppImpl) UpdateQuantity(ctx context.Context, sessionID string, productID uint64, quantity int) (*model.CartResponse, error) {
	items, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[UpdateQuantity] cart repo get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated := make([]model.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == productID {
			// Zero or negative removes the line; quantity is never
			// stored at 0.
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
		}
		updated = append(updated, item)
	}

	if err := s.cartRepo.Save(ctx, sessionID, updated, s.config.Checkout.CartTTL); err != nil {
		logger.Error("[UpdateQuantity] cart repo save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return buildResponse(updated), nil
}

func (s *cartAppImpl) Remove(ctx context.Context, sessionID string, productID uint64) (*model.CartResponse, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, 0)
}

func (s *cartAppImpl) Clear(ctx context.Context, sessionID string) error {
	if err := s.cartRepo.Delete(ctx, sessionID); err != nil {
		logger.Error("[Clear] cart repo delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func buildResponse(items []model.CartItem) *model.CartResponse {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return &model.CartResponse{
		Items:      items,
		TotalPrice: total,
	}
}
