package order

import (
	"context"

	"github.com/OuicestnousCA/oca/constant"
	"github.com/OuicestnousCA/oca/model"
	orderrepo "github.com/OuicestnousCA/oca/repository/order"
	"github.com/OuicestnousCA/oca/utils/errors"
	"github.com/OuicestnousCA/oca/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	// Track is the customer-facing lookup; both order number and email
	// must match.
	Track(ctx context.Context, orderNumber, email string) (*model.Order, error)

	// List and UpdateStatus back the admin order table. Status updates
	// are last-write-wins on a single row.
	List(ctx context.Context, filter *model.OrderFilter) (*model.OrderListResponse, error)
	UpdateStatus(ctx context.Context, orderID string, status constant.OrderStatus) error
}

type orderAppImpl struct {
	orderRepo orderrepo.OrderRepository
}

func NewOrderApp(orderRepo orderrepo.OrderRepository) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo}
}

func (s *orderAppImpl) Track(ctx context.Context, orderNumber, email string) (*model.Order, error) {
	if orderNumber == "" || email == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	order, err := s.orderRepo.GetByNumberAndEmail(ctx, orderNumber, email)
	if err != nil {
		logger.Error("[Track] get order", zap.String("order_number", orderNumber), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return order, nil
}

func (s *orderAppImpl) List(ctx context.Context, filter *model.OrderFilter) (*model.OrderListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}
	if filter.Status != "" && !constant.ValidOrderStatuses[filter.Status] {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[List] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderListResponse{
		Orders:     orders,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *orderAppImpl) UpdateStatus(ctx context.Context, orderID string, status constant.OrderStatus) error {
	if !constant.ValidOrderStatuses[status] {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	affected, err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		logger.Error("[UpdateStatus] update order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
