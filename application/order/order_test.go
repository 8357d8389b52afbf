package order_test

import (
	"context"
	"errors"
	"testing"

	apporder "github.com/OuicestnousCA/oca/application/order"
	"github.com/OuicestnousCA/oca/constant"
	ordermocks "github.com/OuicestnousCA/oca/mocks/repository/order"
	"github.com/OuicestnousCA/oca/model"
	cerr "github.com/OuicestnousCA/oca/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestOrderApp_Track(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	type args struct {
		ctx         context.Context
		orderNumber string
		email       string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.Order
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: number and email both match",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				orderNumber: "OCN-TEST-ABC123",
				email:       "thandi@example.com",
			},
			mockCall: func(f fields) {
				f.orderRepo.On("GetByNumberAndEmail", mock.Anything, "OCN-TEST-ABC123", "thandi@example.com").
					Return(&model.Order{
						ID:          "order-1",
						OrderNumber: "OCN-TEST-ABC123",
						Status:      constant.OrderStatusConfirmed,
					}, nil).Once()
			},
			want: &model.Order{
				ID:          "order-1",
				OrderNumber: "OCN-TEST-ABC123",
			},
			wantErr: false,
		},
		{
			name: "error: wrong email for an existing number",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				orderNumber: "OCN-TEST-ABC123",
				email:       "someone-else@example.com",
			},
			mockCall: func(f fields) {
				f.orderRepo.On("GetByNumberAndEmail", mock.Anything, "OCN-TEST-ABC123", "someone-else@example.com").
					Return(nil, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: blank order number",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				orderNumber: "",
				email:       "thandi@example.com",
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: repo failure",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:         context.Background(),
				orderNumber: "OCN-TEST-ABC123",
				email:       "thandi@example.com",
			},
			mockCall: func(f fields) {
				f.orderRepo.On("GetByNumberAndEmail", mock.Anything, "OCN-TEST-ABC123", "thandi@example.com").
					Return(nil, errors.New("db error")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.orderRepo)

			got, err := app.Track(tt.args.ctx, tt.args.orderNumber, tt.args.email)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Track() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID != tt.want.ID {
				t.Fatalf("Track() order id = %s, want %s", got.ID, tt.want.ID)
			}
		})
	}
}

func TestOrderApp_List(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	type args struct {
		ctx    context.Context
		filter *model.OrderFilter
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields)
		wantTotal int64
		wantPage  int
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: defaults applied when paging unset",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				filter: &model.OrderFilter{},
			},
			mockCall: func(f fields) {
				f.orderRepo.On("List", mock.Anything, mock.MatchedBy(func(filter *model.OrderFilter) bool {
					return filter.Page == 1 && filter.PerPage == 20
				})).Return([]model.Order{{ID: "order-1"}}, int64(1), nil).Once()
			},
			wantTotal: 1,
			wantPage:  1,
			wantErr:   false,
		},
		{
			name: "success: status filter passed through",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx: context.Background(),
				filter: &model.OrderFilter{
					Status:  constant.OrderStatusShipped,
					Page:    2,
					PerPage: 10,
				},
			},
			mockCall: func(f fields) {
				f.orderRepo.On("List", mock.Anything, mock.MatchedBy(func(filter *model.OrderFilter) bool {
					return filter.Status == constant.OrderStatusShipped && filter.Page == 2
				})).Return([]model.Order{}, int64(0), nil).Once()
			},
			wantTotal: 0,
			wantPage:  2,
			wantErr:   false,
		},
		{
			name: "error: unknown status filter",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx: context.Background(),
				filter: &model.OrderFilter{
					Status: constant.OrderStatus("teleported"),
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: repo failure",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				filter: &model.OrderFilter{},
			},
			mockCall: func(f fields) {
				f.orderRepo.On("List", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.orderRepo)

			got, err := app.List(tt.args.ctx, tt.args.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("List() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.TotalCount != tt.wantTotal {
				t.Fatalf("List() total = %d, want %d", got.TotalCount, tt.wantTotal)
			}
			if got.Page != tt.wantPage {
				t.Fatalf("List() page = %d, want %d", got.Page, tt.wantPage)
			}
		})
	}
}

func TestOrderApp_UpdateStatus(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	type args struct {
		ctx     context.Context
		orderID string
		status  constant.OrderStatus
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: status updated",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: "order-1",
				status:  constant.OrderStatusShipped,
			},
			mockCall: func(f fields) {
				f.orderRepo.On("UpdateStatus", mock.Anything, "order-1", constant.OrderStatusShipped).
					Return(int64(1), nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: status outside the enum",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: "order-1",
				status:  constant.OrderStatus("lost"),
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown order id",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: "missing",
				status:  constant.OrderStatusDelivered,
			},
			mockCall: func(f fields) {
				f.orderRepo.On("UpdateStatus", mock.Anything, "missing", constant.OrderStatusDelivered).
					Return(int64(0), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repo failure",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: "order-1",
				status:  constant.OrderStatusCancelled,
			},
			mockCall: func(f fields) {
				f.orderRepo.On("UpdateStatus", mock.Anything, "order-1", constant.OrderStatusCancelled).
					Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.orderRepo)

			err := app.UpdateStatus(tt.args.ctx, tt.args.orderID, tt.args.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateStatus() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
