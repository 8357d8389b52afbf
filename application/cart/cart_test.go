package cart_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appcart "github.com/OuicestnousCA/oca/application/cart"
	"github.com/OuicestnousCA/oca/cmd/config"
	"github.com/OuicestnousCA/oca/constant"
	cartmocks "github.com/OuicestnousCA/oca/mocks/repository/cart"
	"github.com/OuicestnousCA/oca/model"
	cerr "github.com/OuicestnousCA/oca/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Checkout: config.CheckoutConfig{
			CartTTL: 7 * 24 * time.Hour,
		},
	}
}

func TestCartApp_Add(t *testing.T) {
	type fields struct {
		cartRepo *cartmocks.CartRepository
	}
	type args struct {
		ctx       context.Context
		sessionID string
		req       *model.AddCartItemRequest
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields)
		wantQty   int
		wantLines int
		wantTotal decimal.Decimal
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: first add creates a line with quantity 1",
			fields: fields{
				cartRepo: cartmocks.NewCartRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				req: &model.AddCartItemRequest{
					ProductID: 1,
					Name:      "Hoodie",
					Price:     149.99,
					Size:      "M",
				},
			},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return([]model.CartItem{}, nil).Once()
				f.cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(items []model.CartItem) bool {
					return len(items) == 1 && items[0].Quantity == 1
				}), 7*24*time.Hour).Return(nil).Once()
			},
			wantQty:   1,
			wantLines: 1,
			wantTotal: decimal.NewFromFloat(149.99),
			wantErr:   false,
		},
		{
			name: "success: same product and size bumps the existing line",
			fields: fields{
				cartRepo: cartmocks.NewCartRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				req: &model.AddCartItemRequest{
					ProductID: 1,
					Name:      "Hoodie",
					Price:     149.99,
					Size:      "M",
				},
			},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return([]model.CartItem{
					{ProductID: 1, Name: "Hoodie", Price: decimal.NewFromFloat(149.99), Size: "M", Quantity: 1},
				}, nil).Once()
				f.cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(items []model.CartItem) bool {
					return len(items) == 1 && items[0].Quantity == 2
				}), 7*24*time.Hour).Return(nil).Once()
			},
			wantQty:   2,
			wantLines: 1,
			wantTotal: decimal.NewFromFloat(299.98),
			wantErr:   false,
		},
		{
			name: "success: same product in a different size is a new line",
			fields: fields{
				cartRepo: cartmocks.NewCartRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				req: &model.AddCartItemRequest{
					ProductID: 1,
					Name:      "Hoodie",
					Price:     149.99,
					Size:      "L",
				},
			},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return([]model.CartItem{
					{ProductID: 1, Name: "Hoodie", Price: decimal.NewFromFloat(149.99), Size: "M", Quantity: 1},
				}, nil).Once()
				f.cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(items []model.CartItem) bool {
					return len(items) == 2
				}), 7*24*time.Hour).Return(nil).Once()
			},
			wantQty:   1,
			wantLines: 2,
			wantTotal: decimal.NewFromFloat(299.98),
			wantErr:   false,
		},
		{
			name: "success: request price is ignored for an existing line",
			fields: fields{
				cartRepo: cartmocks.NewCartRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				req: &model.AddCartItemRequest{
					ProductID: 1,
					Name:      "Hoodie",
					Price:     0.01,
					Size:      "M",
				},
			},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return([]model.CartItem{
					{ProductID: 1, Name: "Hoodie", Price: decimal.NewFromFloat(149.99), Size: "M", Quantity: 1},
				}, nil).Once()
				f.cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(items []model.CartItem) bool {
					return items[0].Price.Equal(decimal.NewFromFloat(149.99))
				}), 7*24*time.Hour).Return(nil).Once()
			},
			wantQty:   2,
			wantLines: 1,
			wantTotal: decimal.NewFromFloat(299.98),
			wantErr:   false,
		},
		{
			name: "error: repo get fails",
			fields: fields{
				cartRepo: cartmocks.NewCartRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				req: &model.AddCartItemRequest{
					ProductID: 1,
					Name:      "Hoodie",
					Price:     149.99,
				},
			},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(nil, errors.New("redis down")).Once()
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
			app := appcart.NewCartApp(testConfig(), tt.fields.cartRepo)

			got, err := app.Add(tt.args.ctx, tt.args.sessionID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Add() error = %v, wantErr %v", err, tt.wantErr)
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

			if len(got.Items) != tt.wantLines {
				t.Fatalf("Add() lines = %d, want %d", len(got.Items), tt.wantLines)
			}
			if !got.TotalPrice.Equal(tt.wantTotal) {
				t.Fatalf("Add() total = %s, want %s", got.TotalPrice, tt.wantTotal)
			}
		})
	}
}

func TestCartApp_UpdateQuantity(t *testing.T) {
	type fields struct {
		cartRepo *cartmocks.CartRepository
	}
	type args struct {
		ctx       context.Context
		sessionID string
		productID uint64
		quantity  int
	}
	twoLines := func() []model.CartItem {
		return []model.CartItem{
			{ProductID: 1, Name: "Hoodie", Price: decimal.NewFromInt(100), Quantity: 2},
			{ProductID: 2, Name: "Cap", Price: decimal.NewFromInt(50), Quantity: 1},
		}
	}
	tests := []struct {
		name      string
		fields    fields
		args      args
		mockCall  func(f fields)
		wantLines int
		wantTotal decimal.Decimal
		wantErr   bool
	}{
		{
			name: "success: quantity updated, total recomputed",
			fields: fields{
				cartRepo: cartmocks.NewCartRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				productID: 1,
				quantity:  3,
			},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(twoLines(), nil).Once()
				f.cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(items []model.CartItem) bool {
					return len(items) == 2 && items[0].Quantity == 3
				}), mock.Anything).Return(nil).Once()
			},
			wantLines: 2,
			wantTotal: decimal.NewFromInt(350),
			wantErr:   false,
		},
		{
			name: "success: quantity zero removes the line",
			fields: fields{
				cartRepo: cartmocks.NewCartRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				productID: 1,
				quantity:  0,
			},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(twoLines(), nil).Once()
				f.cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(items []model.CartItem) bool {
					return len(items) == 1 && items[0].ProductID == 2
				}), mock.Anything).Return(nil).Once()
			},
			wantLines: 1,
			wantTotal: decimal.NewFromInt(50),
			wantErr:   false,
		},
		{
			name: "success: negative quantity also removes the line",
			fields: fields{
				cartRepo: cartmocks.NewCartRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				productID: 2,
				quantity:  -1,
			},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(twoLines(), nil).Once()
				f.cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(items []model.CartItem) bool {
					return len(items) == 1 && items[0].ProductID == 1
				}), mock.Anything).Return(nil).Once()
			},
			wantLines: 1,
			wantTotal: decimal.NewFromInt(200),
			wantErr:   false,
		},
		{
			name: "success: unknown product id leaves the cart unchanged",
			fields: fields{
				cartRepo: cartmocks.NewCartRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				sessionID: "sess-1",
				productID: 99,
				quantity:  5,
			},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "sess-1").Return(twoLines(), nil).Once()
				f.cartRepo.On("Save", mock.Anything, "sess-1", mock.MatchedBy(func(items []model.CartItem) bool {
					return len(items) == 2
				}), mock.Anything).Return(nil).Once()
			},
			wantLines: 2,
			wantTotal: decimal.NewFromInt(250),
			wantErr:   false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcart.NewCartApp(testConfig(), tt.fields.cartRepo)

			got, err := app.UpdateQuantity(tt.args.ctx, tt.args.sessionID, tt.args.productID, tt.args.quantity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateQuantity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if len(got.Items) != tt.wantLines {
				t.Fatalf("UpdateQuantity() lines = %d, want %d", len(got.Items), tt.wantLines)
			}
			if !got.TotalPrice.Equal(tt.wantTotal) {
				t.Fatalf("UpdateQuantity() total = %s, want %s", got.TotalPrice, tt.wantTotal)
			}
		})
	}
}

func TestCartApp_Get(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	cartRepo.On("Get", mock.Anything, "sess-1").Return([]model.CartItem{
		{ProductID: 1, Name: "Hoodie", Price: decimal.NewFromInt(100), Quantity: 2},
		{ProductID: 2, Name: "Cap", Price: decimal.NewFromInt(50), Quantity: 1},
	}, nil).Once()

	app := appcart.NewCartApp(testConfig(), cartRepo)
	got, err := app.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.TotalPrice.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("Get() total = %s, want 250", got.TotalPrice)
	}
}

func TestCartApp_Get_EmptySessionReturnsEmptyCart(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	cartRepo.On("Get", mock.Anything, "sess-new").Return([]model.CartItem{}, nil).Once()

	app := appcart.NewCartApp(testConfig(), cartRepo)
	got, err := app.Get(context.Background(), "sess-new")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Fatalf("Get() items = %v, want empty slice", got.Items)
	}
	if !got.TotalPrice.Equal(decimal.Zero) {
		t.Fatalf("Get() total = %s, want 0", got.TotalPrice)
	}
}

func TestCartApp_Clear(t *testing.T) {
	cartRepo := cartmocks.NewCartRepository(t)
	cartRepo.On("Delete", mock.Anything, "sess-1").Return(nil).Once()

	app := appcart.NewCartApp(testConfig(), cartRepo)
	if err := app.Clear(context.Background(), "sess-1"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
}
