package newsletter_test

import (
	"context"
	"errors"
	"testing"

	appnewsletter "github.com/OuicestnousCA/oca/application/newsletter"
	"github.com/OuicestnousCA/oca/constant"
	newslettermocks "github.com/OuicestnousCA/oca/mocks/repository/newsletter"
	newsletterrepo "github.com/OuicestnousCA/oca/repository/newsletter"
	cerr "github.com/OuicestnousCA/oca/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestNewsletterApp_Subscribe(t *testing.T) {
	type fields struct {
		repo *newslettermocks.NewsletterRepository
	}
	type args struct {
		ctx   context.Context
		email string
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		wantAlready bool
		wantErr     bool
		errCode     constant.ErrorType
	}{
		{
			name: "success: new subscriber",
			fields: fields{
				repo: newslettermocks.NewNewsletterRepository(t),
			},
			args: args{
				ctx:   context.Background(),
				email: "thandi@example.com",
			},
			mockCall: func(f fields) {
				f.repo.On("Subscribe", mock.Anything, "thandi@example.com").Return(nil).Once()
			},
			wantAlready: false,
			wantErr:     false,
		},
		{
			name: "success: email normalized before storing",
			fields: fields{
				repo: newslettermocks.NewNewsletterRepository(t),
			},
			args: args{
				ctx:   context.Background(),
				email: "  Thandi@Example.COM  ",
			},
			mockCall: func(f fields) {
				f.repo.On("Subscribe", mock.Anything, "thandi@example.com").Return(nil).Once()
			},
			wantAlready: false,
			wantErr:     false,
		},
		{
			name: "success: duplicate subscription is not an error",
			fields: fields{
				repo: newslettermocks.NewNewsletterRepository(t),
			},
			args: args{
				ctx:   context.Background(),
				email: "thandi@example.com",
			},
			mockCall: func(f fields) {
				f.repo.On("Subscribe", mock.Anything, "thandi@example.com").
					Return(newsletterrepo.ErrAlreadySubscribed).Once()
			},
			wantAlready: true,
			wantErr:     false,
		},
		{
			name: "error: repo failure",
			fields: fields{
				repo: newslettermocks.NewNewsletterRepository(t),
			},
			args: args{
				ctx:   context.Background(),
				email: "thandi@example.com",
			},
			mockCall: func(f fields) {
				f.repo.On("Subscribe", mock.Anything, "thandi@example.com").
					Return(errors.New("db error")).Once()
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
			app := appnewsletter.NewNewsletterApp(tt.fields.repo)

			got, err := app.Subscribe(tt.args.ctx, tt.args.email)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Subscribe() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.AlreadySubscribed != tt.wantAlready {
				t.Fatalf("Subscribe() already_subscribed = %v, want %v", got.AlreadySubscribed, tt.wantAlready)
			}
			if got.Message == "" {
				t.Fatal("Subscribe() message should not be empty")
			}
		})
	}
}
