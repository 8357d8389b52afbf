package newsletter

import (
	"context"
	goerrors "errors"
	"strings"

	"github.com/OuicestnousCA/oca/constant"
	"github.com/OuicestnousCA/oca/model"
	newsletterrepo "github.com/OuicestnousCA/oca/repository/newsletter"
	"github.com/OuicestnousCA/oca/utils/errors"
	"github.com/OuicestnousCA/oca/utils/logger"
	"go.uber.org/zap"
)

type NewsletterApp interface {
	Subscribe(ctx context.Context, email string) (*model.SubscribeResponse, error)
}

type newsletterAppImpl struct {
	repo newsletterrepo.NewsletterRepository
}

func NewNewsletterApp(repo newsletterrepo.NewsletterRepository) NewsletterApp {
	return &newsletterAppImpl{repo: repo}
}

func (s *newsletterAppImpl) Subscribe(ctx context.Context, email string) (*model.SubscribeResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	err := s.repo.Subscribe(ctx, email)
	if err != nil {
		// Re-subscribing is not an error worth surfacing.
		if goerrors.Is(err, newsletterrepo.ErrAlreadySubscribed) {
			return &model.SubscribeResponse{
				Message:           "You're already subscribed!",
				AlreadySubscribed: true,
			}, nil
		}
		logger.Error("[Subscribe] insert subscriber", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SubscribeResponse{
		Message: "Subscribed successfully",
	}, nil
}
