package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redisclient "github.com/OuicestnousCA/oca/cmd/redis"
	"github.com/OuicestnousCA/oca/model"
	"github.com/redis/go-redis/v9"
)

// CartRepository persists the per-session cart. Every mutation writes
// the whole snapshot in a single SET so a cart is never partially
// stored.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) ([]model.CartItem, error)
	Save(ctx context.Context, sessionID string, items []model.CartItem, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

type repo struct{}

func NewCartRepository() CartRepository {
	return &repo{}
}

var errNoClient = errors.New("redis client not initialized")

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *repo) Get(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, errNoClient
	}
	raw, err := client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []model.CartItem{}, nil
		}
		return nil, err
	}
	var items []model.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Save(ctx context.Context, sessionID string, items []model.CartItem, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return errNoClient
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return client.Set(ctx, cartKey(sessionID), raw, ttl).Err()
}

func (r *repo) Delete(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return errNoClient
	}
	return client.Del(ctx, cartKey(sessionID)).Err()
}
