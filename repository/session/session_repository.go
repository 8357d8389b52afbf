package session

import (
	"context"
	"time"

	redisclient "github.com/OuicestnousCA/oca/cmd/redis"
)

// SessionRepository stores authenticated sessions keyed by token jti.
type SessionRepository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type repo struct{}

func NewSessionRepository() SessionRepository {
	return &repo{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *repo) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

func (r *repo) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	return client.Get(ctx, sessionKey(sessionID)).Uint64()
}

func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}
