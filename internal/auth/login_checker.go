package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// LoggedUser resolves the session token into a user id.
// An unknown or expired token is not an error, ok is false then.
func (lc *LoginChecker) LoggedUser(ctx context.Context, token string) (int, bool, error) {
	val, err := lc.redisClient.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	session, err := decodeSession(val)
	if err != nil {
		return 0, false, err
	}

	if time.Since(session.CreatedAt) > lc.ttl {
		return 0, false, nil
	}

	return session.UserID, true, nil
}
