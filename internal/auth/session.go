package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "physiq-session||"
	tokensSetKey     = "physiq-sessions"
)

var ErrMalformedSession = errors.New("malformed session value")

type Session struct {
	UserID    int
	CreatedAt time.Time
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// session values are stored as "<user id>|<created at unix>"
func (s Session) encode() string {
	return fmt.Sprintf("%d|%d", s.UserID, s.CreatedAt.Unix())
}

func decodeSession(val string) (Session, error) {
	userIDStr, createdAtStr, found := strings.Cut(val, "|")
	if !found {
		return Session{}, ErrMalformedSession
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return Session{}, fmt.Errorf("%w: user id: %s", ErrMalformedSession, err)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("%w: created at: %s", ErrMalformedSession, err)
	}
	return Session{
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

type userIDCtxKey struct{}

func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDCtxKey{}, userID)
}

// UserIDFromContext returns the id of the logged user, set by the auth middleware.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDCtxKey{}).(int)
	return userID, ok
}
