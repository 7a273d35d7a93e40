package auth

import "context"

var _ Checker = (*LoginChecker)(nil)

type Checker interface {
	LoggedUser(ctx context.Context, token string) (userID int, ok bool, err error)
}
