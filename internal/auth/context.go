package auth

import (
	"context"

	"github.com/englishk12/backend/internal/domain/user"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

// WithUser attaches the authenticated user to ctx.
func WithUser(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

// UserFrom returns the user attached by WithUser.
func UserFrom(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(user.User)
	return u, ok
}
