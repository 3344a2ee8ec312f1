// Package auth handles login against the seeded user collection, the
// remembered auth slots, and the signed tokens that carry identity per request.
package auth

import (
	"context"
	"fmt"

	"github.com/englishk12/backend/internal/domain/user"
	"github.com/englishk12/backend/internal/store"
)

// Repository is the slice of the store the gate needs.
type Repository interface {
	Users(ctx context.Context) ([]user.User, error)
	Auth(ctx context.Context, userID string) (*user.User, error)
	SetAuth(ctx context.Context, userID string, u *user.User) error
}

// Gate logs users in and out. There are no passwords: a username that exists
// is enough. Each user has their own slot, so one client's login or logout
// never shows up for another.
type Gate struct {
	repo Repository
}

func NewGate(repo Repository) *Gate {
	return &Gate{repo: repo}
}

// Login looks the username up exactly (no trimming, case-sensitive) and
// remembers the match in that user's auth slot.
func (g *Gate) Login(ctx context.Context, username string) (user.User, error) {
	users, err := g.repo.Users(ctx)
	if err != nil {
		return user.User{}, err
	}
	u, ok := user.FindByUsername(users, username)
	if !ok {
		return user.User{}, fmt.Errorf("user %q: %w", username, store.ErrNotFound)
	}
	if err := g.repo.SetAuth(ctx, u.ID, &u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Logout clears userID's slot, whether or not it was set.
func (g *Gate) Logout(ctx context.Context, userID string) error {
	return g.repo.SetAuth(ctx, userID, nil)
}

// Restore returns the user remembered for userID, or nil after logout. The
// stored value is trusted as-is and not checked against the user collection.
func (g *Gate) Restore(ctx context.Context, userID string) (*user.User, error) {
	return g.repo.Auth(ctx, userID)
}
