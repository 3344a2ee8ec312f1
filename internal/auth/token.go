package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/englishk12/backend/internal/domain/user"
)

const issuerName = "english-k12"

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the whole user so requests need no lookup.
type Claims struct {
	Role     user.Role `json:"role"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
	Class    *int      `json:"class,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) User() user.User {
	return user.User{
		ID:       c.Subject,
		Role:     c.Role,
		FullName: c.FullName,
		Username: c.Username,
		Class:    c.Class,
	}
}

// Issuer signs and verifies HS256 session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for u and its expiry time.
func (i *Issuer) Issue(u user.User) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	claims := &Claims{
		Role:     u.Role,
		Username: u.Username,
		FullName: u.FullName,
		Class:    u.Class,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    issuerName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies the signature and expiry and returns the user it carries.
func (i *Issuer) Parse(tokenStr string) (user.User, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	c, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || c.Subject == "" {
		return user.User{}, ErrInvalidToken
	}
	return c.User(), nil
}
