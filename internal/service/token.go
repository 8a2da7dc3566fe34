// File: internal/service/token.go
package service

import (
	"fmt"
	"time"

	"analytiq/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is the fixed lifetime of an access token.
const AccessTokenTTL = 5 * time.Hour

// Claims is the JWT payload: identity plus role.
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims carry the admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == model.RoleAdmin
}

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// Tokens issues and verifies signed access tokens. The signing secret is
// injected once at startup, never read from the environment here.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens builds a token service with the given HS256 secret.
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: AccessTokenTTL}
}

// Issue produces a signed token embedding the user's id and role.
func (t *Tokens) Issue(user model.User) (string, error) {
	if len(t.secret) == 0 {
		return "", fmt.Errorf("token secret not configured")
	}
	now := timeNow()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify parses and validates a token string. Expired tokens surface
// jwt.ErrTokenExpired through the returned error chain.
func (t *Tokens) Verify(tokenString string) (*Claims, error) {
	if len(t.secret) == 0 {
		return nil, fmt.Errorf("token secret not configured")
	}
	tok, err := parseWithClaims(tokenString, &Claims{}, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
