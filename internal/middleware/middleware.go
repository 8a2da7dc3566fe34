// File: internal/middleware/middleware.go
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"analytiq/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextUserKey is where RequireAuth stores the verified claims.
const ContextUserKey = "user"

func extractClaims(c echo.Context, tokens *service.Tokens) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// ClaimsFromContext returns the claims stored by RequireAuth, or nil.
func ClaimsFromContext(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextUserKey).(*service.Claims)
	return claims
}

// RequireAuth verifies the bearer token and stores the claims in the request
// context. It must run before any gate or handler that reads identity.
func RequireAuth(tokens *service.Tokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireRole composes RequireAuth with a role check, so every role-gated
// route shares the same 403 path.
func RequireRole(tokens *service.Tokens, role string) echo.MiddlewareFunc {
	auth := RequireAuth(tokens)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := ClaimsFromContext(c)
			if claims == nil || claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("%s privileges required", role))
			}
			return next(c)
		})
	}
}
