// File: internal/handler/auth/auth.go
package auth

import (
	"errors"
	"net/http"

	"analytiq/internal/api"
	"analytiq/internal/model"
	"analytiq/internal/service"
	"analytiq/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
)

// RegisterHandler creates a new account. The stored role is always "user";
// nothing in the request can produce an admin.
// @Summary     Register a new user
// @Description Creates a user account with the user role
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "Credentials"
// @Success     201 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if _, err := users.GetByUsername(ctx, req.Username); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "user already exists"})
		} else if !errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		_, err = users.Create(ctx, &model.User{
			Username:     req.Username,
			PasswordHash: hash,
			Role:         model.RoleUser,
		})
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "user already exists"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "user registered successfully"})
	}
}

// LoginHandler authenticates a user and returns an access token carrying the
// stored role, whatever it is.
// @Summary     Log in
// @Description Verifies credentials and returns a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "Credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(users store.UserStore, tokens *service.Tokens) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := users.GetByUsername(ctx, req.Username)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		return c.JSON(http.StatusOK, api.LoginResponse{Token: token})
	}
}

// AdminLoginHandler is the admin console login. The role is checked before
// the password, so the two failure modes keep their distinct messages.
// @Summary     Admin log in
// @Description Verifies admin credentials and returns a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "Credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/admin/login [post]
func AdminLoginHandler(users store.UserStore, tokens *service.Tokens) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := users.GetByUsername(ctx, req.Username)
		if errors.Is(err, store.ErrNotFound) || (err == nil && !user.IsAdmin()) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied: not an admin"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		return c.JSON(http.StatusOK, api.LoginResponse{Token: token})
	}
}
