// File: internal/handler/users/users.go
package users

import (
	"errors"
	"net/http"

	"analytiq/internal/api"
	"analytiq/internal/model"
	"analytiq/internal/store"

	"github.com/labstack/echo/v4"
)

func toResponse(u model.User) api.UserResponse {
	return api.UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Role:          u.Role,
		AnalysisCount: u.AnalysisCount,
		CreatedAt:     u.CreatedAt,
	}
}

// ListUsersHandler returns every account without password hashes.
// @Summary     List all users
// @Description Returns every user account (admin only)
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := users.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		out := make([]api.UserResponse, 0, len(list))
		for _, u := range list {
			out = append(out, toResponse(u))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// UpdateUserRoleHandler overwrites the target user's role. This is the only
// way a role can change; registration never produces an admin.
// @Summary     Change a user's role
// @Description Sets the role of the given user to user or admin (admin only)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id      path string                    true "User ID"
// @Param       request body api.UpdateUserRoleRequest true "New role"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{id}/role [put]
func UpdateUserRoleHandler(users store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateUserRoleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		err := users.UpdateRole(c.Request().Context(), c.Param("id"), req.Role)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "user role updated successfully"})
	}
}
