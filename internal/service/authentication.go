// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"analytiq/internal/model"
)

// ErrInvalidCredentials hides whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateUser verifies a plaintext password against the stored hash.
func AuthenticateUser(_ context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
