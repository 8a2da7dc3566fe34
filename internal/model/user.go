// File: internal/model/user.go
package model

import "time"

// Roles a user account can carry. Registration always produces RoleUser;
// only an admin can promote an account afterwards.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Username      string    `bson:"username" json:"username"`
	PasswordHash  string    `bson:"password_hash" json:"-"`
	Role          string    `bson:"role" json:"role"`
	AnalysisCount int       `bson:"analysis_count" json:"analysis_count"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
