package api

import "time"

// swagger:model api.UserResponse
// The password hash is never part of a response.
type UserResponse struct {
	ID            string    `json:"id" example:"665f1c0c8b5e4a2d9c3c9f01"`
	Username      string    `json:"username" example:"alice"`
	Role          string    `json:"role" example:"user"`
	AnalysisCount int       `json:"analysis_count" example:"3"`
	CreatedAt     time.Time `json:"created_at"`
}
