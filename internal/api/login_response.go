package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}
