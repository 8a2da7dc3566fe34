package api

// swagger:model api.RegisterRequest
// A role field supplied by the client is ignored: registration always
// creates a regular user.
type RegisterRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
