package api

// swagger:model api.UpdateUserRoleRequest
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin" example:"admin"`
}
