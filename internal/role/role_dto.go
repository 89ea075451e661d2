package role

type CreateRoleRequest struct {
	Name string `json:"nombre" binding:"required,max=100"`
}

// UpdateRoleRequest is a merge-patch: nil fields are left untouched.
type UpdateRoleRequest struct {
	Name *string `json:"nombre" binding:"omitempty,min=1,max=100"`
}

func (r UpdateRoleRequest) IsEmpty() bool {
	return r.Name == nil
}

type RoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}
