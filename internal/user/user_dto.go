package user

type CreateUserRequest struct {
	Name     string `json:"nombre" binding:"required,max=150"`
	Email    string `json:"correo" binding:"required,email,max=255"`
	Password string `json:"contrasena" binding:"required,min=8,max=72"`
	RoleID   uint   `json:"rol_id" binding:"required,gte=1"`
}

// UpdateUserRequest is a merge-patch: nil fields are left untouched.
type UpdateUserRequest struct {
	Name   *string `json:"nombre" binding:"omitempty,min=1,max=150"`
	Email  *string `json:"correo" binding:"omitempty,email,max=255"`
	RoleID *uint   `json:"rol_id" binding:"omitempty,gte=1"`
}

func (r UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.RoleID == nil
}

type UserRoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID     uint              `json:"id"`
	Name   string            `json:"nombre"`
	Email  string            `json:"correo"`
	RoleID uint              `json:"rol_id"`
	Role   *UserRoleResponse `json:"rol,omitempty"`
}
