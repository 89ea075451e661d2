package employee

const dateLayout = "2006-01-02"

// UpdateEmployeeRequest is a merge-patch: nil fields are left untouched.
type UpdateEmployeeRequest struct {
	FirstNames     *string `json:"nombres" binding:"omitempty,max=150"`
	LastNames      *string `json:"apellidos" binding:"omitempty,max=150"`
	Phone          *string `json:"telefono" binding:"omitempty,max=30"`
	Address        *string `json:"direccion"`
	EmergencyName  *string `json:"emergencia_nombre" binding:"omitempty,max=150"`
	EmergencyPhone *string `json:"emergencia_telefono" binding:"omitempty,max=30"`
	Department     *string `json:"departamento" binding:"omitempty,max=100"`
	Position       *string `json:"cargo" binding:"omitempty,max=100"`
	HireDate       *string `json:"fecha_ingreso" binding:"omitempty,datetime=2006-01-02"`
}

func (r UpdateEmployeeRequest) IsEmpty() bool {
	return r.FirstNames == nil &&
		r.LastNames == nil &&
		r.Phone == nil &&
		r.Address == nil &&
		r.EmergencyName == nil &&
		r.EmergencyPhone == nil &&
		r.Department == nil &&
		r.Position == nil &&
		r.HireDate == nil
}

type EmployeeRoleResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}

type EmployeeUserResponse struct {
	ID     uint                  `json:"id"`
	Name   string                `json:"nombre"`
	Email  string                `json:"correo"`
	RoleID uint                  `json:"rol_id"`
	Role   *EmployeeRoleResponse `json:"rol,omitempty"`
}

type EmployeeResponse struct {
	ID             uint                  `json:"id"`
	UserID         uint                  `json:"usuario_id"`
	FirstNames     *string               `json:"nombres"`
	LastNames      *string               `json:"apellidos"`
	Phone          *string               `json:"telefono"`
	Address        *string               `json:"direccion"`
	EmergencyName  *string               `json:"emergencia_nombre"`
	EmergencyPhone *string               `json:"emergencia_telefono"`
	Department     *string               `json:"departamento"`
	Position       *string               `json:"cargo"`
	HireDate       *string               `json:"fecha_ingreso"`
	User           *EmployeeUserResponse `json:"usuario,omitempty"`
}
