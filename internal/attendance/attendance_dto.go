package attendance

const dateLayout = "2006-01-02"

// UpsertAttendanceRequest records an entry or exit. When a row already exists for
// (empleado_id, fecha) only salida is overwritten and entrada is ignored.
type UpsertAttendanceRequest struct {
	EmployeeID uint    `json:"empleado_id" binding:"required,gte=1"`
	Date       string  `json:"fecha" binding:"required,datetime=2006-01-02"`
	Entry      *string `json:"entrada" binding:"omitempty,max=20"`
	Exit       *string `json:"salida" binding:"omitempty,max=20"`
}

type AttendanceResponse struct {
	ID         uint    `json:"id"`
	EmployeeID uint    `json:"empleado_id"`
	Date       string  `json:"fecha"`
	Entry      *string `json:"entrada"`
	Exit       *string `json:"salida"`
}
