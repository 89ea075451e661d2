package attendance

import (
	"time"
)

// Attendance is one employee's entry/exit record for a calendar day.
// (empleado_id, fecha) is unique.
type Attendance struct {
	ID         uint         `gorm:"column:id;primaryKey"`
	EmployeeID uint         `gorm:"column:empleado_id;not null;uniqueIndex:ux_asistencias_empleado_fecha,priority:1"`
	Date       time.Time    `gorm:"column:fecha;type:date;not null;uniqueIndex:ux_asistencias_empleado_fecha,priority:2"`
	Entry      *string      `gorm:"column:entrada;type:varchar(20)"`
	Exit       *string      `gorm:"column:salida;type:varchar(20)"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "asistencias"
}

type EmployeeRef struct {
	ID     uint `gorm:"column:id;primaryKey"`
	UserID uint `gorm:"column:usuario_id"`
}

func (EmployeeRef) TableName() string {
	return "empleados"
}
