package evaluation

import (
	"time"
)

const (
	TypeSelf    = "auto"
	TypePeer    = "pares"
	TypeManager = "gerente"
)

type Evaluation struct {
	ID         uint         `gorm:"column:id;primaryKey"`
	EmployeeID uint         `gorm:"column:empleado_id;not null;index"`
	Type       string       `gorm:"column:tipo;type:varchar(20);not null"`
	Score      float64      `gorm:"column:puntaje;not null"`
	Comments   *string      `gorm:"column:comentarios;type:text"`
	Date       time.Time    `gorm:"column:fecha;not null;autoCreateTime"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Evaluation) TableName() string {
	return "evaluaciones"
}

type EmployeeRef struct {
	ID uint `gorm:"column:id;primaryKey"`
}

func (EmployeeRef) TableName() string {
	return "empleados"
}
