package hrrequest

import (
	"time"
)

// Request is a leave or vacancy request raised by a user.
type Request struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	Type        string    `gorm:"column:tipo;type:varchar(50);not null;index"`
	Description string    `gorm:"column:descripcion;type:text;not null"`
	CreatedBy   uint      `gorm:"column:creado_por;not null;index"`
	CreatedAt   time.Time `gorm:"column:fecha;not null;autoCreateTime"`
	Requester   *UserRef  `gorm:"foreignKey:CreatedBy;references:ID"`
}

func (Request) TableName() string {
	return "solicitudes"
}

type UserRef struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:nombre"`
}

func (UserRef) TableName() string {
	return "usuarios"
}
