package employee

import (
	"time"

	"go-enlacerb/internal/role"
)

// Employee is the HR profile attached one-to-one to a user account.
// Every profile field is nullable: a profile starts empty when its user is created.
type Employee struct {
	ID             uint          `gorm:"column:id;primaryKey"`
	UserID         uint          `gorm:"column:usuario_id;not null;uniqueIndex"`
	FirstNames     *string       `gorm:"column:nombres;type:varchar(150)"`
	LastNames      *string       `gorm:"column:apellidos;type:varchar(150)"`
	Phone          *string       `gorm:"column:telefono;type:varchar(30)"`
	Address        *string       `gorm:"column:direccion;type:text"`
	EmergencyName  *string       `gorm:"column:emergencia_nombre;type:varchar(150)"`
	EmergencyPhone *string       `gorm:"column:emergencia_telefono;type:varchar(30)"`
	Department     *string       `gorm:"column:departamento;type:varchar(100)"`
	Position       *string       `gorm:"column:cargo;type:varchar(100)"`
	HireDate       *time.Time    `gorm:"column:fecha_ingreso;type:date"`
	User           *EmployeeUser `gorm:"foreignKey:UserID;references:ID"`
}

func (Employee) TableName() string {
	return "empleados"
}

// EmployeeUser is the read-only slice of usuarios joined into employee responses.
type EmployeeUser struct {
	ID     uint       `gorm:"column:id;primaryKey"`
	Name   string     `gorm:"column:nombre"`
	Email  string     `gorm:"column:correo"`
	RoleID uint       `gorm:"column:rol_id"`
	Role   *role.Role `gorm:"foreignKey:RoleID;references:ID"`
}

func (EmployeeUser) TableName() string {
	return "usuarios"
}
