package user

import (
	"go-enlacerb/internal/role"
)

type User struct {
	ID           uint       `gorm:"column:id;primaryKey"`
	Name         string     `gorm:"column:nombre;type:varchar(150);not null"`
	Email        string     `gorm:"column:correo;type:varchar(255);not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:contrasena;type:varchar(255);not null"`
	RoleID       uint       `gorm:"column:rol_id;not null;index"`
	Role         *role.Role `gorm:"foreignKey:RoleID;references:ID"`
}

func (User) TableName() string {
	return "usuarios"
}
