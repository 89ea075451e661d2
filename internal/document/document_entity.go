package document

import (
	"time"
)

type Document struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	Name       string    `gorm:"column:nombre;type:varchar(255);not null"`
	Category   string    `gorm:"column:categoria;type:varchar(100);not null;index"`
	Path       string    `gorm:"column:ruta;type:varchar(500);not null"`
	CreatedBy  uint      `gorm:"column:creado_por;not null;index"`
	UploadedAt time.Time `gorm:"column:fecha_subido;not null;autoCreateTime"`
	Uploader   *UserRef  `gorm:"foreignKey:CreatedBy;references:ID"`
}

func (Document) TableName() string {
	return "documentos"
}

type UserRef struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:nombre"`
}

func (UserRef) TableName() string {
	return "usuarios"
}
