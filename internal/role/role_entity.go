package role

type Role struct {
	ID   uint   `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:nombre;type:varchar(100);not null;uniqueIndex"`
}

func (Role) TableName() string {
	return "roles"
}
