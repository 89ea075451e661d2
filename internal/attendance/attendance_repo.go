package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id uint) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID uint, date time.Time) (*Attendance, error)
	List(ctx context.Context, skip, limit int) ([]Attendance, error)
	ListByEmployee(ctx context.Context, employeeID uint, skip, limit int) ([]Attendance, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	gtx := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	gtx.Statement.ConnPool = tx
	return &repository{db: gtx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

// FindByID returns (nil, nil) when no row matches.
func (r *repository) FindByID(ctx context.Context, id uint) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByEmployeeAndDate expects date already truncated to UTC midnight.
func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID uint, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("empleado_id = ?", employeeID).
		Where("fecha = ?", date).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) List(ctx context.Context, skip, limit int) ([]Attendance, error) {
	rows := []Attendance{}
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID uint, skip, limit int) ([]Attendance, error) {
	rows := []Attendance{}
	err := r.db.WithContext(ctx).
		Where("empleado_id = ?", employeeID).
		Order("fecha DESC").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Update writes only the given columns of row id.
func (r *repository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&Attendance{}).Where("id = ?", id).Updates(fields).Error
}
