package employee

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id uint) (*Employee, error)
	FindByUserID(ctx context.Context, userID uint) (*Employee, error)
	List(ctx context.Context, skip, limit int) ([]Employee, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository whose statements run on tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	gtx := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	gtx.Statement.ConnPool = tx
	return &repository{db: gtx}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

// FindByID returns (nil, nil) when no row matches.
func (r *repository) FindByID(ctx context.Context, id uint) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("User.Role").
		First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindByUserID returns (nil, nil) when the user has no profile.
func (r *repository) FindByUserID(ctx context.Context, userID uint) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "usuario_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context, skip, limit int) ([]Employee, error) {
	employees := []Employee{}
	err := r.db.WithContext(ctx).
		Preload("User.Role").
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&employees).Error
	return employees, err
}

// Update writes only the given columns of row id.
func (r *repository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&Employee{}).Where("id = ?", id).Updates(fields).Error
}
