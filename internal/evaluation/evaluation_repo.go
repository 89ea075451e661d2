package evaluation

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=evaluation_repo.go -destination=mock/evaluation_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Evaluation) error
	FindByID(ctx context.Context, id uint) (*Evaluation, error)
	List(ctx context.Context, skip, limit int) ([]Evaluation, error)
	ListByEmployee(ctx context.Context, employeeID uint, skip, limit int) ([]Evaluation, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Evaluation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

// FindByID returns (nil, nil) when no row matches.
func (r *repository) FindByID(ctx context.Context, id uint) (*Evaluation, error) {
	var e Evaluation
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context, skip, limit int) ([]Evaluation, error) {
	rows := []Evaluation{}
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID uint, skip, limit int) ([]Evaluation, error) {
	rows := []Evaluation{}
	err := r.db.WithContext(ctx).
		Where("empleado_id = ?", employeeID).
		Order("fecha DESC").
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Update writes only the given columns of row id.
func (r *repository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&Evaluation{}).Where("id = ?", id).Updates(fields).Error
}
