package hrrequest

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=hrrequest_repo.go -destination=mock/hrrequest_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, req *Request) error
	FindByID(ctx context.Context, id uint) (*Request, error)
	List(ctx context.Context, skip, limit int) ([]Request, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error
}

// FindByID returns (nil, nil) when no row matches.
func (r *repository) FindByID(ctx context.Context, id uint) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List returns the newest requests first.
func (r *repository) List(ctx context.Context, skip, limit int) ([]Request, error) {
	rows := []Request{}
	err := r.db.WithContext(ctx).
		Order("fecha DESC").
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Update writes only the given columns of row id.
func (r *repository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&Request{}).Where("id = ?", id).Updates(fields).Error
}
