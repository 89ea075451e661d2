package document

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, d *Document) error
	FindByID(ctx context.Context, id uint) (*Document, error)
	List(ctx context.Context, skip, limit int) ([]Document, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error
}

// FindByID returns (nil, nil) when no row matches.
func (r *repository) FindByID(ctx context.Context, id uint) (*Document, error) {
	var d Document
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns the most recently uploaded documents first.
func (r *repository) List(ctx context.Context, skip, limit int) ([]Document, error) {
	docs := []Document{}
	err := r.db.WithContext(ctx).
		Order("fecha_subido DESC").
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&docs).Error
	return docs, err
}

// Update writes only the given columns of row id.
func (r *repository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&Document{}).Where("id = ?", id).Updates(fields).Error
}
