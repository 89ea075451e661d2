package document

import (
	"context"

	documenterrors "go-enlacerb/internal/document/errors"
	"go-enlacerb/internal/shared/contextutil"
	"go-enlacerb/internal/shared/pagination"

	"go.uber.org/zap"
)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDocumentRequest) (DocumentResponse, error)
	GetAll(ctx context.Context, page pagination.Params) ([]DocumentResponse, error)
	GetByID(ctx context.Context, id uint) (DocumentResponse, error)
	Update(ctx context.Context, id uint, req UpdateDocumentRequest) (DocumentResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDocumentRequest) (DocumentResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	d := &Document{
		Name:      req.Name,
		Category:  req.Category,
		Path:      req.Path,
		CreatedBy: req.CreatedBy,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		l.Error("create document failed", zap.Uint("created_by", req.CreatedBy), zap.Error(err))
		return DocumentResponse{}, err
	}

	l.Info("document registered",
		zap.Uint("document_id", d.ID),
		zap.String("category", d.Category),
	)
	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context, page pagination.Params) ([]DocumentResponse, error) {
	docs, err := s.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("list documents failed", zap.Error(err))
		return nil, err
	}

	res := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		res[i] = mapToResponse(d)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (DocumentResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DocumentResponse{}, err
	}
	if d == nil {
		return DocumentResponse{}, documenterrors.ErrDocumentNotFound
	}
	return mapToResponse(*d), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateDocumentRequest) (DocumentResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DocumentResponse{}, err
	}
	if d == nil {
		return DocumentResponse{}, documenterrors.ErrDocumentNotFound
	}
	if req.IsEmpty() {
		return mapToResponse(*d), nil
	}

	if err := s.repo.Update(ctx, id, changedColumns(req)); err != nil {
		l.Error("update document failed", zap.Uint("document_id", id), zap.Error(err))
		return DocumentResponse{}, err
	}
	return s.GetByID(ctx, id)
}

// changedColumns maps the present patch fields to their columns.
func changedColumns(req UpdateDocumentRequest) map[string]any {
	fields := map[string]any{}
	if req.Name != nil {
		fields["nombre"] = *req.Name
	}
	if req.Category != nil {
		fields["categoria"] = *req.Category
	}
	if req.Path != nil {
		fields["ruta"] = *req.Path
	}
	return fields
}

func mapToResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID,
		Name:       d.Name,
		Category:   d.Category,
		Path:       d.Path,
		CreatedBy:  d.CreatedBy,
		UploadedAt: d.UploadedAt.UTC(),
	}
}
