package evaluation

import (
	"context"

	evaluationerrors "go-enlacerb/internal/evaluation/errors"
	"go-enlacerb/internal/shared/contextutil"
	"go-enlacerb/internal/shared/pagination"

	"go.uber.org/zap"
)

//go:generate mockgen -source=evaluation_service.go -destination=mock/evaluation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEvaluationRequest) (EvaluationResponse, error)
	GetAll(ctx context.Context, page pagination.Params) ([]EvaluationResponse, error)
	GetByID(ctx context.Context, id uint) (EvaluationResponse, error)
	GetByEmployee(ctx context.Context, employeeID uint, page pagination.Params) ([]EvaluationResponse, error)
	Update(ctx context.Context, id uint, req UpdateEvaluationRequest) (EvaluationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("evaluation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evaluation.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEvaluationRequest) (EvaluationResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	e := &Evaluation{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		Comments:   req.Comments,
	}
	if req.Score != nil {
		e.Score = *req.Score
	}

	if err := s.repo.Create(ctx, e); err != nil {
		l.Error("create evaluation failed", zap.Uint("employee_id", req.EmployeeID), zap.Error(err))
		return EvaluationResponse{}, err
	}

	l.Info("evaluation created",
		zap.Uint("evaluation_id", e.ID),
		zap.Uint("employee_id", e.EmployeeID),
		zap.String("type", e.Type),
	)
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, page pagination.Params) ([]EvaluationResponse, error) {
	rows, err := s.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EvaluationResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EvaluationResponse{}, err
	}
	if e == nil {
		return EvaluationResponse{}, evaluationerrors.ErrEvaluationNotFound
	}
	return mapToResponse(*e), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID uint, page pagination.Params) ([]EvaluationResponse, error) {
	rows, err := s.repo.ListByEmployee(ctx, employeeID, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEvaluationRequest) (EvaluationResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EvaluationResponse{}, err
	}
	if e == nil {
		return EvaluationResponse{}, evaluationerrors.ErrEvaluationNotFound
	}
	if req.IsEmpty() {
		return mapToResponse(*e), nil
	}

	if err := s.repo.Update(ctx, id, changedColumns(req)); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("update evaluation failed", zap.Uint("evaluation_id", id), zap.Error(err))
		return EvaluationResponse{}, err
	}
	return s.GetByID(ctx, id)
}

// changedColumns maps the present patch fields to their columns.
func changedColumns(req UpdateEvaluationRequest) map[string]any {
	fields := map[string]any{}
	if req.Type != nil {
		fields["tipo"] = *req.Type
	}
	if req.Score != nil {
		fields["puntaje"] = *req.Score
	}
	if req.Comments != nil {
		fields["comentarios"] = *req.Comments
	}
	return fields
}

func mapToResponse(e Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Type:       e.Type,
		Score:      e.Score,
		Comments:   e.Comments,
		Date:       e.Date.UTC(),
	}
}

func mapToListResponse(rows []Evaluation) []EvaluationResponse {
	res := make([]EvaluationResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
