package role

import (
	"context"

	roleerrors "go-enlacerb/internal/role/errors"
	"go-enlacerb/internal/shared/contextutil"
	"go-enlacerb/internal/shared/pagination"

	"go.uber.org/zap"
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetAll(ctx context.Context, page pagination.Params) ([]RoleResponse, error)
	GetByID(ctx context.Context, id uint) (RoleResponse, error)
	Update(ctx context.Context, id uint, req UpdateRoleRequest) (RoleResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create role requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		s.logger.Error("create role pre-check failed", zap.String("request_id", rid), zap.Error(err))
		return RoleResponse{}, err
	}
	if existing != nil {
		s.logger.Warn("create role name taken", zap.String("request_id", rid), zap.String("name", req.Name))
		return RoleResponse{}, roleerrors.ErrRoleAlreadyExists
	}

	r := &Role{Name: req.Name}
	if err := s.repo.Create(ctx, r); err != nil {
		s.logger.Error("create role persist failed", zap.String("request_id", rid), zap.Error(err))
		return RoleResponse{}, err
	}

	s.logger.Info("create role success",
		zap.String("request_id", rid),
		zap.Uint("role_id", r.ID),
	)
	return mapToResponse(*r), nil
}

func (s *service) GetAll(ctx context.Context, page pagination.Params) ([]RoleResponse, error) {
	roles, err := s.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("list roles failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(roles), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (RoleResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get role by id failed", zap.Uint("role_id", id), zap.Error(err))
		return RoleResponse{}, err
	}
	if r == nil {
		return RoleResponse{}, roleerrors.ErrRoleNotFound
	}
	return mapToResponse(*r), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateRoleRequest) (RoleResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update role fetch failed", zap.String("request_id", rid), zap.Error(err))
		return RoleResponse{}, err
	}
	if r == nil {
		return RoleResponse{}, roleerrors.ErrRoleNotFound
	}
	if req.IsEmpty() {
		return mapToResponse(*r), nil
	}

	if req.Name != nil && *req.Name != r.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil {
			s.logger.Error("update role pre-check failed", zap.String("request_id", rid), zap.Error(err))
			return RoleResponse{}, err
		}
		if existing != nil && existing.ID != r.ID {
			return RoleResponse{}, roleerrors.ErrRoleAlreadyExists
		}
	}

	if err := s.repo.Update(ctx, id, changedColumns(req)); err != nil {
		s.logger.Error("update role persist failed", zap.String("request_id", rid), zap.Error(err))
		return RoleResponse{}, err
	}

	s.logger.Info("update role success", zap.String("request_id", rid), zap.Uint("role_id", id))
	return s.GetByID(ctx, id)
}

// changedColumns maps the present patch fields to their columns.
func changedColumns(req UpdateRoleRequest) map[string]any {
	fields := map[string]any{}
	if req.Name != nil {
		fields["nombre"] = *req.Name
	}
	return fields
}

func mapToResponse(r Role) RoleResponse {
	return RoleResponse{
		ID:   r.ID,
		Name: r.Name,
	}
}

func mapToListResponse(roles []Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i, r := range roles {
		res[i] = mapToResponse(r)
	}
	return res
}
