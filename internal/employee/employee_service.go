package employee

import (
	"context"
	"time"

	employeeerrors "go-enlacerb/internal/employee/errors"
	"go-enlacerb/internal/shared/contextutil"
	"go-enlacerb/internal/shared/pagination"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, page pagination.Params) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	GetByUserID(ctx context.Context, userID uint) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, page pagination.Params) ([]EmployeeResponse, error) {
	s.logger.Debug("list employees requested", zap.Int("skip", page.Skip), zap.Int("limit", page.Limit))
	rows, err := s.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if e == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(*e), nil
}

func (s *service) GetByUserID(ctx context.Context, userID uint) (EmployeeResponse, error) {
	e, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("get employee by user failed", zap.Uint("user_id", userID), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if e == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	// nested user and role come from the id lookup
	return s.GetByID(ctx, e.ID)
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if e == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	if req.IsEmpty() {
		return mapToResponse(*e), nil
	}

	fields, err := changedColumns(req)
	if err != nil {
		s.logger.Warn("update employee invalid fecha_ingreso", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)
	return s.GetByID(ctx, id)
}

// changedColumns maps the present patch fields to their columns.
func changedColumns(req UpdateEmployeeRequest) (map[string]any, error) {
	fields := map[string]any{}
	if req.HireDate != nil {
		d, err := time.Parse(dateLayout, *req.HireDate)
		if err != nil {
			return nil, employeeerrors.ErrInvalidHireDate
		}
		fields["fecha_ingreso"] = d
	}
	set := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	set("nombres", req.FirstNames)
	set("apellidos", req.LastNames)
	set("telefono", req.Phone)
	set("direccion", req.Address)
	set("emergencia_nombre", req.EmergencyName)
	set("emergencia_telefono", req.EmergencyPhone)
	set("departamento", req.Department)
	set("cargo", req.Position)
	return fields, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		FirstNames:     e.FirstNames,
		LastNames:      e.LastNames,
		Phone:          e.Phone,
		Address:        e.Address,
		EmergencyName:  e.EmergencyName,
		EmergencyPhone: e.EmergencyPhone,
		Department:     e.Department,
		Position:       e.Position,
	}
	if e.HireDate != nil {
		v := e.HireDate.Format(dateLayout)
		resp.HireDate = &v
	}
	if e.User != nil {
		resp.User = &EmployeeUserResponse{
			ID:     e.User.ID,
			Name:   e.User.Name,
			Email:  e.User.Email,
			RoleID: e.User.RoleID,
		}
		if e.User.Role != nil {
			resp.User.Role = &EmployeeRoleResponse{
				ID:   e.User.Role.ID,
				Name: e.User.Role.Name,
			}
		}
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res
}
