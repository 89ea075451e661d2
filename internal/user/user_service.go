package user

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"go-enlacerb/internal/employee"
	"go-enlacerb/internal/events"
	"go-enlacerb/internal/messaging/kafka"
	"go-enlacerb/internal/shared/contextutil"
	"go-enlacerb/internal/shared/pagination"
	usererrors "go-enlacerb/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context, page pagination.Params) ([]UserResponse, error)
	GetByID(ctx context.Context, id uint) (UserResponse, error)
	Update(ctx context.Context, id uint, req UpdateUserRequest) (UserResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	publisher  kafka.Publisher
	bcryptCost int
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	bcryptCost int,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithPublisher(db, repo, employees, nil, bcryptCost, logger...)
}

func NewServiceWithPublisher(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	publisher kafka.Publisher,
	bcryptCost int,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	if publisher == nil {
		publisher = kafka.NewNoopPublisher()
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &service{
		db:         db,
		repo:       repo,
		employees:  employees,
		publisher:  publisher,
		bcryptCost: bcryptCost,
		logger:     l,
	}
}

// Create stores the account and its empty employee profile in one transaction.
func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	l.Info("creating user",
		zap.String("email", req.Email),
		zap.Uint("role_id", req.RoleID),
	)

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		l.Error("create user pre-check failed", zap.Error(err))
		return UserResponse{}, err
	}
	if existing != nil {
		l.Warn("create user email already registered", zap.String("email", req.Email))
		return UserResponse{}, usererrors.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create user begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	u := &User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		RoleID:       req.RoleID,
	}
	if err := s.repo.WithTx(tx).Create(ctx, u); err != nil {
		l.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	profile := &employee.Employee{UserID: u.ID}
	if err := s.employees.WithTx(tx).Create(ctx, profile); err != nil {
		l.Error("create employee profile failed", zap.Uint("user_id", u.ID), zap.Error(err))
		return UserResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("create user commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("user created successfully",
		zap.Uint("user_id", u.ID),
		zap.Uint("employee_id", profile.ID),
	)

	s.publishCreated(ctx, l, events.UserCreatedEvent{
		EventType:  events.EventUserCreated,
		RequestID:  rid,
		UserID:     u.ID,
		EmployeeID: profile.ID,
		RoleID:     u.RoleID,
		OccurredAt: time.Now().UTC(),
	})

	created, err := s.repo.FindByID(ctx, u.ID)
	if err != nil {
		l.Error("create user re-fetch failed", zap.Uint("user_id", u.ID), zap.Error(err))
		return UserResponse{}, err
	}
	if created == nil {
		return mapToResponse(*u), nil
	}
	return mapToResponse(*created), nil
}

// publishCreated is best-effort: the rows are already committed.
func (s *service) publishCreated(ctx context.Context, l *zap.Logger, event events.UserCreatedEvent) {
	err := s.publisher.Publish(ctx, kafka.Message{
		Topic:         events.UserLifecycleTopic,
		Key:           strconv.FormatUint(uint64(event.UserID), 10),
		EventType:     event.EventType,
		AggregateType: "usuario",
		Payload:       event,
	})
	if err != nil {
		l.Warn("publish user created failed", zap.Uint("user_id", event.UserID), zap.Error(err))
	}
}

func (s *service) GetAll(ctx context.Context, page pagination.Params) ([]UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	users, err := s.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		l.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	if u == nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		l.Error("failed to find user", zap.Uint("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}
	if u == nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}
	if req.IsEmpty() {
		return mapToResponse(*u), nil
	}

	if req.Email != nil && *req.Email != u.Email {
		existing, err := s.repo.FindByEmail(ctx, *req.Email)
		if err != nil {
			l.Error("update user pre-check failed", zap.Error(err))
			return UserResponse{}, err
		}
		if existing != nil && existing.ID != u.ID {
			return UserResponse{}, usererrors.ErrEmailAlreadyRegistered
		}
	}

	if err := s.repo.Update(ctx, id, changedColumns(req)); err != nil {
		l.Error("failed to update user", zap.Uint("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	if updated == nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}
	return mapToResponse(*updated), nil
}

// changedColumns maps the present patch fields to their columns.
func changedColumns(req UpdateUserRequest) map[string]any {
	fields := map[string]any{}
	if req.Name != nil {
		fields["nombre"] = *req.Name
	}
	if req.Email != nil {
		fields["correo"] = *req.Email
	}
	if req.RoleID != nil {
		fields["rol_id"] = *req.RoleID
	}
	return fields
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		RoleID: u.RoleID,
	}
	if u.Role != nil {
		resp.Role = &UserRoleResponse{
			ID:   u.Role.ID,
			Name: u.Role.Name,
		}
	}
	return resp
}
