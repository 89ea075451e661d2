package hrrequest

import (
	"context"
	"strconv"
	"time"

	"go-enlacerb/internal/events"
	hrrequesterrors "go-enlacerb/internal/hrrequest/errors"
	"go-enlacerb/internal/messaging/kafka"
	"go-enlacerb/internal/shared/contextutil"
	"go-enlacerb/internal/shared/pagination"

	"go.uber.org/zap"
)

//go:generate mockgen -source=hrrequest_service.go -destination=mock/hrrequest_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRequest) (RequestResponse, error)
	GetAll(ctx context.Context, page pagination.Params) ([]RequestResponse, error)
	GetByID(ctx context.Context, id uint) (RequestResponse, error)
	Update(ctx context.Context, id uint, req UpdateRequest) (RequestResponse, error)
}

type service struct {
	repo      Repository
	publisher kafka.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(repo, nil, logger...)
}

func NewServiceWithPublisher(repo Repository, publisher kafka.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("hrrequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hrrequest.service")
	}
	if publisher == nil {
		publisher = kafka.NewNoopPublisher()
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (RequestResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	row := &Request{
		Type:        req.Type,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		l.Error("create request failed", zap.Uint("created_by", req.CreatedBy), zap.Error(err))
		return RequestResponse{}, err
	}

	l.Info("request submitted",
		zap.Uint("solicitud_id", row.ID),
		zap.String("type", row.Type),
	)

	err := s.publisher.Publish(ctx, kafka.Message{
		Topic:         events.RequestLifecycleTopic,
		Key:           strconv.FormatUint(uint64(row.ID), 10),
		EventType:     events.EventRequestSubmitted,
		AggregateType: "solicitud",
		Payload: events.RequestSubmittedEvent{
			EventType:    events.EventRequestSubmitted,
			RequestID:    contextutil.GetRequestID(ctx),
			SubmissionID: row.ID,
			Type:         row.Type,
			CreatedBy:    row.CreatedBy,
			OccurredAt:   time.Now().UTC(),
		},
	})
	if err != nil {
		l.Warn("publish request submitted failed", zap.Uint("solicitud_id", row.ID), zap.Error(err))
	}

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, page pagination.Params) ([]RequestResponse, error) {
	rows, err := s.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		s.logger.Error("list requests failed", zap.Error(err))
		return nil, err
	}

	res := make([]RequestResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (RequestResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RequestResponse{}, err
	}
	if row == nil {
		return RequestResponse{}, hrrequesterrors.ErrRequestNotFound
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateRequest) (RequestResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RequestResponse{}, err
	}
	if row == nil {
		return RequestResponse{}, hrrequesterrors.ErrRequestNotFound
	}
	if req.IsEmpty() {
		return mapToResponse(*row), nil
	}

	fields := map[string]any{}
	if req.Type != nil {
		fields["tipo"] = *req.Type
	}
	if req.Description != nil {
		fields["descripcion"] = *req.Description
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("update request failed", zap.Uint("solicitud_id", id), zap.Error(err))
		return RequestResponse{}, err
	}
	return s.GetByID(ctx, id)
}

func mapToResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		Type:        r.Type,
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}
