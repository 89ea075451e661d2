package attendance

import (
	"context"
	"database/sql"
	"time"

	attendanceerrors "go-enlacerb/internal/attendance/errors"
	"go-enlacerb/internal/shared/contextutil"
	"go-enlacerb/internal/shared/pagination"

	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	// Upsert reports created=true when a new row was inserted.
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (resp AttendanceResponse, created bool, err error)
	GetAll(ctx context.Context, page pagination.Params) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id uint) (AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID uint, page pagination.Params) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, bool, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	day, err := parseDate(req.Date)
	if err != nil {
		return AttendanceResponse{}, false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil {
		l.Error("attendance lookup failed", zap.Uint("employee_id", req.EmployeeID), zap.Error(err))
		return AttendanceResponse{}, false, err
	}

	created := row == nil
	if created {
		row = &Attendance{
			EmployeeID: req.EmployeeID,
			Date:       day,
			Entry:      req.Entry,
			Exit:       req.Exit,
		}
		err = qtx.Create(ctx, row)
	} else {
		// only the exit time moves once the day exists, even to null
		row.Exit = req.Exit
		err = qtx.Update(ctx, row.ID, map[string]any{"salida": req.Exit})
	}
	if err != nil {
		l.Error("attendance write failed",
			zap.Uint("employee_id", req.EmployeeID),
			zap.String("fecha", req.Date),
			zap.Bool("insert", created),
			zap.Error(err),
		)
		return AttendanceResponse{}, false, err
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, false, err
	}

	l.Info("attendance recorded",
		zap.Uint("attendance_id", row.ID),
		zap.Uint("employee_id", row.EmployeeID),
		zap.Bool("created", created),
	)
	return mapToResponse(*row), created, nil
}

func (s *service) GetAll(ctx context.Context, page pagination.Params) ([]AttendanceResponse, error) {
	rows, err := s.repo.List(ctx, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (AttendanceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if row == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}
	return mapToResponse(*row), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID uint, page pagination.Params) ([]AttendanceResponse, error) {
	rows, err := s.repo.ListByEmployee(ctx, employeeID, page.Skip, page.Limit)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func parseDate(v string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, v, time.UTC)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDate
	}
	return d, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.UTC().Format(dateLayout),
		Entry:      a.Entry,
		Exit:       a.Exit,
	}
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
