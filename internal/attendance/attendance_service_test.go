package attendance

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	attendanceerrors "go-enlacerb/internal/attendance/errors"
	"go-enlacerb/internal/shared/pagination"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, a *Attendance) error
	findByIDFn              func(ctx context.Context, id uint) (*Attendance, error)
	findByEmployeeAndDateFn func(ctx context.Context, employeeID uint, date time.Time) (*Attendance, error)
	listFn                  func(ctx context.Context, skip, limit int) ([]Attendance, error)
	listByEmployeeFn        func(ctx context.Context, employeeID uint, skip, limit int) ([]Attendance, error)
	updateFn                func(ctx context.Context, id uint, fields map[string]any) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*Attendance, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID uint, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) List(ctx context.Context, skip, limit int) ([]Attendance, error) {
	return f.listFn(ctx, skip, limit)
}
func (f *fakeRepo) ListByEmployee(ctx context.Context, employeeID uint, skip, limit int) ([]Attendance, error) {
	return f.listByEmployeeFn(ctx, employeeID, skip, limit)
}
func (f *fakeRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	return f.updateFn(ctx, id, fields)
}

// memoryRepo emulates the store, keyed by (employee, date).
func memoryRepo() (*fakeRepo, *[]Attendance) {
	rows := []Attendance{}
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID uint, date time.Time) (*Attendance, error) {
		for _, r := range rows {
			if r.EmployeeID == employeeID && r.Date.Equal(date) {
				cp := r
				return &cp, nil
			}
		}
		return nil, nil
	}
	repo.createFn = func(ctx context.Context, a *Attendance) error {
		a.ID = uint(len(rows) + 1)
		rows = append(rows, *a)
		return nil
	}
	repo.updateFn = func(ctx context.Context, id uint, fields map[string]any) error {
		for i := range rows {
			if rows[i].ID != id {
				continue
			}
			for col, v := range fields {
				if col != "salida" {
					return errors.New("unexpected column " + col)
				}
				rows[i].Exit = v.(*string)
			}
		}
		return nil
	}
	return repo, &rows
}

func strPtr(s string) *string { return &s }

func TestService_Upsert_SecondWriteUpdatesExitOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	repo, rows := memoryRepo()
	svc := NewService(db, repo, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectCommit()
	first, created, err := svc.Upsert(ctx, UpsertAttendanceRequest{
		EmployeeID: 1,
		Date:       "2024-01-10",
		Entry:      strPtr("08:00"),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Nil(t, first.Exit)

	mock.ExpectBegin()
	mock.ExpectCommit()
	second, created, err := svc.Upsert(ctx, UpsertAttendanceRequest{
		EmployeeID: 1,
		Date:       "2024-01-10",
		Entry:      strPtr("ignored"),
		Exit:       strPtr("17:00"),
	})
	require.NoError(t, err)
	assert.False(t, created)

	require.Len(t, *rows, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "08:00", *second.Entry)
	assert.Equal(t, "17:00", *second.Exit)
	assert.Equal(t, "2024-01-10", second.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Upsert_DifferentDaysInsert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	ctx := context.Background()
	repo, rows := memoryRepo()
	svc := NewService(db, repo, zap.NewNop())

	for _, day := range []string{"2024-01-10", "2024-01-11"} {
		mock.ExpectBegin()
		mock.ExpectCommit()
		_, created, err := svc.Upsert(ctx, UpsertAttendanceRequest{EmployeeID: 1, Date: day, Entry: strPtr("08:00")})
		require.NoError(t, err)
		assert.True(t, created)
	}

	assert.Len(t, *rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Upsert_WriteFailureRollsBack(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, _ := memoryRepo()
	boom := errors.New("FOREIGN KEY constraint failed")
	repo.createFn = func(ctx context.Context, a *Attendance) error { return boom }
	svc := NewService(db, repo, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, _, err := svc.Upsert(context.Background(), UpsertAttendanceRequest{EmployeeID: 42, Date: "2024-01-10"})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Upsert_InvalidDate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo, _ := memoryRepo()
	svc := NewService(db, repo, zap.NewNop())

	_, _, err := svc.Upsert(context.Background(), UpsertAttendanceRequest{EmployeeID: 1, Date: "10/01/2024"})

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id uint) (*Attendance, error) { return nil, nil },
	}
	svc := NewService(nil, repo, zap.NewNop())

	_, err := svc.GetByID(context.Background(), 3)

	assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
}

func TestService_GetByEmployee(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		listByEmployeeFn: func(ctx context.Context, employeeID uint, skip, limit int) ([]Attendance, error) {
			assert.Equal(t, uint(1), employeeID)
			assert.Equal(t, 0, skip)
			assert.Equal(t, 10, limit)
			return []Attendance{{ID: 1, EmployeeID: 1, Date: day}}, nil
		},
	}
	svc := NewService(nil, repo, zap.NewNop())

	resp, err := svc.GetByEmployee(context.Background(), 1, pagination.Params{Skip: 0, Limit: 10})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "2024-01-10", resp[0].Date)
}
