package hrrequest_test

import (
	"context"
	"testing"
	"time"

	"go-enlacerb/internal/hrrequest"
	"go-enlacerb/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := storetest.New(t)
	fx := storetest.Seed(t, db, "ana@x.com")
	repo := hrrequest.NewRepository(db)

	older := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &hrrequest.Request{Type: "permiso", Description: "viejo", CreatedBy: fx.UserID, CreatedAt: older}))
	require.NoError(t, repo.Create(ctx, &hrrequest.Request{Type: "vacante", Description: "nuevo", CreatedBy: fx.UserID, CreatedAt: older.Add(time.Hour)}))

	rows, err := repo.List(ctx, 0, 10)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "nuevo", rows[0].Description)
	assert.Equal(t, "viejo", rows[1].Description)
}

func TestRequestService_RoundTripAgainstStore(t *testing.T) {
	ctx := context.Background()
	db := storetest.New(t)
	fx := storetest.Seed(t, db, "ana@x.com")
	svc := hrrequest.NewService(hrrequest.NewRepository(db), zap.NewNop())

	created, err := svc.Create(ctx, hrrequest.CreateRequest{Type: "permiso", Description: "cita", CreatedBy: fx.UserID})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	assert.Zero(t, created.CreatedAt.Nanosecond()%int(time.Microsecond))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cita", got.Description)
	assert.Equal(t, fx.UserID, got.CreatedBy)

	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	got.CreatedAt = created.CreatedAt
	assert.Equal(t, created, got)
}
