package evaluation_test

import (
	"context"
	"testing"

	"go-enlacerb/internal/evaluation"
	evaluationerrors "go-enlacerb/internal/evaluation/errors"
	evaluationMock "go-enlacerb/internal/evaluation/mock"
	"go-enlacerb/internal/shared/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func floatPtr(v float64) *float64 { return &v }

func setupServiceTest(t *testing.T) (*evaluationMock.MockRepository, evaluation.Service) {
	ctrl := gomock.NewController(t)
	repo := evaluationMock.NewMockRepository(ctrl)
	return repo, evaluation.NewService(repo, zap.NewNop())
}

func TestEvaluationService_Create(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupServiceTest(t)

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *evaluation.Evaluation) error {
		assert.Equal(t, evaluation.TypeManager, e.Type)
		assert.Equal(t, 0.0, e.Score)
		e.ID = 1
		return nil
	})

	resp, err := svc.Create(ctx, evaluation.CreateEvaluationRequest{
		EmployeeID: 2,
		Type:       evaluation.TypeManager,
		Score:      floatPtr(0),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.Nil(t, resp.Comments)
}

func TestEvaluationService_GetByEmployee(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupServiceTest(t)
	repo.EXPECT().ListByEmployee(ctx, uint(2), 0, 100).Return([]evaluation.Evaluation{
		{ID: 5, EmployeeID: 2, Type: evaluation.TypePeer},
		{ID: 3, EmployeeID: 2, Type: evaluation.TypeSelf},
	}, nil)

	resp, err := svc.GetByEmployee(ctx, 2, pagination.Params{Skip: 0, Limit: pagination.DefaultLimit})

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, uint(5), resp[0].ID)
}

func TestEvaluationService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("score only", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		comments := "buen trabajo"
		repo.EXPECT().FindByID(ctx, uint(1)).Return(&evaluation.Evaluation{
			ID: 1, Type: evaluation.TypeSelf, Score: 3.5, Comments: &comments,
		}, nil)
		repo.EXPECT().Update(ctx, uint(1), map[string]any{"puntaje": 4.5}).Return(nil)
		repo.EXPECT().FindByID(ctx, uint(1)).Return(&evaluation.Evaluation{
			ID: 1, Type: evaluation.TypeSelf, Score: 4.5, Comments: &comments,
		}, nil)

		resp, err := svc.Update(ctx, 1, evaluation.UpdateEvaluationRequest{Score: floatPtr(4.5)})

		require.NoError(t, err)
		assert.Equal(t, 4.5, resp.Score)
		assert.Equal(t, evaluation.TypeSelf, resp.Type)
		assert.Equal(t, "buen trabajo", *resp.Comments)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, uint(1)).Return(nil, nil)

		_, err := svc.Update(ctx, 1, evaluation.UpdateEvaluationRequest{Score: floatPtr(1)})

		assert.ErrorIs(t, err, evaluationerrors.ErrEvaluationNotFound)
	})
}
