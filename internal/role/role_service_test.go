package role_test

import (
	"context"
	"errors"
	"testing"

	"go-enlacerb/internal/role"
	roleerrors "go-enlacerb/internal/role/errors"
	roleMock "go-enlacerb/internal/role/mock"
	"go-enlacerb/internal/shared/pagination"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupService(t *testing.T) (*roleMock.MockRepository, role.Service) {
	ctrl := gomock.NewController(t)
	repo := roleMock.NewMockRepository(ctrl)
	return repo, role.NewService(repo, zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestRoleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().FindByName(ctx, "Ventas").Return(nil, nil)
		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, r *role.Role) error {
				assert.Equal(t, "Ventas", r.Name)
				r.ID = 3
				return nil
			})

		resp, err := svc.Create(ctx, role.CreateRoleRequest{Name: "Ventas"})

		assert.NoError(t, err)
		assert.Equal(t, role.RoleResponse{ID: 3, Name: "Ventas"}, resp)
	})

	t.Run("name already exists", func(t *testing.T) {
		repo, svc := setupService(t)

		repo.EXPECT().FindByName(ctx, "Ventas").Return(&role.Role{ID: 1, Name: "Ventas"}, nil)

		_, err := svc.Create(ctx, role.CreateRoleRequest{Name: "Ventas"})

		assert.ErrorIs(t, err, roleerrors.ErrRoleAlreadyExists)
	})

	t.Run("store error is propagated", func(t *testing.T) {
		repo, svc := setupService(t)
		storeErr := errors.New("UNIQUE constraint failed: roles.nombre")

		repo.EXPECT().FindByName(ctx, "Ventas").Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(storeErr)

		_, err := svc.Create(ctx, role.CreateRoleRequest{Name: "Ventas"})

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestRoleService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().FindByID(ctx, uint(1)).Return(&role.Role{ID: 1, Name: "Admin"}, nil)

		resp, err := svc.GetByID(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "Admin", resp.Name)
	})

	t.Run("absent maps to not found", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().FindByID(ctx, uint(9)).Return(nil, nil)

		_, err := svc.GetByID(ctx, 9)

		assert.ErrorIs(t, err, roleerrors.ErrRoleNotFound)
	})
}

func TestRoleService_GetAll(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupService(t)

	repo.EXPECT().List(ctx, 2, 2).Return([]role.Role{{ID: 3, Name: "C"}, {ID: 4, Name: "D"}}, nil)

	resp, err := svc.GetAll(ctx, pagination.Params{Skip: 2, Limit: 2})

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, uint(3), resp[0].ID)
}

func TestRoleService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("empty patch does not write", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().FindByID(ctx, uint(1)).Return(&role.Role{ID: 1, Name: "Admin"}, nil)

		resp, err := svc.Update(ctx, 1, role.UpdateRoleRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "Admin", resp.Name)
	})

	t.Run("rename", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().FindByID(ctx, uint(1)).Return(&role.Role{ID: 1, Name: "Admin"}, nil)
		repo.EXPECT().FindByName(ctx, "Gerencia").Return(nil, nil)
		repo.EXPECT().Update(ctx, uint(1), map[string]any{"nombre": "Gerencia"}).Return(nil)
		repo.EXPECT().FindByID(ctx, uint(1)).Return(&role.Role{ID: 1, Name: "Gerencia"}, nil)

		resp, err := svc.Update(ctx, 1, role.UpdateRoleRequest{Name: strPtr("Gerencia")})

		assert.NoError(t, err)
		assert.Equal(t, "Gerencia", resp.Name)
	})

	t.Run("rename to taken name", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().FindByID(ctx, uint(1)).Return(&role.Role{ID: 1, Name: "Admin"}, nil)
		repo.EXPECT().FindByName(ctx, "Ventas").Return(&role.Role{ID: 2, Name: "Ventas"}, nil)

		_, err := svc.Update(ctx, 1, role.UpdateRoleRequest{Name: strPtr("Ventas")})

		assert.ErrorIs(t, err, roleerrors.ErrRoleAlreadyExists)
	})

	t.Run("absent", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().FindByID(ctx, uint(5)).Return(nil, nil)

		_, err := svc.Update(ctx, 5, role.UpdateRoleRequest{Name: strPtr("x")})

		assert.ErrorIs(t, err, roleerrors.ErrRoleNotFound)
	})
}
