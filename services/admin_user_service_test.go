package services_test

import (
	"context"
	"testing"

	"formyap.link/models"
	"formyap.link/repositories"
	"formyap.link/repositories/mock_repositories"
	"formyap.link/services"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminUserService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	repo := mock_repositories.NewMockIAdminUserRepository(ctrl)
	svc := services.NewAdminUserServiceWith(repo)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("gizli-sifre"), bcrypt.MinCost)
	require.NoError(t, err)
	active := &models.AdminUser{Username: "admin", PasswordHash: string(hash), IsActive: true, CanManageForms: true}

	t.Run("valid credentials", func(t *testing.T) {
		repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(active, nil)
		user, err := svc.Authenticate(ctx, "admin", "gizli-sifre")
		require.NoError(t, err)
		assert.True(t, user.HasPermission(models.PermissionManageForms))
	})

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(active, nil)
		_, err := svc.Authenticate(ctx, "admin", "yanlis")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("unknown user looks the same as wrong password", func(t *testing.T) {
		repo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(nil, repositories.ErrNotFound)
		_, err := svc.Authenticate(ctx, "ghost", "x")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		inactive := *active
		inactive.IsActive = false
		repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(&inactive, nil)
		_, err := svc.Authenticate(ctx, "admin", "gizli-sifre")
		assert.ErrorIs(t, err, services.ErrAdminUserInactive)
	})

	t.Run("empty input skips lookup", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, " ", "x")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestAdminUserService_SetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	repo := mock_repositories.NewMockIAdminUserRepository(ctrl)
	svc := services.NewAdminUserServiceWith(repo)
	ctx := context.Background()

	err := svc.SetPassword(ctx, &models.AdminUser{Username: "x"}, "kisa")
	assert.ErrorIs(t, err, services.ErrAdminPasswordTooWeak)

	user := &models.AdminUser{Username: "yeni"}
	repo.EXPECT().Create(gomock.Any(), user).Return(nil)
	require.NoError(t, svc.SetPassword(ctx, user, "uzun-bir-sifre"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("uzun-bir-sifre")))

	user.ID = 4
	repo.EXPECT().Update(gomock.Any(), user).Return(nil)
	require.NoError(t, svc.SetPassword(ctx, user, "baska-bir-sifre"))
}
