package repositories

import (
	"context"
	"errors"

	"formyap.link/configs"
	"formyap.link/configs/configslog"
	"formyap.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IAdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id uint) (*models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) error
	Update(ctx context.Context, user *models.AdminUser) error
}

type AdminUserRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.AdminUser]
}

func NewAdminUserRepository() IAdminUserRepository {
	return NewAdminUserRepositoryTx(configs.GetDB())
}

func NewAdminUserRepositoryTx(tx *gorm.DB) IAdminUserRepository {
	return &AdminUserRepository{db: tx, base: NewBaseRepository[models.AdminUser](tx)}
}

func (r *AdminUserRepository) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := dbFromContext(ctx, r.db).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AdminUserRepository.FindByUsername: DB error", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *AdminUserRepository) FindByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	return r.base.FindByID(ctx, id)
}

func (r *AdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	return dbFromContext(ctx, r.db).Create(user).Error
}

func (r *AdminUserRepository) Update(ctx context.Context, user *models.AdminUser) error {
	return dbFromContext(ctx, r.db).Save(user).Error
}

var _ IAdminUserRepository = (*AdminUserRepository)(nil)
