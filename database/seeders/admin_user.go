package seeders

import (
	"context"
	"errors"

	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/repositories"
	"formyap.link/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedAdminUser ilk yöneticiyi oluşturur ya da şifresini günceller.
// Şifre verilmemişse hiçbir şey yapmaz.
func SeedAdminUser(db *gorm.DB, username, password string) error {
	if username == "" || password == "" {
		configslog.SLog.Warn("ADMIN_USERNAME veya ADMIN_PASSWORD tanımlı değil, yönetici seed işlemi atlanıyor.")
		return nil
	}

	ctx := context.Background()
	repo := repositories.NewAdminUserRepositoryTx(db)
	adminService := services.NewAdminUserServiceWith(repo)

	user, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("Yönetici kontrol edilirken veritabanı hatası", zap.String("username", username), zap.Error(err))
			return err
		}
		user = &models.AdminUser{Username: username}
	}

	user.IsActive = true
	user.CanManageForms = true
	user.CanManageSubmissions = true

	if err := adminService.SetPassword(ctx, user, password); err != nil {
		configslog.Log.Error("Yönetici kaydedilemedi", zap.String("username", username), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Yönetici '%s' hazır (ID: %d).", user.Username, user.ID)
	return nil
}
