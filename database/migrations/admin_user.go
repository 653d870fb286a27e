package migrations

import (
	"formyap.link/configs/configslog"
	"formyap.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAdminUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating admin_users table...")
	if err := db.AutoMigrate(&models.AdminUser{}); err != nil {
		configslog.Log.Error("Failed to migrate admin_users table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Admin_users table migrated successfully")
	return nil
}
