package migrations

import (
	"formyap.link/configs/configslog"
	"formyap.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateSubmissionsTables forms tablosundan sonra çalışmalıdır (form_id FK).
func MigrateSubmissionsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating submissions & submission_files tables...")
	err := db.AutoMigrate(&models.Submission{}, &models.SubmissionFile{})
	if err != nil {
		configslog.Log.Error("Failed to migrate submissions & submission_files tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Submissions & submission_files tables migrated successfully")
	return nil
}
