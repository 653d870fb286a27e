//go:build integration

package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"formyap.link/database"
	"formyap.link/models"
	"formyap.link/pkg/queryparams"
	"formyap.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:15",
			Env: map[string]string{
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_USER":     "test",
				"POSTGRES_DB":       "formyap",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s user=test password=test dbname=formyap port=%s sslmode=disable", host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	database.Initialize(db, true, true, database.SeedOptions{AdminUsername: "admin", AdminPassword: "changeme123"})
	return db
}

func TestMigrateSeedAndRepositories(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	formRepo := repositories.NewFormRepositoryTx(db)
	submissionRepo := repositories.NewSubmissionRepositoryTx(db)
	adminRepo := repositories.NewAdminUserRepositoryTx(db)

	admin, err := adminRepo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.HasPermission(models.PermissionManageForms))

	form, err := formRepo.FindActiveByCode(ctx, "callback")
	require.NoError(t, err)
	require.Len(t, form.Fields, 5)
	assert.Equal(t, "name", form.Fields[0].Name)

	exists, err := formRepo.ExistsByCode(ctx, "callback", 0)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = formRepo.ExistsByCode(ctx, "callback", form.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Aynı kodla ikinci form benzersiz index'e takılır.
	dup := &models.Form{Name: "Kopya", Code: "callback", IsActive: true}
	err = formRepo.Create(ctx, dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	formID := form.ID
	submission := &models.Submission{
		FormID:   &formID,
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		FormData: models.FormData{"name": models.ScalarValue("Ayşe Yılmaz")},
	}
	require.NoError(t, submissionRepo.Create(ctx, submission))
	assert.Equal(t, models.SubmissionStatusNew, submission.Status)

	pending, err := submissionRepo.CountByStatus(ctx, models.SubmissionStatusNew, models.SubmissionStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)

	now := time.Now()
	require.NoError(t, submissionRepo.UpdateStatus(ctx, submission.ID, models.SubmissionStatusContacted, &now))
	assert.ErrorIs(t, submissionRepo.UpdateStatus(ctx, 999999, models.SubmissionStatusCompleted, nil), repositories.ErrNotFound)

	params := queryparams.DefaultListParams("created_at")
	params.Name = "ayşe"
	list, total, err := submissionRepo.FindAllPaginated(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Form)
	assert.Equal(t, "callback", list[0].Form.Code)

	forms, formTotal, err := formRepo.FindAllPaginated(ctx, queryparams.DefaultListParams("created_at"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), formTotal)
	assert.Equal(t, int64(1), forms[0].SubmissionsCount)

	// Form silinince gönderim kalır, form bağlantısı boşalır.
	deleted, err := formRepo.DeleteByIDs(ctx, []uint{form.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	kept, err := submissionRepo.FindByID(ctx, submission.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.FormID)
	assert.Equal(t, models.UnknownFormName, kept.FormName())
	assert.Equal(t, models.SubmissionStatusContacted, kept.Status)
	assert.NotNil(t, kept.ContactedAt)

	var fieldCount int64
	require.NoError(t, db.Model(&models.FormField{}).Where("form_id = ?", form.ID).Count(&fieldCount).Error)
	assert.Zero(t, fieldCount)
}
