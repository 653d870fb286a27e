package repositories

import (
	"context"
	"errors"
	"time"

	"formyap.link/configs"
	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/turkishsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StatusPending liste filtresinde new ve contacted durumlarını birlikte seçer.
const StatusPending = "pending"

// ISubmissionRepository gönderim kayıtları ve ekli dosyaları için veritabanı işlemleri.
type ISubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	AttachFile(ctx context.Context, file *models.SubmissionFile) error
	FindByID(ctx context.Context, id uint) (*models.Submission, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Submission, int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.SubmissionStatus, contactedAt *time.Time) error
	UpdateAdminNotes(ctx context.Context, id uint, notes string) error
	FindFilesBySubmissionIDs(ctx context.Context, ids []uint) ([]models.SubmissionFile, error)
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
	CountByStatus(ctx context.Context, statuses ...models.SubmissionStatus) (int64, error)
	CountByFormID(ctx context.Context, formID uint) (int64, error)
}

type SubmissionRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Submission]
}

func NewSubmissionRepository() ISubmissionRepository {
	return NewSubmissionRepositoryTx(configs.GetDB())
}

func NewSubmissionRepositoryTx(tx *gorm.DB) ISubmissionRepository {
	base := NewBaseRepository[models.Submission](tx)
	base.SetAllowedSortColumns([]string{
		"id:submissions.id",
		"created_at:submissions.created_at",
		"status:submissions.status",
		"name:submissions.name",
		"email:submissions.email",
	})
	return &SubmissionRepository{db: tx, base: base}
}

func (r *SubmissionRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission == nil {
		return errors.New("oluşturulacak gönderim geçerli değil")
	}
	return r.getDB(ctx).Omit("Form", "Files").Create(submission).Error
}

func (r *SubmissionRepository) AttachFile(ctx context.Context, file *models.SubmissionFile) error {
	if file == nil || file.SubmissionID == 0 {
		return errors.New("eklenecek dosya geçerli değil")
	}
	return r.getDB(ctx).Create(file).Error
}

// FindByID gönderimi formu, formun alanları ve dosyalarıyla getirir.
func (r *SubmissionRepository) FindByID(ctx context.Context, id uint) (*models.Submission, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var submission models.Submission
	err := r.getDB(ctx).
		Preload("Form").
		Preload("Form.Fields", orderedFields).
		Preload("Files").
		First(&submission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SubmissionRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &submission, nil
}

// FindAllPaginated form, durum ve ad/e-posta aramasına göre en yeniden eskiye listeler.
func (r *SubmissionRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Submission, int64, error) {
	var submissions []models.Submission
	var totalCount int64

	query := r.getDB(ctx).Model(&models.Submission{})
	if params.FormID != 0 {
		query = query.Where("submissions.form_id = ?", params.FormID)
	}
	switch {
	case params.Status == StatusPending:
		query = query.Where("submissions.status IN ?", []models.SubmissionStatus{
			models.SubmissionStatusNew,
			models.SubmissionStatusContacted,
		})
	case params.Status != "" && models.SubmissionStatus(params.Status).IsValid():
		query = query.Where("submissions.status = ?", params.Status)
	}
	if params.Name != "" {
		nameSQL, nameArgs := turkishsearch.SQLFilter("submissions.name", params.Name)
		emailSQL, emailArgs := turkishsearch.SQLFilter("submissions.email", params.Name)
		query = query.Where("("+nameSQL+" OR "+emailSQL+")", append(nameArgs, emailArgs...)...)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("SubmissionRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return submissions, 0, nil
	}

	err := query.
		Preload("Form").
		Order(r.base.OrderClause(params.SortBy, params.OrderBy, "submissions.created_at")).
		Order("submissions.id DESC").
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&submissions).Error
	if err != nil {
		configslog.Log.Error("SubmissionRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return submissions, totalCount, nil
}

// UpdateStatus durumu değiştirir. contactedAt nil ise contacted_at sütununa dokunulmaz.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id uint, status models.SubmissionStatus, contactedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if contactedAt != nil {
		updates["contacted_at"] = *contactedAt
	}
	result := r.getDB(ctx).Model(&models.Submission{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		configslog.Log.Error("SubmissionRepository.UpdateStatus: DB error", zap.Uint("id", id), zap.String("status", string(status)), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SubmissionRepository) UpdateAdminNotes(ctx context.Context, id uint, notes string) error {
	result := r.getDB(ctx).Model(&models.Submission{}).Where("id = ?", id).Update("admin_notes", notes)
	if result.Error != nil {
		configslog.Log.Error("SubmissionRepository.UpdateAdminNotes: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindFilesBySubmissionIDs silme öncesinde depodan kaldırılacak nesneleri bulmak için kullanılır.
func (r *SubmissionRepository) FindFilesBySubmissionIDs(ctx context.Context, ids []uint) ([]models.SubmissionFile, error) {
	var files []models.SubmissionFile
	if len(ids) == 0 {
		return files, nil
	}
	if err := r.getDB(ctx).Where("submission_id IN ?", ids).Find(&files).Error; err != nil {
		configslog.Log.Error("SubmissionRepository.FindFilesBySubmissionIDs: DB error", zap.Uints("ids", ids), zap.Error(err))
		return nil, err
	}
	return files, nil
}

func (r *SubmissionRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	return r.base.DeleteByIDs(ctx, ids)
}

func (r *SubmissionRepository) CountByStatus(ctx context.Context, statuses ...models.SubmissionStatus) (int64, error) {
	var count int64
	query := r.getDB(ctx).Model(&models.Submission{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	if err := query.Count(&count).Error; err != nil {
		configslog.Log.Error("SubmissionRepository.CountByStatus: DB error", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *SubmissionRepository) CountByFormID(ctx context.Context, formID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Submission{}).Where("form_id = ?", formID).Count(&count).Error
	if err != nil {
		configslog.Log.Error("SubmissionRepository.CountByFormID: DB error", zap.Uint("form_id", formID), zap.Error(err))
	}
	return count, err
}

var _ ISubmissionRepository = (*SubmissionRepository)(nil)
