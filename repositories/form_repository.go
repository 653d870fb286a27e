package repositories

import (
	"context"
	"errors"

	"formyap.link/configs"
	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/turkishsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IFormRepository form ve türetilmiş alan satırları için veritabanı işlemleri.
type IFormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	Update(ctx context.Context, form *models.Form) error
	RebuildFields(ctx context.Context, formID uint, fields []models.FormField) error
	FindByID(ctx context.Context, id uint) (*models.Form, error)
	FindActiveByCode(ctx context.Context, code string) (*models.Form, error)
	ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, int64, error)
	FindAllOrderedByName(ctx context.Context, onlyActive bool) ([]models.Form, error)
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

// FormRepository IFormRepository arayüzünü uygular.
type FormRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Form]
}

// NewFormRepository global bağlantı ile yeni bir FormRepository oluşturur.
func NewFormRepository() IFormRepository {
	return NewFormRepositoryTx(configs.GetDB())
}

// NewFormRepositoryTx verilen bağlantı/transaction ile çalışan repository döndürür.
func NewFormRepositoryTx(tx *gorm.DB) IFormRepository {
	base := NewBaseRepository[models.Form](tx)
	base.SetAllowedSortColumns([]string{
		"id:forms.id",
		"name:forms.name",
		"code:forms.code",
		"created_at:forms.created_at",
		"is_active:forms.is_active",
	})
	return &FormRepository{db: tx, base: base}
}

func (r *FormRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func orderedFields(db *gorm.DB) *gorm.DB {
	return db.Order("form_fields.sort_order ASC, form_fields.id ASC")
}

// Create formu ilişkileri olmadan kaydeder; alan satırları RebuildFields ile yazılır.
func (r *FormRepository) Create(ctx context.Context, form *models.Form) error {
	if form == nil {
		return errors.New("oluşturulacak form geçerli değil")
	}
	return r.getDB(ctx).Omit(clause.Associations).Create(form).Error
}

func (r *FormRepository) Update(ctx context.Context, form *models.Form) error {
	if form == nil || form.ID == 0 {
		return errors.New("güncellenecek form geçerli değil")
	}
	return r.getDB(ctx).Omit(clause.Associations).Save(form).Error
}

// RebuildFields formun tüm alan satırlarını siler ve verilen listeyi yeniden ekler.
// Kısmi birleştirme yapılmaz; sort_order değerleri çağıran tarafından belirlenir.
func (r *FormRepository) RebuildFields(ctx context.Context, formID uint, fields []models.FormField) error {
	if formID == 0 {
		return errors.New("geçersiz Form ID")
	}
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", formID).Delete(&models.FormField{}).Error; err != nil {
			configslog.Log.Error("FormRepository.RebuildFields: silme hatası", zap.Uint("form_id", formID), zap.Error(err))
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		for i := range fields {
			id := formID
			fields[i].ID = 0
			fields[i].FormID = &id
		}
		if err := tx.Create(&fields).Error; err != nil {
			configslog.Log.Error("FormRepository.RebuildFields: ekleme hatası", zap.Uint("form_id", formID), zap.Error(err))
			return err
		}
		return nil
	})
}

// FindByID formu tüm alanlarıyla (aktif/pasif) birlikte getirir.
func (r *FormRepository) FindByID(ctx context.Context, id uint) (*models.Form, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var form models.Form
	err := r.getDB(ctx).Preload("Fields", orderedFields).First(&form, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// FindActiveByCode sadece aktif formu ve aktif alanlarını getirir.
func (r *FormRepository) FindActiveByCode(ctx context.Context, code string) (*models.Form, error) {
	if code == "" {
		return nil, ErrNotFound
	}
	var form models.Form
	err := r.getDB(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return orderedFields(db.Where("form_fields.is_active = ?", true))
		}).
		Where("code = ? AND is_active = ?", code, true).
		First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("FormRepository.FindActiveByCode: DB error", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &form, nil
}

// ExistsByCode kodun başka bir formda kullanılıp kullanılmadığını kontrol eder.
func (r *FormRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	var count int64
	query := r.getDB(ctx).Model(&models.Form{}).Where("code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		configslog.Log.Error("FormRepository.ExistsByCode: DB error", zap.String("code", code), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// FindAllPaginated admin listesi: ad araması, aktiflik filtresi, alan ve gönderim sayıları.
func (r *FormRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, int64, error) {
	var forms []models.Form
	var totalCount int64

	query := r.getDB(ctx).Model(&models.Form{})
	if params.Name != "" {
		sqlFragment, args := turkishsearch.SQLFilter("forms.name", params.Name)
		query = query.Where(sqlFragment, args...)
	}
	switch params.Status {
	case "true", "active":
		query = query.Where("forms.is_active = ?", true)
	case "false", "inactive":
		query = query.Where("forms.is_active = ?", false)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("FormRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return forms, 0, nil
	}

	err := query.
		Select("forms.*, (SELECT COUNT(*) FROM submissions WHERE submissions.form_id = forms.id) AS submissions_count").
		Preload("Fields", orderedFields).
		Order(r.base.OrderClause(params.SortBy, params.OrderBy, "forms.created_at")).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&forms).Error
	if err != nil {
		configslog.Log.Error("FormRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return forms, totalCount, nil
}

// FindAllOrderedByName seçim listeleri için formları ada göre sıralı döndürür.
func (r *FormRepository) FindAllOrderedByName(ctx context.Context, onlyActive bool) ([]models.Form, error) {
	var forms []models.Form
	query := r.getDB(ctx).Order("name ASC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&forms).Error; err != nil {
		configslog.Log.Error("FormRepository.FindAllOrderedByName: DB error", zap.Bool("only_active", onlyActive), zap.Error(err))
		return nil, err
	}
	return forms, nil
}

// DeleteByIDs formları kalıcı olarak siler. Alan satırları FK ile silinir,
// gönderimlerin form_id değeri NULL olur.
func (r *FormRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	return r.base.DeleteByIDs(ctx, ids)
}

func (r *FormRepository) CountAll(ctx context.Context) (int64, error) {
	return r.base.Count(ctx)
}

var _ IFormRepository = (*FormRepository)(nil)
