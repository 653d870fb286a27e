package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/slugify"
	"formyap.link/pkg/validation"
	"formyap.link/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FormServiceError özel servis hataları
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	ErrFormNotFound          FormServiceError = "form bulunamadı"
	ErrFormNameRequired      FormServiceError = "form adı zorunludur"
	ErrFormNameTooLong       FormServiceError = "form adı en fazla 255 karakter olabilir"
	ErrInvalidFormCode       FormServiceError = "form kodu sadece küçük harf, rakam ve tire içerebilir"
	ErrFormCodeTaken         FormServiceError = "bu form kodu başka bir form tarafından kullanılıyor"
	ErrInvalidNotifyEmail    FormServiceError = "bildirim e-posta adresi geçersiz"
	ErrInvalidFieldConfig    FormServiceError = "alan tanımı geçersiz"
	ErrInvalidValidationRule FormServiceError = "doğrulama kuralı geçersiz"
	ErrFormCreationFailed    FormServiceError = "form oluşturulamadı"
	ErrFormUpdateFailed      FormServiceError = "form güncellenemedi"
	ErrFormDeletionFailed    FormServiceError = "form silinemedi"
)

const maxFormNameLength = 255

// FormInput yönetim panelinden gelen form öznitelikleri.
type FormInput struct {
	Name             string `form:"name"`
	Code             string `form:"code"`
	Description      string `form:"description"`
	SuccessMessage   string `form:"success_message"`
	ErrorMessage     string `form:"error_message"`
	SubmitButtonText string `form:"submit_button_text"`
	NotifyEmail      string `form:"notify_email"`
	CustomCSS        string `form:"custom_css"`
	CustomJS         string `form:"custom_js"`
	WrapperClass     string `form:"wrapper_class"`
	FormClass        string `form:"form_class"`
	IsActive         bool   `form:"-"`
}

// FormOption seçim listelerinde kullanılan kod/ad çifti.
type FormOption struct {
	ID   uint
	Code string
	Name string
}

// IFormService form tanımları için arayüz.
type IFormService interface {
	CreateForm(ctx context.Context, input FormInput, fieldsConfig []models.FieldConfig) (*models.Form, error)
	UpdateForm(ctx context.Context, id uint, input FormInput, fieldsConfig []models.FieldConfig) (*models.Form, error)
	GetFormByID(ctx context.Context, id uint) (*models.Form, error)
	GetActiveFormByCode(ctx context.Context, code string) (*models.Form, error)
	ListForms(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	ListActiveFormOptions(ctx context.Context) ([]FormOption, error)
	ListFormOptions(ctx context.Context) ([]FormOption, error)
	DeriveValidationRules(form *models.Form) validation.Rules
	DeriveValidationMessages(form *models.Form) validation.Messages
	DeleteForms(ctx context.Context, ids []uint) (int64, error)
	CountForms(ctx context.Context) (int64, error)
}

// FormService IFormService arayüzünü uygular.
type FormService struct {
	repo       repositories.IFormRepository
	transactor repositories.ITransactor
	validate   *validator.Validate
}

// NewFormService global bağlantıyla çalışan servis döndürür.
func NewFormService() IFormService {
	return NewFormServiceWith(repositories.NewFormRepository(), repositories.NewTransactor())
}

// NewFormServiceWith bağımlılıkları dışarıdan alır (testler için).
func NewFormServiceWith(repo repositories.IFormRepository, transactor repositories.ITransactor) *FormService {
	return &FormService{
		repo:       repo,
		transactor: transactor,
		validate:   validator.New(),
	}
}

// CreateForm formu ve fields_config'ten türetilen alan satırlarını tek transaction içinde kaydeder.
func (s *FormService) CreateForm(ctx context.Context, input FormInput, fieldsConfig []models.FieldConfig) (*models.Form, error) {
	form := &models.Form{}
	applyFormInput(form, input, fieldsConfig)

	if err := s.validateForm(ctx, form); err != nil {
		return nil, err
	}
	form.ApplyDefaults()

	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, form); err != nil {
			return err
		}
		fields := form.BuildFields()
		if err := s.repo.RebuildFields(txCtx, form.ID, fields); err != nil {
			return err
		}
		form.Fields = fields
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrFormCodeTaken
		}
		configslog.Log.Error("FormService.CreateForm: kayıt hatası", zap.String("code", form.Code), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFormCreationFailed, err)
	}

	configslog.SLog.Infof("Form oluşturuldu: %s (ID: %d, alan: %d)", form.Code, form.ID, len(form.Fields))
	return form, nil
}

// UpdateForm formu günceller ve tüm alan satırlarını baştan oluşturur.
func (s *FormService) UpdateForm(ctx context.Context, id uint, input FormInput, fieldsConfig []models.FieldConfig) (*models.Form, error) {
	form, err := s.GetFormByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyFormInput(form, input, fieldsConfig)

	if err := s.validateForm(ctx, form); err != nil {
		return nil, err
	}
	form.ApplyDefaults()

	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, form); err != nil {
			return err
		}
		fields := form.BuildFields()
		if err := s.repo.RebuildFields(txCtx, form.ID, fields); err != nil {
			return err
		}
		form.Fields = fields
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrFormCodeTaken
		}
		configslog.Log.Error("FormService.UpdateForm: kayıt hatası", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFormUpdateFailed, err)
	}

	configslog.SLog.Infof("Form güncellendi: %s (ID: %d, alan: %d)", form.Code, form.ID, len(form.Fields))
	return form, nil
}

func (s *FormService) GetFormByID(ctx context.Context, id uint) (*models.Form, error) {
	form, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}

// GetActiveFormByCode pasif ya da olmayan formlar için ErrFormNotFound döner.
func (s *FormService) GetActiveFormByCode(ctx context.Context, code string) (*models.Form, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrFormNotFound
	}
	form, err := s.repo.FindActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}

func (s *FormService) ListForms(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	forms, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(forms, total, params), nil
}

// ListActiveFormOptions aktif formları ada göre sıralı döndürür.
func (s *FormService) ListActiveFormOptions(ctx context.Context) ([]FormOption, error) {
	return s.formOptions(ctx, true)
}

// ListFormOptions gönderim filtresi için tüm formlar.
func (s *FormService) ListFormOptions(ctx context.Context) ([]FormOption, error) {
	return s.formOptions(ctx, false)
}

func (s *FormService) formOptions(ctx context.Context, onlyActive bool) ([]FormOption, error) {
	forms, err := s.repo.FindAllOrderedByName(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	options := make([]FormOption, 0, len(forms))
	for _, f := range forms {
		options = append(options, FormOption{ID: f.ID, Code: f.Code, Name: f.Name})
	}
	return options, nil
}

func (s *FormService) DeriveValidationRules(form *models.Form) validation.Rules {
	return DeriveValidationRules(form)
}

func (s *FormService) DeriveValidationMessages(form *models.Form) validation.Messages {
	return DeriveValidationMessages(form)
}

// DeleteForms formları kalıcı olarak siler. Gönderimler form bağlantısı kopmuş halde kalır.
func (s *FormService) DeleteForms(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	deleted, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFormDeletionFailed, err)
	}
	if deleted == 0 {
		return 0, ErrFormNotFound
	}
	configslog.SLog.Infof("%d form silindi (istenen: %d)", deleted, len(ids))
	return deleted, nil
}

func (s *FormService) CountForms(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}

// DeriveValidationRules aktif alanlardan doğrulama kurallarını üretir.
// Açık kural varsa aynen kullanılır, yoksa zorunlu alan "required" alır,
// ikisi de yoksa alan listeye girmez.
func DeriveValidationRules(form *models.Form) validation.Rules {
	rules := validation.Rules{}
	if form == nil {
		return rules
	}
	for _, field := range form.ActiveFields() {
		switch {
		case field.ValidationRules != "":
			rules[field.Name] = field.ValidationRules
		case field.IsRequired:
			rules[field.Name] = "required"
		}
	}
	return rules
}

// DeriveValidationMessages error_message tanımlı alanlar için "ad.required" mesajlarını üretir.
func DeriveValidationMessages(form *models.Form) validation.Messages {
	messages := validation.Messages{}
	if form == nil {
		return messages
	}
	for _, field := range form.Fields {
		if field.ErrorMessage != "" {
			messages[field.Name+".required"] = field.ErrorMessage
		}
	}
	return messages
}

// DeriveValidationAttributes hata mesajlarında alan adı yerine etiketi kullanmak için.
func DeriveValidationAttributes(form *models.Form) map[string]string {
	attrs := map[string]string{}
	if form == nil {
		return attrs
	}
	for _, field := range form.Fields {
		if field.Label != "" {
			attrs[field.Name] = field.Label
		}
	}
	return attrs
}

func applyFormInput(form *models.Form, input FormInput, fieldsConfig []models.FieldConfig) {
	form.Name = strings.TrimSpace(input.Name)
	form.Code = strings.TrimSpace(input.Code)
	if form.Code == "" {
		form.Code = slugify.Make(form.Name)
	}
	form.Description = input.Description
	form.SuccessMessage = strings.TrimSpace(input.SuccessMessage)
	form.ErrorMessage = strings.TrimSpace(input.ErrorMessage)
	form.SubmitButtonText = strings.TrimSpace(input.SubmitButtonText)
	form.NotifyEmail = strings.TrimSpace(input.NotifyEmail)
	form.CustomCSS = input.CustomCSS
	form.CustomJS = input.CustomJS
	form.WrapperClass = strings.TrimSpace(input.WrapperClass)
	form.FormClass = strings.TrimSpace(input.FormClass)
	form.IsActive = input.IsActive
	if fieldsConfig == nil {
		fieldsConfig = []models.FieldConfig{}
	}
	form.FieldsConfig = fieldsConfig
}

func (s *FormService) validateForm(ctx context.Context, form *models.Form) error {
	if form.Name == "" {
		return ErrFormNameRequired
	}
	if len([]rune(form.Name)) > maxFormNameLength {
		return ErrFormNameTooLong
	}
	if !slugify.IsValid(form.Code) {
		return ErrInvalidFormCode
	}
	if err := s.validate.Var(form.NotifyEmail, "omitempty,email"); err != nil {
		return ErrInvalidNotifyEmail
	}
	if err := ValidateFieldsConfig(form.FieldsConfig); err != nil {
		return err
	}

	taken, err := s.repo.ExistsByCode(ctx, form.Code, form.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormUpdateFailed, err)
	}
	if taken {
		return ErrFormCodeTaken
	}
	return nil
}

// ValidateFieldsConfig alan tiplerini, ad tekrarlarını, seçenekleri ve kural ifadelerini kontrol eder.
func ValidateFieldsConfig(configs []models.FieldConfig) error {
	seen := make(map[string]int, len(configs))
	for i, cfg := range configs {
		field := models.NewFormFieldFromConfig(0, i, cfg)
		position := i + 1

		if !field.FieldType.IsValid() {
			return fmt.Errorf("%w: %d. alan için bilinmeyen tip %q", ErrInvalidFieldConfig, position, field.FieldType)
		}
		if strings.HasPrefix(field.Name, "_") {
			return fmt.Errorf("%w: %q adı ayrılmıştır", ErrInvalidFieldConfig, field.Name)
		}
		if prev, ok := seen[field.Name]; ok {
			return fmt.Errorf("%w: %q adı %d. ve %d. alanda tekrar ediyor", ErrInvalidFieldConfig, field.Name, prev, position)
		}
		seen[field.Name] = position

		if field.NeedsOptions() && len(field.Options) == 0 {
			return fmt.Errorf("%w: %q alanı için en az bir seçenek gerekli", ErrInvalidFieldConfig, field.Name)
		}
		if err := validation.CheckRules(field.ValidationRules); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValidationRule, field.Name, err)
		}
	}
	return nil
}

var _ IFormService = (*FormService)(nil)
