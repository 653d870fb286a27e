package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/pkg/filestorage"
	"formyap.link/pkg/mailer"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/validation"
	"formyap.link/repositories"

	"go.uber.org/zap"
)

// SubmissionServiceError özel servis hataları
type SubmissionServiceError string

func (e SubmissionServiceError) Error() string { return string(e) }

const (
	ErrSubmissionNotFound       SubmissionServiceError = "gönderim bulunamadı"
	ErrSubmissionFileNotFound   SubmissionServiceError = "gönderim dosyası bulunamadı"
	ErrSubmissionFailed         SubmissionServiceError = "gönderim kaydedilemedi"
	ErrSubmissionUpdateFailed   SubmissionServiceError = "gönderim güncellenemedi"
	ErrSubmissionDeletionFailed SubmissionServiceError = "gönderim silinemedi"
)

const (
	// FormErrorKey form bulunamadığında doğrulama hatasının anahtarı
	FormErrorKey        = "_form"
	formNotFoundMessage = "Form bulunamadı."
	// GenericFilesKey herhangi bir dosya alanına bağlı olmayan "files[]" yüklemeleri
	GenericFilesKey = "files"

	notificationTimeout = 10 * time.Second
	downloadURLExpiry   = 15 * time.Minute
	displayTimeLayout   = "2006-01-02 15:04:05"
)

// SubmitInput public gönderim uç noktasından gelen veriler.
// Values çok değerli alanlar için tüm değerleri taşır; Files alan adına göre gruplanır.
type SubmitInput struct {
	FormCode  string
	Values    map[string][]string
	Files     map[string][]filestorage.Upload
	IPAddress string
	UserAgent string
}

type SubmitResult struct {
	Success      bool
	Message      string
	SubmissionID uint
}

// ISubmissionService gönderim akışı ve yönetimi için arayüz.
type ISubmissionService interface {
	Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error)
	GetSubmission(ctx context.Context, id uint) (*models.Submission, error)
	ListSubmissions(ctx context.Context, formID *uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetFormDataDisplay(submission *models.Submission) []models.DisplayRow
	MarkAsContacted(ctx context.Context, id uint) error
	MarkAsCompleted(ctx context.Context, id uint) error
	MarkAsCancelled(ctx context.Context, id uint) error
	UpdateAdminNotes(ctx context.Context, id uint, notes string) error
	DeleteSubmissions(ctx context.Context, ids []uint) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	FileDownloadURL(ctx context.Context, submissionID, fileID uint) (*url.URL, error)
}

// SubmissionService ISubmissionService arayüzünü uygular.
type SubmissionService struct {
	repo        repositories.ISubmissionRepository
	formService IFormService
	validator   *validation.Validator
	mailer      mailer.Mailer
	storage     filestorage.FileStorage
	now         func() time.Time
}

// NewSubmissionService global bağlantıyla çalışan servis döndürür.
func NewSubmissionService(formService IFormService, m mailer.Mailer, storage filestorage.FileStorage) ISubmissionService {
	return NewSubmissionServiceWith(repositories.NewSubmissionRepository(), formService, m, storage, time.Now)
}

// NewSubmissionServiceWith bağımlılıkları dışarıdan alır (testler için).
func NewSubmissionServiceWith(
	repo repositories.ISubmissionRepository,
	formService IFormService,
	m mailer.Mailer,
	storage filestorage.FileStorage,
	now func() time.Time,
) *SubmissionService {
	if m == nil {
		m = mailer.NoopMailer{}
	}
	if storage == nil {
		storage = filestorage.DisabledStorage{}
	}
	if now == nil {
		now = time.Now
	}
	return &SubmissionService{
		repo:        repo,
		formService: formService,
		validator:   validation.New(),
		mailer:      m,
		storage:     storage,
		now:         now,
	}
}

// Submit gönderimi doğrular, kaydeder, dosyaları depolar ve bildirim gönderir.
// Doğrulama başarısızsa *validation.Errors döner ve hiçbir şey yazılmaz.
func (s *SubmissionService) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	form, err := s.formService.GetActiveFormByCode(ctx, input.FormCode)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return nil, validation.NewFieldError(FormErrorKey, formNotFoundMessage)
		}
		return nil, err
	}

	fields := form.ActiveFields()
	err = s.validator.Validate(validation.Input{
		Payload:    buildPayload(fields, input),
		Rules:      DeriveValidationRules(form),
		Messages:   DeriveValidationMessages(form),
		Attributes: DeriveValidationAttributes(form),
	})
	if err != nil {
		var verrs *validation.Errors
		if !errors.As(err, &verrs) {
			configslog.Log.Error("SubmissionService.Submit: kural ifadesi işlenemedi", zap.String("form", form.Code), zap.Error(err))
		}
		return nil, err
	}

	formData := buildFormData(fields, input.Values)
	submission := &models.Submission{
		FormData:  formData,
		Status:    models.SubmissionStatusNew,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	}
	formID := form.ID
	submission.FormID = &formID
	submission.CreatedAt = s.now()
	submission.Name = submission.FieldValue("name", "")
	submission.Email = submission.FieldValue("email", "")
	submission.Phone = submission.FieldValue("phone", "")
	submission.PreferredTime = submission.FieldValue("preferred_time", "")
	submission.Message = submission.FieldValue("message", "")

	if err := s.repo.Create(ctx, submission); err != nil {
		configslog.Log.Error("SubmissionService.Submit: kayıt hatası", zap.String("form", form.Code), zap.Error(err))
		// Mesaj, formun kendi hata metniyle kullanıcıya gösterilir
		return &SubmitResult{Success: false, Message: form.ErrorMessage}, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	s.storeFiles(ctx, submission, fields, input.Files)

	if form.NotifyEmail != "" {
		submission.Form = form
		s.sendNotification(ctx, form, submission)
	}

	configslog.SLog.Infof("Yeni gönderim: form=%s id=%d", form.Code, submission.ID)
	return &SubmitResult{
		Success:      true,
		Message:      form.SuccessMessage,
		SubmissionID: submission.ID,
	}, nil
}

// buildPayload aktif alanların gönderilen değerlerini doğrulayıcı girdisine çevirir.
// Dosya alanlarında değer olarak yüklenen dosya adları kullanılır.
func buildPayload(fields []models.FormField, input SubmitInput) validation.Payload {
	payload := validation.Payload{}
	for _, field := range fields {
		switch {
		case field.FieldType == models.FieldTypeFile:
			uploads := input.Files[field.Name]
			names := make([]string, 0, len(uploads))
			for _, u := range uploads {
				names = append(names, u.FileName)
			}
			payload[field.Name] = validation.Value{Items: names, List: true}
		case models.IsCaptured(field.FieldType):
			values, ok := input.Values[field.Name]
			if !ok {
				continue
			}
			if field.FieldType == models.FieldTypeCheckbox {
				payload[field.Name] = validation.Value{Items: values, List: true}
			} else {
				payload[field.Name] = validation.Value{Items: firstOnly(values)}
			}
		}
	}
	return payload
}

// buildFormData sadece gönderilmiş, aktif ve saklanan tipteki alanları kopyalar.
func buildFormData(fields []models.FormField, values map[string][]string) models.FormData {
	data := models.FormData{}
	for _, field := range fields {
		if !models.IsCaptured(field.FieldType) {
			continue
		}
		submitted, ok := values[field.Name]
		if !ok {
			continue
		}
		if field.FieldType == models.FieldTypeCheckbox {
			data[field.Name] = models.ListValue(submitted...)
			continue
		}
		if len(submitted) == 0 {
			data[field.Name] = models.ScalarValue("")
			continue
		}
		data[field.Name] = models.ScalarValue(submitted[0])
	}
	return data
}

func firstOnly(values []string) []string {
	if len(values) > 1 {
		return values[:1]
	}
	return values
}

// storeFiles dosyaları depoya yazar. Gönderim zaten kaydedildiği için hatalar
// loglanır ve ilgili dosya atlanır.
func (s *SubmissionService) storeFiles(ctx context.Context, submission *models.Submission, fields []models.FormField, files map[string][]filestorage.Upload) {
	keys := make([]string, 0, len(fields)+1)
	genericIsField := false
	for _, field := range fields {
		if field.Name == GenericFilesKey {
			genericIsField = true
		}
		if field.FieldType == models.FieldTypeFile {
			keys = append(keys, field.Name)
		}
	}
	if !genericIsField {
		keys = append(keys, GenericFilesKey)
	}

	for _, key := range keys {
		for _, upload := range files[key] {
			obj, err := s.storage.Store(ctx, upload)
			if err != nil {
				configslog.Log.Warn("Gönderim dosyası depolanamadı",
					zap.Uint("submission_id", submission.ID),
					zap.String("field", key),
					zap.String("file", upload.FileName),
					zap.Error(err))
				continue
			}
			record := &models.SubmissionFile{
				SubmissionID: submission.ID,
				FileName:     obj.FileName,
				DiskName:     obj.Key,
				Bucket:       obj.Bucket,
				ContentType:  obj.ContentType,
				FileSize:     obj.Size,
			}
			if err := s.repo.AttachFile(ctx, record); err != nil {
				configslog.Log.Error("Gönderim dosyası kaydedilemedi",
					zap.Uint("submission_id", submission.ID),
					zap.String("key", obj.Key),
					zap.Error(err))
				if rmErr := s.storage.Remove(ctx, obj.Bucket, obj.Key); rmErr != nil {
					configslog.Log.Warn("Sahipsiz nesne silinemedi", zap.String("key", obj.Key), zap.Error(rmErr))
				}
				continue
			}
			submission.Files = append(submission.Files, *record)
		}
	}
}

func (s *SubmissionService) sendNotification(ctx context.Context, form *models.Form, submission *models.Submission) {
	mailCtx, cancel := context.WithTimeout(ctx, notificationTimeout)
	defer cancel()

	subject := "Yeni Form Gönderimi: " + form.Name
	body := BuildNotificationBody(form, submission)
	if err := s.mailer.SendPlain(mailCtx, form.NotifyEmail, subject, body); err != nil {
		if errors.Is(err, mailer.ErrMailerDisabled) {
			// açılışta zaten uyarı yazıldı
			configslog.Log.Debug("Bildirim e-postası atlandı, SMTP yapılandırılmamış",
				zap.String("form", form.Code),
				zap.Uint("submission_id", submission.ID))
			return
		}
		configslog.Log.Error("Form bildirim e-postası gönderilemedi",
			zap.String("form", form.Code),
			zap.String("to", form.NotifyEmail),
			zap.Uint("submission_id", submission.ID),
			zap.Error(err))
	}
}

// BuildNotificationBody bildirim e-postasının düz metin içeriğini üretir.
func BuildNotificationBody(form *models.Form, submission *models.Submission) string {
	var b strings.Builder
	b.WriteString("Yeni Form Gönderimi\n")
	b.WriteString("Form: " + form.Name + "\n")
	b.WriteString("====================\n\n")
	for _, row := range models.BuildFormDataDisplay(form, submission.FormData) {
		b.WriteString(row.Label + ": " + row.Value + "\n")
	}
	b.WriteString("\n--\n")
	b.WriteString("Gönderim zamanı: " + submission.CreatedAt.Format(displayTimeLayout) + "\n")
	b.WriteString("IP adresi: " + submission.IPAddress + "\n")
	return b.String()
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id uint) (*models.Submission, error) {
	submission, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return submission, nil
}

// ListSubmissions en yeniden eskiye sayfalı liste. formID verilirse o formla sınırlar.
func (s *SubmissionService) ListSubmissions(ctx context.Context, formID *uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if formID != nil {
		params.FormID = *formID
	}
	submissions, total, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(submissions, total, params), nil
}

func (s *SubmissionService) GetFormDataDisplay(submission *models.Submission) []models.DisplayRow {
	if submission == nil {
		return nil
	}
	return submission.FormDataDisplay()
}

// MarkAsContacted durumu "contacted" yapar ve iletişim zamanını kaydeder.
func (s *SubmissionService) MarkAsContacted(ctx context.Context, id uint) error {
	now := s.now()
	return s.setStatus(ctx, id, models.SubmissionStatusContacted, &now)
}

func (s *SubmissionService) MarkAsCompleted(ctx context.Context, id uint) error {
	return s.setStatus(ctx, id, models.SubmissionStatusCompleted, nil)
}

func (s *SubmissionService) MarkAsCancelled(ctx context.Context, id uint) error {
	return s.setStatus(ctx, id, models.SubmissionStatusCancelled, nil)
}

func (s *SubmissionService) setStatus(ctx context.Context, id uint, status models.SubmissionStatus, contactedAt *time.Time) error {
	if err := s.repo.UpdateStatus(ctx, id, status, contactedAt); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSubmissionNotFound
		}
		return fmt.Errorf("%w: %v", ErrSubmissionUpdateFailed, err)
	}
	configslog.SLog.Infof("Gönderim %d durumu güncellendi: %s", id, status)
	return nil
}

func (s *SubmissionService) UpdateAdminNotes(ctx context.Context, id uint, notes string) error {
	if err := s.repo.UpdateAdminNotes(ctx, id, strings.TrimSpace(notes)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSubmissionNotFound
		}
		return fmt.Errorf("%w: %v", ErrSubmissionUpdateFailed, err)
	}
	return nil
}

// DeleteSubmissions kayıtları siler; depodaki dosyalar en iyi çaba ile kaldırılır.
func (s *SubmissionService) DeleteSubmissions(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	files, err := s.repo.FindFilesBySubmissionIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSubmissionDeletionFailed, err)
	}
	deleted, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSubmissionDeletionFailed, err)
	}
	if deleted == 0 {
		return 0, ErrSubmissionNotFound
	}
	for _, f := range files {
		if err := s.storage.Remove(ctx, f.Bucket, f.DiskName); err != nil {
			configslog.Log.Warn("Gönderim dosyası depodan silinemedi",
				zap.Uint("submission_id", f.SubmissionID),
				zap.String("key", f.DiskName),
				zap.Error(err))
		}
	}
	configslog.SLog.Infof("%d gönderim silindi", deleted)
	return deleted, nil
}

// CountPending new veya contacted durumundaki gönderim sayısı.
func (s *SubmissionService) CountPending(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, models.SubmissionStatusNew, models.SubmissionStatusContacted)
}

// FileDownloadURL yönetim paneli için süreli indirme bağlantısı üretir.
func (s *SubmissionService) FileDownloadURL(ctx context.Context, submissionID, fileID uint) (*url.URL, error) {
	submission, err := s.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	for _, f := range submission.Files {
		if f.ID == fileID {
			return s.storage.PresignedURL(ctx, f.Bucket, f.DiskName, f.FileName, downloadURLExpiry)
		}
	}
	return nil, ErrSubmissionFileNotFound
}

var _ ISubmissionService = (*SubmissionService)(nil)
