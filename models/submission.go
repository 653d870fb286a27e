package models

import (
	"time"

	"gorm.io/gorm"
)

// SubmissionStatus gönderimin iş akışı durumu. Durumlar birbirinden bağımsız
// olarak atanabilir, zorunlu bir geçiş sırası yoktur.
type SubmissionStatus string

const (
	SubmissionStatusNew       SubmissionStatus = "new"       // Yeni gelen
	SubmissionStatusContacted SubmissionStatus = "contacted" // İletişime geçildi
	SubmissionStatusCompleted SubmissionStatus = "completed" // Tamamlandı
	SubmissionStatusCancelled SubmissionStatus = "cancelled" // İptal edildi
)

var submissionStatusLabels = map[SubmissionStatus]string{
	SubmissionStatusNew:       "Yeni",
	SubmissionStatusContacted: "İletişime Geçildi",
	SubmissionStatusCompleted: "Tamamlandı",
	SubmissionStatusCancelled: "İptal Edildi",
}

// SubmissionStatuses filtre listelerinde gösterim sırası.
func SubmissionStatuses() []SubmissionStatus {
	return []SubmissionStatus{
		SubmissionStatusNew,
		SubmissionStatusContacted,
		SubmissionStatusCompleted,
		SubmissionStatusCancelled,
	}
}

func (s SubmissionStatus) IsValid() bool {
	_, ok := submissionStatusLabels[s]
	return ok
}

func (s SubmissionStatus) Label() string {
	if label, ok := submissionStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// UnknownFormName formu silinmiş gönderimlerde gösterilen ad.
const UnknownFormName = "Bilinmeyen Form"

// Submission bir forma son kullanıcının verdiği tek yanıt.
type Submission struct {
	BaseModel
	FormID *uint `gorm:"index" json:"form_id"`
	// Form silinirse gönderim kalır, bağlantı kopar.
	Form *Form `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"form,omitempty"`

	// Dinamik formlar öncesinden kalan sabit alanlar
	Name          string `gorm:"type:varchar(255)" json:"name"`
	Email         string `gorm:"type:varchar(255);index" json:"email"`
	Phone         string `gorm:"type:varchar(50)" json:"phone"`
	PreferredTime string `gorm:"type:varchar(100)" json:"preferred_time"`
	Message       string `gorm:"type:text" json:"message"`

	FormData FormData `gorm:"type:jsonb" json:"form_data"`

	Status      SubmissionStatus `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	AdminNotes  string           `gorm:"type:text" json:"admin_notes"`
	IPAddress   string           `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent   string           `gorm:"type:text" json:"user_agent"`
	ContactedAt *time.Time       `json:"contacted_at"`

	Files []SubmissionFile `gorm:"foreignKey:SubmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"files,omitempty"`
}

// BeforeCreate durum boşsa "new" olarak başlatır.
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = SubmissionStatusNew
	}
	if s.FormData == nil {
		s.FormData = FormData{}
	}
	return nil
}

// FieldValue form_data'daki değeri metin olarak döndürür, yoksa def.
func (s *Submission) FieldValue(name, def string) string {
	if v, ok := s.FormData[name]; ok {
		return v.String()
	}
	return def
}

// FormName bağlı formun adı; form silinmişse UnknownFormName.
func (s *Submission) FormName() string {
	if s.Form != nil && s.Form.Name != "" {
		return s.Form.Name
	}
	return UnknownFormName
}

// FormDataDisplay yüklenmiş Form ilişkisine göre görüntüleme satırlarını üretir.
func (s *Submission) FormDataDisplay() []DisplayRow {
	return BuildFormDataDisplay(s.Form, s.FormData)
}

// IsPending new veya contacted durumundaki gönderimler bekleyen sayılır.
func (s *Submission) IsPending() bool {
	return s.Status == SubmissionStatusNew || s.Status == SubmissionStatusContacted
}
