package models

import (
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DefaultSuccessMessage   = "Teşekkürler! Formunuz gönderildi."
	DefaultErrorMessage     = "Bir hata oluştu. Lütfen tekrar deneyin."
	DefaultSubmitButtonText = "Gönder"
)

// FieldOption seçim tipli alanlarda (select/radio/checkbox) bir seçenek.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CustomAttribute input elemanına eklenecek serbest HTML niteliği.
type CustomAttribute struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// FieldConfig formun fields_config listesindeki tek bir alan tanımı.
// Alanların asıl kaynağı bu listedir; form_fields tablosu buradan türetilir.
type FieldConfig struct {
	FieldType        FieldType         `json:"field_type"`
	Name             string            `json:"name"`
	Label            string            `json:"label"`
	Placeholder      string            `json:"placeholder,omitempty"`
	DefaultValue     string            `json:"default_value,omitempty"`
	Options          []FieldOption     `json:"options,omitempty"`
	ValidationRules  string            `json:"validation_rules,omitempty"`
	ErrorMessage     string            `json:"error_message,omitempty"`
	FieldClass       string            `json:"field_class,omitempty"`
	FieldStyle       string            `json:"field_style,omitempty"`
	WrapperClass     string            `json:"wrapper_class,omitempty"`
	WrapperStyle     string            `json:"wrapper_style,omitempty"`
	CustomAttributes []CustomAttribute `json:"custom_attributes,omitempty"`
	HTMLContent      string            `json:"html_content,omitempty"`
	IsRequired       bool              `json:"is_required"`
	IsActive         *bool             `json:"is_active,omitempty"` // nil => aktif
}

// Form yöneticinin tanımladığı dinamik formun ana kaydıdır.
type Form struct {
	BaseModel
	Name             string `gorm:"type:varchar(255);not null" form:"name" json:"name"`
	Code             string `gorm:"type:varchar(255);uniqueIndex;not null" form:"code" json:"code"`
	Description      string `gorm:"type:text" form:"description" json:"description"`
	SuccessMessage   string `gorm:"type:text" form:"success_message" json:"success_message"`
	ErrorMessage     string `gorm:"type:text" form:"error_message" json:"error_message"`
	SubmitButtonText string `gorm:"type:varchar(100)" form:"submit_button_text" json:"submit_button_text"`
	NotifyEmail      string `gorm:"type:varchar(255)" form:"notify_email" json:"notify_email"`
	CustomCSS        string `gorm:"type:text" form:"custom_css" json:"custom_css"`
	CustomJS         string `gorm:"type:text" form:"custom_js" json:"custom_js"`
	WrapperClass     string `gorm:"type:varchar(255)" form:"wrapper_class" json:"wrapper_class"`
	FormClass        string `gorm:"type:varchar(255)" form:"form_class" json:"form_class"`
	IsActive         bool   `gorm:"not null;index" form:"is_active" json:"is_active"`

	FieldsConfig datatypes.JSONSlice[FieldConfig] `gorm:"type:jsonb" form:"-" json:"fields_config"`

	// GORM İlişkileri
	Fields []FormField `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" form:"-" json:"fields,omitempty"`

	SubmissionsCount int64 `gorm:"->;-:migration" form:"-" json:"submissions_count"` // Liste sorgusunda alt sorgu ile doldurulur
}

// BeforeCreate boş bırakılan mesaj alanlarını varsayılanlarla doldurur.
func (f *Form) BeforeCreate(tx *gorm.DB) error {
	f.ApplyDefaults()
	return nil
}

// ApplyDefaults boş mesaj ve buton metinlerini varsayılan değerlerle doldurur.
func (f *Form) ApplyDefaults() {
	if f.SuccessMessage == "" {
		f.SuccessMessage = DefaultSuccessMessage
	}
	if f.ErrorMessage == "" {
		f.ErrorMessage = DefaultErrorMessage
	}
	if f.SubmitButtonText == "" {
		f.SubmitButtonText = DefaultSubmitButtonText
	}
}

// ActiveFields yüklü alanlardan aktif olanları sort_order sırasıyla döndürür.
func (f *Form) ActiveFields() []FormField {
	active := make([]FormField, 0, len(f.Fields))
	for _, field := range f.Fields {
		if field.IsActive {
			active = append(active, field)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].SortOrder < active[j].SortOrder })
	return active
}

// FieldsCount yüklü alan sayısı.
func (f *Form) FieldsCount() int {
	return len(f.Fields)
}

// BuildFields fields_config listesinden sırası korunmuş FormField satırları üretir.
// Eksik tip "text", eksik ad "field_<index>" olur; sort_order dizideki indekstir.
func (f *Form) BuildFields() []FormField {
	fields := make([]FormField, 0, len(f.FieldsConfig))
	for i, cfg := range f.FieldsConfig {
		fields = append(fields, NewFormFieldFromConfig(f.ID, i, cfg))
	}
	return fields
}
