package models

import (
	"fmt"
	"html"
	"strings"

	"gorm.io/datatypes"
)

// FormField bir formun fields_config listesinden türetilmiş alan satırıdır.
// Bağımsız olarak düzenlenmez; form her kaydedildiğinde baştan oluşturulur.
type FormField struct {
	BaseModel
	FormID           *uint                                `gorm:"index" json:"form_id"`
	FieldType        FieldType                            `gorm:"type:varchar(30);not null;default:'text'" json:"field_type"`
	Name             string                               `gorm:"type:varchar(255);not null" json:"name"`
	Label            string                               `gorm:"type:varchar(255)" json:"label"`
	Placeholder      string                               `gorm:"type:varchar(255)" json:"placeholder"`
	DefaultValue     string                               `gorm:"type:text" json:"default_value"`
	Options          datatypes.JSONSlice[FieldOption]     `gorm:"type:jsonb" json:"options"`
	ValidationRules  string                               `gorm:"type:varchar(500)" json:"validation_rules"`
	ErrorMessage     string                               `gorm:"type:varchar(500)" json:"error_message"`
	FieldClass       string                               `gorm:"type:varchar(255)" json:"field_class"`
	FieldStyle       string                               `gorm:"type:text" json:"field_style"`
	WrapperClass     string                               `gorm:"type:varchar(255)" json:"wrapper_class"`
	WrapperStyle     string                               `gorm:"type:text" json:"wrapper_style"`
	CustomAttributes datatypes.JSONSlice[CustomAttribute] `gorm:"type:jsonb" json:"custom_attributes"`
	HTMLContent      string                               `gorm:"type:text" json:"html_content"`
	SortOrder        int                                  `gorm:"not null;default:0;index" json:"sort_order"`
	IsRequired       bool                                 `gorm:"not null" json:"is_required"`
	IsActive         bool                                 `gorm:"not null;index" json:"is_active"`
}

// NewFormFieldFromConfig tek bir fields_config girdisini index sırasıyla FormField'a çevirir.
func NewFormFieldFromConfig(formID uint, index int, cfg FieldConfig) FormField {
	fieldType := cfg.FieldType
	if fieldType == "" {
		fieldType = FieldTypeText
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = fmt.Sprintf("field_%d", index)
	}
	isActive := true
	if cfg.IsActive != nil {
		isActive = *cfg.IsActive
	}

	field := FormField{
		FieldType:        fieldType,
		Name:             name,
		Label:            cfg.Label,
		Placeholder:      cfg.Placeholder,
		DefaultValue:     cfg.DefaultValue,
		Options:          cfg.Options,
		ValidationRules:  strings.TrimSpace(cfg.ValidationRules),
		ErrorMessage:     cfg.ErrorMessage,
		FieldClass:       cfg.FieldClass,
		FieldStyle:       cfg.FieldStyle,
		WrapperClass:     cfg.WrapperClass,
		WrapperStyle:     cfg.WrapperStyle,
		CustomAttributes: cfg.CustomAttributes,
		HTMLContent:      cfg.HTMLContent,
		SortOrder:        index,
		IsRequired:       cfg.IsRequired,
		IsActive:         isActive,
	}
	if formID != 0 {
		id := formID
		field.FormID = &id
	}
	return field
}

// NeedsOptions alan tipinin seçenek listesi gerektirip gerektirmediği.
func (f FormField) NeedsOptions() bool {
	return NeedsOptions(f.FieldType)
}

// DisplayLabel etiket boşsa alan adını döndürür.
func (f FormField) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// InputID render edilen input'un DOM id'si.
func (f FormField) InputID() string {
	return fmt.Sprintf("field_%d_%s", f.ID, f.Name)
}

// AttributesHTML özel nitelikleri kaçışlanmış attr="value" çiftleri olarak birleştirir.
func (f FormField) AttributesHTML() string {
	parts := make([]string, 0, len(f.CustomAttributes))
	for _, attr := range f.CustomAttributes {
		name := strings.TrimSpace(attr.Attribute)
		if name == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf(`%s="%s"`, html.EscapeString(name), html.EscapeString(attr.Value)))
	}
	return strings.Join(parts, " ")
}

// HasOption verilen değerin seçenekler arasında olup olmadığını söyler.
func (f FormField) HasOption(value string) bool {
	for _, opt := range f.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
