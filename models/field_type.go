package models

// FieldType form alanının tipini belirtir.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeNumber   FieldType = "number"
	FieldTypeURL      FieldType = "url"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeDate     FieldType = "date"
	FieldTypeFile     FieldType = "file"
	FieldTypeHidden   FieldType = "hidden"
	FieldTypeHTML     FieldType = "html" // Sadece görüntüleme, veri toplamaz
)

// FieldTypeOption admin ekranındaki tip seçicisinde bir satır.
type FieldTypeOption struct {
	Type  FieldType
	Label string
}

// Sıra, admin arayüzündeki açılır listede gösterilen sıradır.
var fieldTypes = []FieldTypeOption{
	{FieldTypeText, "Metin"},
	{FieldTypeEmail, "E-posta"},
	{FieldTypePhone, "Telefon"},
	{FieldTypeNumber, "Sayı"},
	{FieldTypeURL, "URL"},
	{FieldTypeTextarea, "Çok Satırlı Metin"},
	{FieldTypeSelect, "Açılır Liste"},
	{FieldTypeCheckbox, "Onay Kutusu"},
	{FieldTypeRadio, "Seçenek Düğmeleri"},
	{FieldTypeDate, "Tarih"},
	{FieldTypeFile, "Dosya Yükleme"},
	{FieldTypeHidden, "Gizli Alan"},
	{FieldTypeHTML, "Özel HTML"},
}

// ListTypes desteklenen alan tiplerini sıralı olarak döndürür.
func ListTypes() []FieldTypeOption {
	out := make([]FieldTypeOption, len(fieldTypes))
	copy(out, fieldTypes)
	return out
}

// NeedsOptions tipin bir seçenek listesine ihtiyaç duyup duymadığını söyler.
func NeedsOptions(t FieldType) bool {
	switch t {
	case FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox:
		return true
	}
	return false
}

// IsCaptured tipin değerinin form_data içine yazılıp yazılmayacağını söyler.
// html sadece görüntülenir; file ise dosya deposuna ayrıca kaydedilir.
func IsCaptured(t FieldType) bool {
	return t != FieldTypeHTML && t != FieldTypeFile
}

func (t FieldType) IsValid() bool {
	for _, ft := range fieldTypes {
		if ft.Type == t {
			return true
		}
	}
	return false
}

// Label tipin görünen adını döndürür, bilinmeyen tiplerde kimliğin kendisini.
func (t FieldType) Label() string {
	for _, ft := range fieldTypes {
		if ft.Type == t {
			return ft.Label
		}
	}
	return string(t)
}
