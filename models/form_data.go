package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FieldValue gönderilen tek bir alan değeri: ya düz metin ya da metin listesi
// (checkbox, çoklu seçim).
type FieldValue struct {
	scalar string
	list   []string
	isList bool
}

// ScalarValue düz metin değeri oluşturur.
func ScalarValue(s string) FieldValue {
	return FieldValue{scalar: s}
}

// ListValue liste değeri oluşturur.
func ListValue(values ...string) FieldValue {
	out := make([]string, len(values))
	copy(out, values)
	return FieldValue{list: out, isList: true}
}

func (v FieldValue) IsList() bool { return v.isList }

// Values değeri liste olarak döndürür; düz metin tek elemanlı listedir.
func (v FieldValue) Values() []string {
	if v.isList {
		return v.list
	}
	if v.scalar == "" {
		return nil
	}
	return []string{v.scalar}
}

// String liste değerlerini ", " ile birleştirir.
func (v FieldValue) String() string {
	if v.isList {
		return strings.Join(v.list, ", ")
	}
	return v.scalar
}

func (v FieldValue) IsEmpty() bool {
	if v.isList {
		return len(v.list) == 0
	}
	return strings.TrimSpace(v.scalar) == ""
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.isList {
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	}
	return json.Marshal(v.scalar)
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = FieldValue{}
		return nil
	}
	if data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		items := make([]string, 0, len(raw))
		for _, item := range raw {
			s, err := scalarFromJSON(item)
			if err != nil {
				return err
			}
			items = append(items, s)
		}
		*v = FieldValue{list: items, isList: true}
		return nil
	}
	s, err := scalarFromJSON(data)
	if err != nil {
		return err
	}
	*v = FieldValue{scalar: s}
	return nil
}

// scalarFromJSON eski kayıtlarda görülen sayı ve bool değerlerini de metne çevirir.
func scalarFromJSON(data []byte) (string, error) {
	var anyVal interface{}
	if err := json.Unmarshal(data, &anyVal); err != nil {
		return "", err
	}
	switch val := anyVal.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", fmt.Errorf("desteklenmeyen form değeri: %s", string(data))
	}
}

// FormData alan adı -> gönderilen değer eşlemesi. jsonb olarak saklanır.
type FormData map[string]FieldValue

// Value driver.Valuer
func (d FormData) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]FieldValue(d))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan sql.Scanner
func (d *FormData) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*d = FormData{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("form_data için desteklenmeyen tip")
	}
	out := FormData{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &out); err != nil {
			return err
		}
	}
	*d = out
	return nil
}

// Get anahtar yoksa boş değer döndürür.
func (d FormData) Get(key string) (FieldValue, bool) {
	v, ok := d[key]
	return v, ok
}

// SortedKeys anahtarları alfabetik sırada döndürür.
func (d FormData) SortedKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DisplayRow bir gönderimin admin ekranında ve e-postada gösterilen satırı.
type DisplayRow struct {
	Label string
	Value string
	Type  FieldType
}

// BuildFormDataDisplay form_data'yı görüntülenebilir satırlara çevirir.
// Form hâlâ varsa tüm alanlarının sırası ve etiketleri kullanılır; form nil ise
// (silinmişse) form_data anahtarları insan okunur hale getirilerek listelenir.
func BuildFormDataDisplay(form *Form, data FormData) []DisplayRow {
	if form != nil {
		ordered := make([]FormField, len(form.Fields))
		copy(ordered, form.Fields)
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].SortOrder < ordered[j].SortOrder })

		rows := make([]DisplayRow, 0, len(data))
		for _, field := range ordered {
			value, ok := data[field.Name]
			if !ok {
				continue
			}
			rows = append(rows, DisplayRow{
				Label: field.DisplayLabel(),
				Value: value.String(),
				Type:  field.FieldType,
			})
		}
		return rows
	}

	rows := make([]DisplayRow, 0, len(data))
	for _, key := range data.SortedKeys() {
		rows = append(rows, DisplayRow{
			Label: HumanizeKey(key),
			Value: data[key].String(),
			Type:  FieldTypeText,
		})
	}
	return rows
}

// HumanizeKey "preferred_time" -> "Preferred time".
func HumanizeKey(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
