package validation

import (
	"encoding/json"
	"sort"
	"strings"
)

// Errors alan bazlı doğrulama mesajlarını taşıyan hata tipi.
type Errors struct {
	fields map[string][]string
}

func NewErrors() *Errors {
	return &Errors{fields: map[string][]string{}}
}

// NewFieldError tek bir alan için tek mesajlık hata üretir.
func NewFieldError(field, message string) *Errors {
	e := NewErrors()
	e.Add(field, message)
	return e
}

func (e *Errors) Add(field, message string) {
	e.fields[field] = append(e.fields[field], message)
}

func (e *Errors) Has(field string) bool {
	return len(e.fields[field]) > 0
}

// First alanın ilk mesajını döndürür.
func (e *Errors) First(field string) string {
	if msgs := e.fields[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (e *Errors) Empty() bool {
	return len(e.fields) == 0
}

// Fields alan -> mesajlar eşlemesinin kopyası.
func (e *Errors) Fields() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (e *Errors) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.fields[k]...)
	}
	return "doğrulama hatası: " + strings.Join(msgs, " ")
}

func (e *Errors) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.fields)
}
