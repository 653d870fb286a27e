package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Rules alan adı -> kural ifadesi.
type Rules map[string]string

// Messages "alan.kural" -> özel mesaj.
type Messages map[string]string

// Value doğrulanacak tek bir alanın değeri. List çoklu seçim alanlarını belirtir.
type Value struct {
	Items []string
	List  bool
}

// Payload alan adı -> gönderilen değer.
type Payload map[string]Value

// Input tek bir doğrulama çağrısının girdileri.
type Input struct {
	Payload    Payload
	Rules      Rules
	Messages   Messages
	Attributes map[string]string // alan adı -> mesajlarda kullanılacak görünen ad
}

var (
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
	phonePattern   = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,19}$`)
)

var defaultMessages = map[string]string{
	"required":     "%[1]s alanı zorunludur.",
	"email":        "%[1]s alanı geçerli bir e-posta adresi olmalıdır.",
	"url":          "%[1]s alanı geçerli bir URL olmalıdır.",
	"numeric":      "%[1]s alanı sayı olmalıdır.",
	"integer":      "%[1]s alanı tam sayı olmalıdır.",
	"alpha":        "%[1]s alanı sadece harf içerebilir.",
	"alpha_num":    "%[1]s alanı sadece harf ve rakam içerebilir.",
	"date":         "%[1]s alanı geçerli bir tarih olmalıdır.",
	"phone":        "%[1]s alanı geçerli bir telefon numarası olmalıdır.",
	"min.string":   "%[1]s alanı en az %[2]s karakter olmalıdır.",
	"min.numeric":  "%[1]s alanı en az %[2]s olmalıdır.",
	"min.list":     "%[1]s alanında en az %[2]s seçim yapılmalıdır.",
	"max.string":   "%[1]s alanı en fazla %[2]s karakter olabilir.",
	"max.numeric":  "%[1]s alanı en fazla %[2]s olabilir.",
	"max.list":     "%[1]s alanında en fazla %[2]s seçim yapılabilir.",
	"size.string":  "%[1]s alanı %[2]s karakter olmalıdır.",
	"size.numeric": "%[1]s alanı %[2]s olmalıdır.",
	"size.list":    "%[1]s alanında %[2]s seçim yapılmalıdır.",
	"between":      "%[1]s alanı %[2]s ile %[3]s arasında olmalıdır.",
	"in":           "Seçilen %[1]s geçersiz.",
	"not_in":       "Seçilen %[1]s geçersiz.",
	"regex":        "%[1]s alanının biçimi geçersiz.",
	"same":         "%[1]s ile %[2]s eşleşmelidir.",
}

// Validator kural ifadelerini go-playground/validator etiketlerine çevirerek çalıştırır.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		return integerPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return &Validator{validate: v}
}

// Validate girdiyi kurallara göre doğrular. Kurallar geçerse nil, geçmezse *Errors döner.
// Kural ifadesi ayrıştırılamazsa *Errors dışında bir hata döner.
func (v *Validator) Validate(in Input) error {
	errs := NewErrors()

	fields := make([]string, 0, len(in.Rules))
	for f := range in.Rules {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, field := range fields {
		rules, err := parseRules(in.Rules[field])
		if err != nil {
			return fmt.Errorf("%s alanının kuralları: %w", field, err)
		}

		value := in.Payload[field]
		items := nonEmpty(value.Items)
		if len(items) == 0 {
			if hasRule(rules, "required") {
				errs.Add(field, v.message(in, field, rule{name: "required"}, ""))
			}
			continue
		}

		numeric := hasRule(rules, "numeric", "integer")
		for _, r := range rules {
			if r.name == "required" {
				continue
			}
			if ok, kind := v.check(r, value.List, items, numeric, in.Payload); !ok {
				errs.Add(field, v.message(in, field, r, kind))
			}
		}
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

// check tek bir kuralı uygular; başarısızsa mesaj türünü (string/numeric/list) de döndürür.
func (v *Validator) check(r rule, isList bool, items []string, numeric bool, payload Payload) (bool, string) {
	switch r.name {
	case "min", "max", "size", "between":
		return v.checkSize(r, isList, items, numeric)
	case "in", "not_in":
		allowed := make(map[string]bool, len(r.params))
		for _, p := range r.params {
			allowed[p] = true
		}
		for _, item := range items {
			if allowed[item] == (r.name == "not_in") {
				return false, ""
			}
		}
		return true, ""
	case "regex":
		re, _ := compilePattern(r.params[0])
		for _, item := range items {
			if !re.MatchString(item) {
				return false, ""
			}
		}
		return true, ""
	case "same":
		other := payload[r.params[0]]
		return strings.Join(nonEmpty(other.Items), ",") == strings.Join(items, ","), ""
	}

	tag := tagFor(r.name)
	for _, item := range items {
		if err := v.validate.Var(item, tag); err != nil {
			return false, ""
		}
	}
	return true, ""
}

// checkSize liste ve metinlerde seçim/karakter sayısını, numeric alanlarda değeri karşılaştırır.
func (v *Validator) checkSize(r rule, isList bool, items []string, numeric bool) (bool, string) {
	if isList {
		return withinSize(r, float64(len(items))), "list"
	}
	if numeric {
		tag := sizeTag(r)
		for _, item := range items {
			f, err := strconv.ParseFloat(strings.TrimSpace(item), 64)
			if err != nil {
				// numeric/integer kuralı zaten mesaj üretir
				continue
			}
			if v.validate.Var(f, tag) != nil {
				return false, "numeric"
			}
		}
		return true, "numeric"
	}
	for _, item := range items {
		if !withinSize(r, float64(utf8.RuneCountInString(item))) {
			return false, "string"
		}
	}
	return true, "string"
}

func withinSize(r rule, n float64) bool {
	p0, _ := strconv.ParseFloat(r.params[0], 64)
	switch r.name {
	case "min":
		return n >= p0
	case "max":
		return n <= p0
	case "size":
		return n == p0
	default: // between
		p1, _ := strconv.ParseFloat(r.params[1], 64)
		return n >= p0 && n <= p1
	}
}

func sizeTag(r rule) string {
	switch r.name {
	case "min":
		return "min=" + r.params[0]
	case "max":
		return "max=" + r.params[0]
	case "size":
		return "len=" + r.params[0]
	default: // between
		return "min=" + r.params[0] + ",max=" + r.params[1]
	}
}

func tagFor(name string) string {
	switch name {
	case "alpha":
		return "alphaunicode"
	case "alpha_num":
		return "alphanumunicode"
	case "date":
		return "datetime=2006-01-02"
	default:
		// email, url, numeric ile özel kayıtlı integer ve phone aynı adı taşır
		return name
	}
}

func (v *Validator) message(in Input, field string, r rule, kind string) string {
	if msg, ok := in.Messages[field+"."+r.name]; ok && msg != "" {
		return msg
	}
	attr := field
	if label, ok := in.Attributes[field]; ok && label != "" {
		attr = label
	}

	key := r.name
	if kind != "" && r.name != "between" {
		key = r.name + "." + kind
	}
	tmpl, ok := defaultMessages[key]
	if !ok {
		tmpl = "%[1]s alanı geçersiz."
	}

	args := []interface{}{attr}
	switch r.name {
	case "min", "max", "size":
		args = append(args, r.params[0])
	case "between":
		args = append(args, r.params[0], r.params[1])
	case "same":
		other := r.params[0]
		if label, ok := in.Attributes[other]; ok && label != "" {
			other = label
		}
		args = append(args, other)
	}
	return fmt.Sprintf(tmpl, args...)
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
