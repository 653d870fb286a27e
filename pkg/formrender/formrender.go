package formrender

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"formyap.link/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Görüntüleme modları
const (
	ModeInline = "inline"
	ModeModal  = "modal"

	DefaultModalID = "callbackModal"
)

// Options formun nasıl sarmalanacağını belirler.
type Options struct {
	Mode      string
	ModalID   string
	SubmitURL string
}

// Normalize boş ya da bilinmeyen değerleri varsayılanlara çeker.
func (o Options) Normalize() Options {
	if o.Mode != ModeInline {
		o.Mode = ModeModal
	}
	if o.ModalID == "" {
		o.ModalID = DefaultModalID
	}
	if o.SubmitURL == "" {
		o.SubmitURL = "/forms/submit"
	}
	return o
}

type fieldView struct {
	Field        models.FormField
	InputID      string
	InputType    string
	Required     bool
	Attrs        template.HTMLAttr
	FieldStyle   template.CSS
	WrapperStyle template.CSS
	HTML         template.HTML
}

type formView struct {
	Form      *models.Form
	Fields    []template.HTML
	CSS       template.CSS
	JS        template.JS
	ModalID   string
	SubmitURL string
}

// Renderer alan tipine göre "field-<tip>" şablonunu, yoksa "field-default"u kullanır.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("form şablonları yüklenemedi: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// TemplateFor alan tipi için kullanılacak şablon adını döndürür.
func (r *Renderer) TemplateFor(t models.FieldType) string {
	name := "field-" + string(t)
	if r.tmpl.Lookup(name) != nil {
		return name
	}
	return "field-default"
}

// RenderField tek bir alanın HTML'ini üretir.
func (r *Renderer) RenderField(field models.FormField) (template.HTML, error) {
	view := fieldView{
		Field:        field,
		InputID:      field.InputID(),
		InputType:    inputType(field.FieldType),
		Required:     field.IsRequired,
		Attrs:        template.HTMLAttr(field.AttributesHTML()),
		FieldStyle:   template.CSS(field.FieldStyle),
		WrapperStyle: template.CSS(field.WrapperStyle),
		HTML:         template.HTML(field.HTMLContent),
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, r.TemplateFor(field.FieldType), view); err != nil {
		return "", fmt.Errorf("%s alanı render edilemedi: %w", field.Name, err)
	}
	return template.HTML(buf.String()), nil
}

// RenderForm formu verilen aktif alanlarla birlikte inline ya da modal olarak render eder.
// Özel CSS, çakışmaması için formun koduyla etiketlenmiş bir style bloğu olarak eklenir.
func (r *Renderer) RenderForm(form *models.Form, fields []models.FormField, opts Options) (template.HTML, error) {
	opts = opts.Normalize()

	rendered := make([]template.HTML, 0, len(fields))
	for _, field := range fields {
		h, err := r.RenderField(field)
		if err != nil {
			return "", err
		}
		rendered = append(rendered, h)
	}

	view := formView{
		Form:      form,
		Fields:    rendered,
		CSS:       template.CSS(form.CustomCSS),
		JS:        template.JS(form.CustomJS),
		ModalID:   opts.ModalID,
		SubmitURL: opts.SubmitURL,
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "form-"+opts.Mode, view); err != nil {
		return "", fmt.Errorf("form render edilemedi: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func inputType(t models.FieldType) string {
	switch t {
	case models.FieldTypeEmail:
		return "email"
	case models.FieldTypePhone:
		return "tel"
	case models.FieldTypeNumber:
		return "number"
	case models.FieldTypeURL:
		return "url"
	case models.FieldTypeDate:
		return "date"
	case models.FieldTypeHidden:
		return "hidden"
	default:
		return "text"
	}
}
