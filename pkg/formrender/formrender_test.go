package formrender

import (
	"strings"
	"testing"

	"formyap.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestTemplateFor_FallsBackToDefault(t *testing.T) {
	r := newRenderer(t)
	assert.Equal(t, "field-select", r.TemplateFor(models.FieldTypeSelect))
	assert.Equal(t, "field-html", r.TemplateFor(models.FieldTypeHTML))
	assert.Equal(t, "field-default", r.TemplateFor(models.FieldTypeEmail))
	assert.Equal(t, "field-default", r.TemplateFor(models.FieldType("color")))
}

func TestRenderField_DefaultInput(t *testing.T) {
	r := newRenderer(t)
	field := models.FormField{
		BaseModel:  models.BaseModel{ID: 4},
		FieldType:  models.FieldTypeEmail,
		Name:       "email",
		Label:      "E-posta",
		IsRequired: true,
		CustomAttributes: []models.CustomAttribute{
			{Attribute: "autocomplete", Value: "email"},
		},
	}

	out, err := r.RenderField(field)
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `type="email"`)
	assert.Contains(t, html, `id="field_4_email"`)
	assert.Contains(t, html, `name="email"`)
	assert.Contains(t, html, `autocomplete="email"`)
	assert.Contains(t, html, "required")
}

func TestRenderField_SelectOptionsAndHTML(t *testing.T) {
	r := newRenderer(t)
	sel, err := r.RenderField(models.FormField{
		FieldType:    models.FieldTypeSelect,
		Name:         "city",
		DefaultValue: "izmir",
		Options: []models.FieldOption{
			{Value: "ankara", Label: "Ankara"},
			{Value: "izmir", Label: "İzmir"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, string(sel), `<option value="izmir" selected>İzmir</option>`)

	block, err := r.RenderField(models.FormField{
		FieldType:   models.FieldTypeHTML,
		Name:        "intro",
		HTMLContent: "<p><strong>Not:</strong> hafta içi dönüyoruz.</p>",
	})
	require.NoError(t, err)
	assert.Contains(t, string(block), "<strong>Not:</strong>")
	assert.NotContains(t, string(block), `name="intro"`)
}

func TestRenderForm_ModesAndScopedCSS(t *testing.T) {
	r := newRenderer(t)
	form := &models.Form{
		Name:             "Geri Arama",
		Code:             "geri-arama",
		SubmitButtonText: "Gönder",
		CustomCSS:        ".formyap-submit { color: red; }",
	}
	fields := []models.FormField{{FieldType: models.FieldTypeText, Name: "name", Label: "Ad"}}

	modal, err := r.RenderForm(form, fields, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(modal), `id="callbackModal"`)
	assert.Contains(t, string(modal), `<style data-form-css="geri-arama">`)
	assert.Contains(t, string(modal), `name="_form_code" value="geri-arama"`)

	inline, err := r.RenderForm(form, fields, Options{Mode: ModeInline, ModalID: "x"})
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(inline), "formyap-modal"))
	assert.Contains(t, string(inline), "Gönder")

	form.CustomCSS = ""
	plain, err := r.RenderForm(form, fields, Options{Mode: ModeInline})
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "data-form-css")
}
