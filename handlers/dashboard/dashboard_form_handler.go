package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/pkg/flashmessages"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/renderer"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const formsListPath = "/dashboard/forms"

// FormHandler form tanımlarının yönetimi (Dashboard).
type FormHandler struct {
	service services.IFormService
}

func NewFormHandler(service services.IFormService) *FormHandler {
	return &FormHandler{service: service}
}

// ListForms formları alan ve gönderim sayılarıyla listeler.
func (h *FormHandler) ListForms(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	renderData := fiber.Map{
		"Title":  "Formlar",
		"Params": params,
	}
	renderer.SetFlashMessages(renderData, flashData)

	result, err := h.service.ListForms(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListForms Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Formlar listelenirken hata oluştu."
		result = queryparams.NewPaginatedResult([]models.Form{}, 0, params)
	}
	renderData["Result"] = result

	return renderer.Render(c, "dashboard/forms/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// ShowCreateForm boş form düzenleme ekranı.
func (h *FormHandler) ShowCreateForm(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	form := &models.Form{IsActive: true}
	fieldsJSON := restoreFormInput(form, "[]", flashmessages.GetFlashFormData(c))
	renderData := fiber.Map{
		"Title":        "Yeni Form",
		"Action":       formsListPath + "/create",
		"Form":         form,
		"FieldsJSON":   fieldsJSON,
		"FieldTypes":   models.ListTypes(),
		"IsCreateForm": true,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/forms/edit", "layouts/dashboard_layout", renderData)
}

func (h *FormHandler) CreateForm(c *fiber.Ctx) error {
	redirectPathOnError := formsListPath + "/create"

	input, fieldsConfig, err := parseFormRequest(c)
	if err != nil {
		rememberFormInput(c)
		return flashBack(c, redirectPathOnError, err.Error())
	}

	form, err := h.service.CreateForm(c.UserContext(), input, fieldsConfig)
	if err != nil {
		configslog.Log.Warn("Dashboard - CreateForm Error", zap.String("name", input.Name), zap.Error(err))
		rememberFormInput(c)
		return flashBack(c, redirectPathOnError, "Form oluşturulamadı: "+err.Error())
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("%q formu oluşturuldu.", form.Name))
	return c.Redirect(formsListPath, fiber.StatusSeeOther)
}

func (h *FormHandler) ShowUpdateForm(c *fiber.Ctx) error {
	formID, ok := paramID(c)
	if !ok {
		return c.Redirect(formsListPath, fiber.StatusSeeOther)
	}

	form, err := h.service.GetFormByID(c.UserContext(), formID)
	if err != nil {
		errMsg := "Form bulunamadı."
		if !errors.Is(err, services.ErrFormNotFound) {
			errMsg = "Form bilgileri alınırken hata oluştu."
			configslog.Log.Error("Dashboard - ShowUpdateForm Error", zap.Uint("id", formID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect(formsListPath, fiber.StatusSeeOther)
	}

	stored, err := json.MarshalIndent(form.FieldsConfig, "", "  ")
	if err != nil || string(stored) == "null" {
		stored = []byte("[]")
	}
	fieldsJSON := restoreFormInput(form, string(stored), flashmessages.GetFlashFormData(c))

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":      "Formu Düzenle",
		"Action":     fmt.Sprintf("%s/update/%d", formsListPath, form.ID),
		"Form":       form,
		"FieldsJSON": fieldsJSON,
		"FieldTypes": models.ListTypes(),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/forms/edit", "layouts/dashboard_layout", renderData)
}

func (h *FormHandler) UpdateForm(c *fiber.Ctx) error {
	formID, ok := paramID(c)
	if !ok {
		return c.Redirect(formsListPath, fiber.StatusSeeOther)
	}
	redirectPathOnError := fmt.Sprintf("%s/update/%d", formsListPath, formID)

	input, fieldsConfig, err := parseFormRequest(c)
	if err != nil {
		rememberFormInput(c)
		return flashBack(c, redirectPathOnError, err.Error())
	}

	form, err := h.service.UpdateForm(c.UserContext(), formID, input, fieldsConfig)
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Form bulunamadı.")
			return c.Redirect(formsListPath, fiber.StatusSeeOther)
		}
		configslog.Log.Warn("Dashboard - UpdateForm Error", zap.Uint("id", formID), zap.Error(err))
		rememberFormInput(c)
		return flashBack(c, redirectPathOnError, "Güncelleme hatası: "+err.Error())
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("%q formu güncellendi.", form.Name))
	return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
}

// DeleteForm tek bir formu siler; gönderimler formsuz olarak kalır.
func (h *FormHandler) DeleteForm(c *fiber.Ctx) error {
	formID, ok := paramID(c)
	if !ok {
		return c.Redirect(formsListPath, fiber.StatusSeeOther)
	}
	return h.deleteForms(c, []uint{formID})
}

func (h *FormHandler) BulkDeleteForms(c *fiber.Ctx) error {
	ids := formIDs(c)
	if len(ids) == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Silinecek form seçilmedi.")
		return c.Redirect(formsListPath, fiber.StatusSeeOther)
	}
	return h.deleteForms(c, ids)
}

func (h *FormHandler) deleteForms(c *fiber.Ctx, ids []uint) error {
	deleted, err := h.service.DeleteForms(c.UserContext(), ids)
	if err != nil {
		if !errors.Is(err, services.ErrFormNotFound) {
			configslog.Log.Error("Dashboard - DeleteForms Error", zap.Uints("ids", ids), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Silme hatası: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("%d form silindi.", deleted))
	}
	return c.Redirect(formsListPath, fiber.StatusSeeOther)
}

// parseFormRequest form özniteliklerini ve JSON olarak gönderilen fields_config'i ayrıştırır.
func parseFormRequest(c *fiber.Ctx) (services.FormInput, []models.FieldConfig, error) {
	var input services.FormInput
	if err := c.BodyParser(&input); err != nil {
		return input, nil, errors.New("Geçersiz form verisi.")
	}
	input.IsActive = isChecked(c, "is_active")

	raw := strings.TrimSpace(c.FormValue("fields_config"))
	if raw == "" {
		return input, []models.FieldConfig{}, nil
	}
	var fieldsConfig []models.FieldConfig
	if err := json.Unmarshal([]byte(raw), &fieldsConfig); err != nil {
		return input, nil, fmt.Errorf("Alan tanımları geçerli bir JSON listesi değil: %v", err)
	}
	return input, fieldsConfig, nil
}

func flashBack(c *fiber.Ctx, path, message string) error {
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, message)
	return c.Redirect(path, fiber.StatusSeeOther)
}

// rememberFormInput hatalı kayıttan sonra düzenleme ekranının yeniden doldurulması için
// gönderilen değerleri flash'a yazar.
func rememberFormInput(c *fiber.Ctx) {
	data := map[string]string{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		data[string(k)] = string(v)
	})
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for k, vs := range mf.Value {
			if len(vs) > 0 {
				data[k] = vs[0]
			}
		}
	}
	_ = flashmessages.SetFlashFormData(c, data)
}

// restoreFormInput flash'taki değerleri forma uygular ve gösterilecek alan JSON'unu döndürür.
func restoreFormInput(form *models.Form, fieldsJSON string, data map[string]interface{}) string {
	if len(data) == 0 {
		return fieldsJSON
	}
	get := func(key string) string {
		v, _ := data[key].(string)
		return v
	}
	form.Name = get("name")
	form.Code = get("code")
	form.Description = get("description")
	form.SuccessMessage = get("success_message")
	form.ErrorMessage = get("error_message")
	form.SubmitButtonText = get("submit_button_text")
	form.NotifyEmail = get("notify_email")
	form.CustomCSS = get("custom_css")
	form.CustomJS = get("custom_js")
	form.WrapperClass = get("wrapper_class")
	form.FormClass = get("form_class")
	v := get("is_active")
	form.IsActive = v == "true" || v == "on" || v == "1"
	if raw := get("fields_config"); raw != "" {
		return raw
	}
	return fieldsJSON
}
