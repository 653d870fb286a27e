package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"formyap.link/configs/configslog"
	"formyap.link/pkg/filestorage"
	"formyap.link/pkg/renderer"
	"formyap.link/pkg/validation"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	formCodeKey = "_form_code"

	validationFailedMessage = "Lütfen formdaki hataları düzeltin."
	genericErrorMessage     = "Bir hata oluştu. Lütfen daha sonra tekrar deneyin."
)

// FormHandler public form sayfası ve gönderim uç noktası.
type FormHandler struct {
	renderService     services.IRenderService
	submissionService services.ISubmissionService
}

func NewFormHandler(renderService services.IRenderService, submissionService services.ISubmissionService) *FormHandler {
	return &FormHandler{renderService: renderService, submissionService: submissionService}
}

// ShowForm aktif formu ?mode=inline|modal ve ?modal_id= ile render eder.
func (h *FormHandler) ShowForm(c *fiber.Ctx) error {
	code := c.Params("code")
	rendered, err := h.renderService.RenderForm(c.UserContext(), code, services.RenderOptions{
		Mode:    c.Query("mode"),
		ModalID: c.Query("modal_id"),
	})
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			return fiber.ErrNotFound
		}
		configslog.Log.Error("Public - ShowForm Error", zap.String("code", code), zap.Error(err))
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, "public/form", "layouts/public_layout", fiber.Map{
		"Title": rendered.Name,
		"Form":  rendered,
	})
}

// Submit gönderimi alır ve JSON ile yanıtlar.
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	values, fileHeaders := readSubmission(c)

	files, closeFiles, err := openUploads(fileHeaders)
	defer closeFiles()
	if err != nil {
		configslog.Log.Warn("Public - Submit: dosya açılamadı", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Yüklenen dosya okunamadı."})
	}

	formCode := ""
	if v := values[formCodeKey]; len(v) > 0 {
		formCode = strings.TrimSpace(v[0])
	}
	delete(values, formCodeKey)

	result, err := h.submissionService.Submit(c.UserContext(), services.SubmitInput{
		FormCode:  formCode,
		Values:    values,
		Files:     files,
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	})
	if err != nil {
		var verrs *validation.Errors
		if errors.As(err, &verrs) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"message": validationFailedMessage,
				"errors":  verrs,
			})
		}
		message := genericErrorMessage
		if result != nil && result.Message != "" {
			message = result.Message
		}
		configslog.Log.Error("Public - Submit Error", zap.String("form", formCode), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": message})
	}

	return c.JSON(fiber.Map{"success": true, "message": result.Message})
}

// readSubmission multipart ya da urlencoded gövdeyi alan adına göre gruplar.
// "ad[]" biçimindeki anahtarlar "ad" olarak birleştirilir.
func readSubmission(c *fiber.Ctx) (map[string][]string, map[string][]*multipart.FileHeader) {
	values := map[string][]string{}
	fileHeaders := map[string][]*multipart.FileHeader{}

	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for key, vs := range mf.Value {
			name := fieldKey(key)
			values[name] = append(values[name], vs...)
		}
		for key, fhs := range mf.File {
			name := fieldKey(key)
			fileHeaders[name] = append(fileHeaders[name], fhs...)
		}
		return values, fileHeaders
	}

	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		name := fieldKey(string(k))
		values[name] = append(values[name], string(v))
	})
	return values, fileHeaders
}

func fieldKey(key string) string {
	return strings.TrimSuffix(key, "[]")
}

func openUploads(fileHeaders map[string][]*multipart.FileHeader) (map[string][]filestorage.Upload, func(), error) {
	var opened []io.Closer
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	uploads := make(map[string][]filestorage.Upload, len(fileHeaders))
	for name, fhs := range fileHeaders {
		for _, fh := range fhs {
			f, err := fh.Open()
			if err != nil {
				return nil, closeAll, err
			}
			opened = append(opened, f)
			uploads[name] = append(uploads[name], filestorage.Upload{
				FileName:    fh.Filename,
				ContentType: fh.Header.Get(fiber.HeaderContentType),
				Size:        fh.Size,
				Reader:      f,
			})
		}
	}
	return uploads, closeAll, nil
}
