package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"formyap.link/configs/configslog"
	"formyap.link/models"
	"formyap.link/pkg/filestorage"
	"formyap.link/pkg/flashmessages"
	"formyap.link/pkg/queryparams"
	"formyap.link/pkg/renderer"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const submissionsListPath = "/dashboard/submissions"

// SubmissionHandler gelen form gönderimlerinin yönetimi.
type SubmissionHandler struct {
	service     services.ISubmissionService
	formService services.IFormService
}

func NewSubmissionHandler(service services.ISubmissionService, formService services.IFormService) *SubmissionHandler {
	return &SubmissionHandler{service: service, formService: formService}
}

// ListSubmissions gönderimleri en yeniden eskiye listeler. ?form= ile tek forma daraltılır.
func (h *SubmissionHandler) ListSubmissions(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	var formID *uint
	if params.FormID > 0 {
		id := params.FormID
		formID = &id
	}

	renderData := fiber.Map{
		"Title":    "Gönderimler",
		"Params":   params,
		"Statuses": models.SubmissionStatuses(),
	}
	renderer.SetFlashMessages(renderData, flashData)

	result, err := h.service.ListSubmissions(c.UserContext(), formID, params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListSubmissions Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Gönderimler listelenirken hata oluştu."
		result = queryparams.NewPaginatedResult([]models.Submission{}, 0, params)
	}
	renderData["Result"] = result

	options, err := h.formService.ListFormOptions(c.UserContext())
	if err != nil {
		configslog.Log.Warn("Dashboard - ListFormOptions Error", zap.Error(err))
	}
	renderData["FormOptions"] = options

	return renderer.Render(c, "dashboard/submissions/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// FilterByForm seçilen formu sorgu parametresine çevirip listeye yönlendirir.
func (h *SubmissionHandler) FilterByForm(c *fiber.Ctx) error {
	formID := c.FormValue("form")
	if formID == "" || formID == "0" {
		return c.Redirect(submissionsListPath, fiber.StatusSeeOther)
	}
	return c.Redirect(submissionsListPath+"?form="+formID, fiber.StatusSeeOther)
}

func (h *SubmissionHandler) ShowSubmission(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(submissionsListPath, fiber.StatusSeeOther)
	}

	submission, err := h.service.GetSubmission(c.UserContext(), id)
	if err != nil {
		return h.redirectWithLookupError(c, id, err)
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":      fmt.Sprintf("Gönderim #%d", submission.ID),
		"Submission": submission,
		"Rows":       h.service.GetFormDataDisplay(submission),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/submissions/show", "layouts/dashboard_layout", renderData)
}

func (h *SubmissionHandler) MarkContacted(c *fiber.Ctx) error {
	return h.changeStatus(c, h.service.MarkAsContacted, "Gönderim iletişime geçildi olarak işaretlendi.")
}

func (h *SubmissionHandler) MarkCompleted(c *fiber.Ctx) error {
	return h.changeStatus(c, h.service.MarkAsCompleted, "Gönderim tamamlandı olarak işaretlendi.")
}

func (h *SubmissionHandler) MarkCancelled(c *fiber.Ctx) error {
	return h.changeStatus(c, h.service.MarkAsCancelled, "Gönderim iptal edildi olarak işaretlendi.")
}

func (h *SubmissionHandler) changeStatus(c *fiber.Ctx, action func(ctx context.Context, id uint) error, successMsg string) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(submissionsListPath, fiber.StatusSeeOther)
	}
	if err := action(c.UserContext(), id); err != nil {
		return h.redirectWithLookupError(c, id, err)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, successMsg)
	return c.Redirect(submissionPath(id), fiber.StatusSeeOther)
}

// UpdateNotes yönetici notunu kaydeder.
func (h *SubmissionHandler) UpdateNotes(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(submissionsListPath, fiber.StatusSeeOther)
	}
	if err := h.service.UpdateAdminNotes(c.UserContext(), id, c.FormValue("admin_notes")); err != nil {
		return h.redirectWithLookupError(c, id, err)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Notlar kaydedildi.")
	return c.Redirect(submissionPath(id), fiber.StatusSeeOther)
}

func (h *SubmissionHandler) DeleteSubmission(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(submissionsListPath, fiber.StatusSeeOther)
	}
	return h.deleteSubmissions(c, []uint{id})
}

func (h *SubmissionHandler) BulkDelete(c *fiber.Ctx) error {
	ids := formIDs(c)
	if len(ids) == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Silinecek gönderim seçilmedi.")
		return c.Redirect(submissionsListPath, fiber.StatusSeeOther)
	}
	return h.deleteSubmissions(c, ids)
}

func (h *SubmissionHandler) deleteSubmissions(c *fiber.Ctx, ids []uint) error {
	deleted, err := h.service.DeleteSubmissions(c.UserContext(), ids)
	if err != nil {
		if !errors.Is(err, services.ErrSubmissionNotFound) {
			configslog.Log.Error("Dashboard - DeleteSubmissions Error", zap.Uints("ids", ids), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Silme hatası: "+err.Error())
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("%d gönderim silindi.", deleted))
	}
	return c.Redirect(submissionsListPath, fiber.StatusSeeOther)
}

// DownloadFile ek dosya için süreli bağlantı üretip oraya yönlendirir.
func (h *SubmissionHandler) DownloadFile(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Redirect(submissionsListPath, fiber.StatusSeeOther)
	}
	fileID, err := c.ParamsInt("fileID")
	if err != nil || fileID <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz dosya.")
		return c.Redirect(submissionPath(id), fiber.StatusSeeOther)
	}

	u, err := h.service.FileDownloadURL(c.UserContext(), id, uint(fileID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubmissionFileNotFound):
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Dosya bulunamadı.")
		case errors.Is(err, filestorage.ErrStorageDisabled):
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Dosya deposu yapılandırılmamış.")
		default:
			return h.redirectWithLookupError(c, id, err)
		}
		return c.Redirect(submissionPath(id), fiber.StatusSeeOther)
	}
	return c.Redirect(u.String(), fiber.StatusFound)
}

func (h *SubmissionHandler) redirectWithLookupError(c *fiber.Ctx, id uint, err error) error {
	if errors.Is(err, services.ErrSubmissionNotFound) {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Gönderim bulunamadı.")
		return c.Redirect(submissionsListPath, fiber.StatusSeeOther)
	}
	configslog.Log.Error("Dashboard - Submission Error", zap.Uint("id", id), zap.Error(err))
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "İşlem sırasında hata oluştu.")
	return c.Redirect(submissionPath(id), fiber.StatusSeeOther)
}

func submissionPath(id uint) string {
	return fmt.Sprintf("%s/%d", submissionsListPath, id)
}
