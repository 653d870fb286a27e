package handlers

import (
	"formyap.link/configs/configslog"
	"formyap.link/middlewares"
	"formyap.link/pkg/flashmessages"
	"formyap.link/pkg/renderer"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HomeHandler struct {
	formService       services.IFormService
	submissionService services.ISubmissionService
}

func NewHomeHandler(formService services.IFormService, submissionService services.ISubmissionService) *HomeHandler {
	return &HomeHandler{formService: formService, submissionService: submissionService}
}

// HomePage özet sayılarla yönetim ana sayfası.
func (h *HomeHandler) HomePage(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	ctx := c.UserContext()

	formCount, err := h.formService.CountForms(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard - CountForms Error", zap.Error(err))
	}
	pendingCount, err := h.submissionService.CountPending(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard - CountPending Error", zap.Error(err))
	}

	renderData := fiber.Map{
		"Title":        "Yönetim Paneli",
		"FormCount":    formCount,
		"PendingCount": pendingCount,
		"Admin":        middlewares.CurrentAdmin(c),
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", renderData)
}
