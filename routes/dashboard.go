package routes

import (
	handlers "formyap.link/handlers/dashboard"
	"formyap.link/middlewares"
	"formyap.link/models"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki rotaları ve middleware'leri tanımlar.
// Tüm rotalar Basic Auth ister; form ve gönderim grupları ayrıca yetki kontrolü yapar.
func registerDashboardRoutes(app *fiber.App, svc Services) {
	homeHandler := handlers.NewHomeHandler(svc.Forms, svc.Submissions)
	formHandler := handlers.NewFormHandler(svc.Forms)
	submissionHandler := handlers.NewSubmissionHandler(svc.Submissions, svc.Forms)

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AdminAuth(svc.AdminUsers),
		middlewares.LoadAdminUser(svc.AdminUsers),
	)

	dashboardGroup.Get("/home", homeHandler.HomePage)

	// --- Form Yönetimi ---
	formsGroup := dashboardGroup.Group("/forms", middlewares.RequirePermission(models.PermissionManageForms))
	formsGroup.Get("/", formHandler.ListForms)
	formsGroup.Get("/create", formHandler.ShowCreateForm)
	formsGroup.Post("/create", formHandler.CreateForm)
	formsGroup.Get("/update/:id", formHandler.ShowUpdateForm)
	formsGroup.Post("/update/:id", formHandler.UpdateForm)
	formsGroup.Post("/delete/:id", formHandler.DeleteForm)
	formsGroup.Delete("/delete/:id", formHandler.DeleteForm)
	formsGroup.Post("/bulk-delete", formHandler.BulkDeleteForms)

	// --- Gönderimler ---
	submissionsGroup := dashboardGroup.Group("/submissions", middlewares.RequirePermission(models.PermissionManageSubmissions))
	submissionsGroup.Get("/", submissionHandler.ListSubmissions)
	submissionsGroup.Post("/filter", submissionHandler.FilterByForm)
	submissionsGroup.Post("/bulk-delete", submissionHandler.BulkDelete)
	submissionsGroup.Get("/:id", submissionHandler.ShowSubmission)
	submissionsGroup.Post("/:id/contacted", submissionHandler.MarkContacted)
	submissionsGroup.Post("/:id/completed", submissionHandler.MarkCompleted)
	submissionsGroup.Post("/:id/cancelled", submissionHandler.MarkCancelled)
	submissionsGroup.Post("/:id/notes", submissionHandler.UpdateNotes)
	submissionsGroup.Get("/:id/files/:fileID", submissionHandler.DownloadFile)
	submissionsGroup.Post("/delete/:id", submissionHandler.DeleteSubmission)
	submissionsGroup.Delete("/delete/:id", submissionHandler.DeleteSubmission)
}
