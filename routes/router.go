package routes

import (
	"formyap.link/configs"
	"formyap.link/pkg/flashmessages"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// Services rotaların ihtiyaç duyduğu servisler. main.go'da bir kez kurulur.
type Services struct {
	Forms       services.IFormService
	Submissions services.ISubmissionService
	Render      services.IRenderService
	AdminUsers  services.IAdminUserService
	CORSOrigins string
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, svc Services) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals())

	registerPublicRoutes(app, svc)
	registerDashboardRoutes(app, svc)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	})

	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals flash mesajları için session store'u Locals'a koyar.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals(flashmessages.SessionStoreLocalsKey, sessionStore)
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	return NotFound(c)
}

// NotFound isteğin kabul ettiği türe göre JSON ya da HTML 404 döner.
func NotFound(c *fiber.Ctx) error {
	switch c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) {
	case fiber.MIMEApplicationJSON:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
	}
}
