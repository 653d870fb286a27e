package routes

import (
	handlers "formyap.link/handlers/public"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// registerPublicRoutes formun gösterildiği sayfa ve gönderim uç noktası.
// Formlar başka sitelere gömülebildiği için submit CORS'a açıktır.
func registerPublicRoutes(app *fiber.App, svc Services) {
	formHandler := handlers.NewFormHandler(svc.Render, svc.Submissions)

	origins := svc.CORSOrigins
	if origins == "" {
		origins = "*"
	}

	formsGroup := app.Group("/forms")
	formsGroup.Use("/submit", cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "POST,OPTIONS",
	}))
	formsGroup.Post("/submit", formHandler.Submit)
	formsGroup.Get("/:code", formHandler.ShowForm)
}
