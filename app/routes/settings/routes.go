package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ShawnMa123/wio-calculator/app/routes/auth"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSettingsAPI)
	api.Post("/", UpdateSettingsAPI)
}
