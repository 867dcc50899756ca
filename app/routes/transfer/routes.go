package transfer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ShawnMa123/wio-calculator/app/routes/auth"
)

func SetupTransferRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Use(auth.AuthMiddleware)

	api.Get("/export", ExportAPI)
	api.Post("/import", ImportAPI)
}
