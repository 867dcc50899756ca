package holidays

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ShawnMa123/wio-calculator/app/routes/auth"
)

func SetupHolidaysRoutes(app *fiber.App) {
	api := app.Group("/api/holidays")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetHolidaysAPI)
	api.Post("/", AddHolidayAPI)
	api.Delete("/", DeleteHolidayAPI)
}
