package wio

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ShawnMa123/wio-calculator/app/models"
	"github.com/ShawnMa123/wio-calculator/app/routes/auth"
)

func SetupWIORoutes(app *fiber.App) {
	app.Get("/calendar", auth.AuthMiddleware, CalendarPageHandler)

	api := app.Group("/api")
	api.Use(auth.AuthMiddleware)

	api.Get("/month_data", GetMonthDataAPI)
	api.Post("/day_status", UpdateDayStatusAPI)
	api.Delete("/day_status", DeleteDayStatusAPI)
}

func CalendarPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("index", fiber.Map{
		"Title":       "WIO Calculator",
		"CurrentPage": "calendar",
		"user":        user,
		"Username":    user.Username,
	})
}
