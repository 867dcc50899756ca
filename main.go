package main

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/ShawnMa123/wio-calculator/app/config"
	"github.com/ShawnMa123/wio-calculator/app/database"
	"github.com/ShawnMa123/wio-calculator/app/routes/auth"
	"github.com/ShawnMa123/wio-calculator/app/routes/holidays"
	"github.com/ShawnMa123/wio-calculator/app/routes/settings"
	"github.com/ShawnMa123/wio-calculator/app/routes/transfer"
	"github.com/ShawnMa123/wio-calculator/app/routes/wio"
)

// customErrorHandler returns JSON for API requests and a rendered page for
// everything else.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 401:
		return c.Redirect("/auth/login")
	case 404:
		return c.Status(404).Render("error", fiber.Map{
			"Title":        "Page Not Found - WIO Calculator",
			"ErrorCode":    "404",
			"ErrorTitle":   "Page Not Found",
			"ErrorMessage": "The page you are looking for does not exist.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - WIO Calculator",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg := config.Load()

	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Seed the single account on first start
	if err := database.EnsureUser(config.GetDB(), cfg.Username, cfg.Password, cfg.Username); err != nil {
		log.Fatal("Failed to seed user account:", err)
	}

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		if token := c.Cookies(auth.TokenCookie); token != "" {
			if _, err := auth.ValidateJWT(token); err == nil {
				return c.Redirect("/calendar")
			}
		}
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	wio.SetupWIORoutes(app)
	holidays.SetupHolidaysRoutes(app)
	settings.SetupSettingsRoutes(app)
	transfer.SetupTransferRoutes(app)

	log.Printf("WIO Calculator listening on %s", cfg.ListenAddr)
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
