package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ShawnMa123/wio-calculator/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies(TokenCookie); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - WIO Calculator",
	}, "")
}

// AuthMiddleware validates the session token and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Token comes from the cookie or the Authorization header
	tokenString := c.Cookies(TokenCookie)
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	user := &models.User{
		ID:          claims.UserID,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
		IsActive:    true,
	}

	c.Locals("user_id", user.ID)
	c.Locals("username", user.Username)
	c.Locals("user", user)

	return c.Next()
}
