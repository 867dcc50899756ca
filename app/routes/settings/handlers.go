package settings

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ShawnMa123/wio-calculator/app/config"
	"github.com/ShawnMa123/wio-calculator/app/database"
	"github.com/ShawnMa123/wio-calculator/app/models"
)

// GetSettingsAPI returns every setting as a flat key/value map.
func GetSettingsAPI(c *fiber.Ctx) error {
	settings, err := database.GetAllSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings: " + err.Error()})
	}
	return c.JSON(settings)
}

// UpdateSettingsAPI upserts every pair in the request body. Values are
// stored as strings; target_percentage must parse as a number in [0, 100].
func UpdateSettingsAPI(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(body) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No settings provided"})
	}

	db := config.GetDB()
	for key, raw := range body {
		value := stringify(raw)

		if key == models.SettingTargetPercentage {
			target, err := strconv.ParseFloat(value, 64)
			if err != nil || target < 0 || target > 100 {
				return c.Status(400).JSON(fiber.Map{"error": "target_percentage must be a number between 0 and 100"})
			}
		}

		if err := database.UpsertSetting(db, key, value); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save setting " + key + ": " + err.Error()})
		}
	}

	return c.JSON(fiber.Map{"success": true})
}

func stringify(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
