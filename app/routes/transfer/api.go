package transfer

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ShawnMa123/wio-calculator/app/calendar"
	"github.com/ShawnMa123/wio-calculator/app/config"
	"github.com/ShawnMa123/wio-calculator/app/database"
)

// ExportAPI streams the full database snapshot as a JSON download.
func ExportAPI(c *fiber.Ctx) error {
	snapshot, err := database.ExportSnapshot(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export data: " + err.Error()})
	}

	filename := fmt.Sprintf("wio-export-%s.json", snapshot.ExportedAt.Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(snapshot)
}

// ImportAPI restores a snapshot. mode=replace wipes existing records first;
// the default merges the snapshot over them.
func ImportAPI(c *fiber.Ctx) error {
	var snapshot database.Snapshot
	if err := c.BodyParser(&snapshot); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid snapshot body"})
	}

	if snapshot.Version != database.SnapshotVersion {
		return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("Unsupported snapshot version %d", snapshot.Version)})
	}

	for _, record := range snapshot.DailyStatus {
		if _, err := time.Parse(calendar.DateLayout, record.Date); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date in daily_status: " + record.Date})
		}
		if !record.Status.IsValid() {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid status for " + record.Date})
		}
	}
	for _, holiday := range snapshot.CustomHolidays {
		if _, err := time.Parse(calendar.DateLayout, holiday.Date); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date in custom_holidays: " + holiday.Date})
		}
	}

	replace := c.Query("mode") == "replace"
	if err := database.ImportSnapshot(config.GetDB(), &snapshot, replace); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import data: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"daily_status":    len(snapshot.DailyStatus),
		"custom_holidays": len(snapshot.CustomHolidays),
		"settings":        len(snapshot.Settings),
	})
}
