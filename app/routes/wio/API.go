package wio

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ShawnMa123/wio-calculator/app/calendar"
	"github.com/ShawnMa123/wio-calculator/app/config"
	"github.com/ShawnMa123/wio-calculator/app/database"
	"github.com/ShawnMa123/wio-calculator/app/models"
)

// GetMonthDataAPI returns the generated calendar and statistics for one
// month. Defaults to the current month.
func GetMonthDataAPI(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	if year < 1970 || year > 9999 || month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year or month"})
	}

	db := config.GetDB()

	statuses, err := database.GetDailyStatusByMonth(db, year, time.Month(month))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load status records: " + err.Error()})
	}

	overrides, err := database.GetCustomHolidaysByYear(db, year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load holidays: " + err.Error()})
	}

	days := calendar.MonthDays(year, time.Month(month), statuses, overrides)
	stats := calendar.ComputeStats(days)
	target := database.GetTargetPercentage(db)

	return c.JSON(fiber.Map{
		"calendar": days,
		"stats": fiber.Map{
			"total_workdays":     stats.TotalWorkdays,
			"wio_days":           stats.WIODays,
			"wio_hours":          stats.WIOHours,
			"wio_percentage":     stats.WIOPercentage,
			"remaining_workdays": stats.RemainingWorkdays,
			"wio_target":         target,
			"days_needed":        calendar.DaysNeeded(target, stats),
		},
	})
}

// UpdateDayStatusAPI upserts the status record for one day.
func UpdateDayStatusAPI(c *fiber.Ctx) error {
	type DayStatusRequest struct {
		Date      string   `json:"date"`
		Status    string   `json:"status"`
		WorkHours *float64 `json:"work_hours"`
	}

	var req DayStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if _, err := time.Parse(calendar.DateLayout, req.Date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	status := models.DayStatus(req.Status)
	if !status.IsValid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status, expected WIO or remote"})
	}

	hours := models.DefaultWorkHours
	if req.WorkHours != nil {
		hours = *req.WorkHours
		if hours <= 0 || hours > 1 {
			return c.Status(400).JSON(fiber.Map{"error": "work_hours must be in (0, 1]"})
		}
	}

	record := &models.DailyStatus{
		Date:      req.Date,
		Status:    status,
		WorkHours: hours,
	}
	if err := database.UpsertDailyStatus(config.GetDB(), record); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save status: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "record": record})
}

// DeleteDayStatusAPI clears the record for one day, reverting it to the
// computed default.
func DeleteDayStatusAPI(c *fiber.Ctx) error {
	date := c.Query("date")
	if _, err := time.Parse(calendar.DateLayout, date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	if err := database.DeleteDailyStatus(config.GetDB(), date); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete status: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}
