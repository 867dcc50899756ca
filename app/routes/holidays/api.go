package holidays

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ShawnMa123/wio-calculator/app/calendar"
	"github.com/ShawnMa123/wio-calculator/app/config"
	"github.com/ShawnMa123/wio-calculator/app/database"
	"github.com/ShawnMa123/wio-calculator/app/models"
)

// HolidayEntry is one row of the merged holiday listing.
type HolidayEntry struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	IsWorkday   bool   `json:"is_workday"`
	Type        string `json:"type"`
}

// GetHolidaysAPI lists a year's holidays: the user's custom overrides merged
// with the base calendar's weekday holidays. A custom entry hides the legal
// one for the same date.
func GetHolidaysAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	if year < 1970 || year > 9999 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}

	custom, err := database.GetCustomHolidaysByYear(config.GetDB(), year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load holidays: " + err.Error()})
	}

	entries := make([]HolidayEntry, 0, len(custom))
	for _, holiday := range custom {
		entries = append(entries, HolidayEntry{
			Date:        holiday.Date,
			Description: holiday.Description,
			IsWorkday:   holiday.IsWorkday,
			Type:        string(models.HolidayCustom),
		})
	}

	// Legal holidays falling on weekdays, unless overridden.
	for month := time.January; month <= time.December; month++ {
		total := calendar.DaysInMonth(year, month)
		for dayNum := 1; dayNum <= total; dayNum++ {
			t := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
			date := t.Format(calendar.DateLayout)

			desc, ok := calendar.LegalHoliday(date)
			if !ok {
				continue
			}
			if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			if _, overridden := custom[date]; overridden {
				continue
			}
			entries = append(entries, HolidayEntry{
				Date:        date,
				Description: desc,
				IsWorkday:   false,
				Type:        string(models.HolidayLegal),
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return c.JSON(entries)
}

// AddHolidayAPI upserts a custom holiday override.
func AddHolidayAPI(c *fiber.Ctx) error {
	var holiday models.CustomHoliday
	if err := c.BodyParser(&holiday); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if _, err := time.Parse(calendar.DateLayout, holiday.Date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	if err := database.UpsertCustomHoliday(config.GetDB(), &holiday); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save holiday: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "holiday": holiday})
}

// DeleteHolidayAPI removes a custom holiday override.
func DeleteHolidayAPI(c *fiber.Ctx) error {
	date := c.Query("date")
	if _, err := time.Parse(calendar.DateLayout, date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	if err := database.DeleteCustomHoliday(config.GetDB(), date); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete holiday: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}
