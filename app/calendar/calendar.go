// Package calendar classifies days and computes monthly work-in-office
// statistics. It is pure: persisted state comes in as maps keyed by
// YYYY-MM-DD date strings.
package calendar

import (
	"math"
	"time"

	"github.com/ShawnMa123/wio-calculator/app/models"
)

// DateLayout is the canonical date key format used across the database and
// the API.
const DateLayout = "2006-01-02"

// Day is one entry of a generated month calendar. Weekday follows the
// Monday=0..Sunday=6 convention the web UI expects.
type Day struct {
	Date      string  `json:"date"`
	Day       int     `json:"day"`
	Weekday   int     `json:"weekday"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	WorkHours float64 `json:"work_hours"`
}

// Stats aggregates one month of records.
type Stats struct {
	TotalWorkdays     int     `json:"total_workdays"`
	WIODays           int     `json:"wio_days"`
	WIOHours          float64 `json:"wio_hours"`
	WIOPercentage     float64 `json:"wio_percentage"`
	RemainingWorkdays int     `json:"remaining_workdays"`
}

// IsWorkday classifies one date. A custom override always wins; otherwise
// the base calendar decides; otherwise Saturday and Sunday are off.
func IsWorkday(t time.Time, overrides map[string]*models.CustomHoliday) bool {
	date := t.Format(DateLayout)

	if override, ok := overrides[date]; ok {
		return override.IsWorkday
	}
	if _, ok := LegalHoliday(date); ok {
		return false
	}
	if _, ok := ShiftedWorkday(date); ok {
		return true
	}
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// DaysInMonth returns the number of days in year/month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthDays generates the calendar for year/month. Workdays without a
// persisted status default to WIO with full-day hours; non-workdays without
// one carry their day type as status.
func MonthDays(year int, month time.Month, statuses map[string]*models.DailyStatus, overrides map[string]*models.CustomHoliday) []Day {
	total := DaysInMonth(year, month)
	days := make([]Day, 0, total)

	for dayNum := 1; dayNum <= total; dayNum++ {
		t := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC)
		date := t.Format(DateLayout)

		dayType := classify(t, overrides)

		status := string(dayType)
		hours := 0.0
		if dayType == models.DayWorkday {
			status = string(models.StatusWIO)
			hours = models.DefaultWorkHours
		}
		if record, ok := statuses[date]; ok {
			status = string(record.Status)
			hours = record.WorkHours
		}

		days = append(days, Day{
			Date:      date,
			Day:       dayNum,
			Weekday:   mondayIndexed(t.Weekday()),
			Type:      string(dayType),
			Status:    status,
			WorkHours: hours,
		})
	}
	return days
}

func classify(t time.Time, overrides map[string]*models.CustomHoliday) models.DayType {
	if IsWorkday(t, overrides) {
		return models.DayWorkday
	}
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		// An overridden weekend (is_workday=false with a description)
		// still reads as a holiday, not a plain weekend.
		date := t.Format(DateLayout)
		if _, ok := overrides[date]; ok {
			return models.DayHoliday
		}
		if _, ok := LegalHoliday(date); ok {
			return models.DayHoliday
		}
		return models.DayWeekend
	}
	return models.DayHoliday
}

// ComputeStats folds a generated month into aggregate figures. Only workdays
// participate; WIO hours accumulate the per-day fraction.
func ComputeStats(days []Day) Stats {
	stats := Stats{}
	for _, day := range days {
		if day.Type != string(models.DayWorkday) {
			continue
		}
		stats.TotalWorkdays++
		if day.Status == string(models.StatusWIO) {
			stats.WIODays++
			stats.WIOHours += day.WorkHours
		}
	}

	if stats.TotalWorkdays > 0 {
		stats.WIOPercentage = round1(stats.WIOHours / float64(stats.TotalWorkdays) * 100)
	}
	stats.WIOHours = round1(stats.WIOHours)
	stats.RemainingWorkdays = stats.TotalWorkdays - stats.WIODays
	return stats
}

// DaysNeeded returns how many more full in-office days are required to reach
// the target percentage for the month, never negative.
func DaysNeeded(target float64, stats Stats) int {
	needed := target/100*float64(stats.TotalWorkdays) - stats.WIOHours
	if needed <= 0 {
		return 0
	}
	return int(math.Ceil(needed))
}

func mondayIndexed(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
