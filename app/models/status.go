package models

import "time"

// DailyStatus is the user's record for a single tracked day. WorkHours is the
// fraction of the day spent in the office; days saved without explicit hours
// get the full day (1.0).
type DailyStatus struct {
	Date      string    `json:"date"`
	Status    DayStatus `json:"status"`
	WorkHours float64   `json:"work_hours"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// DefaultWorkHours is used when a day is saved without explicit hours.
const DefaultWorkHours = 1.0

// CustomHoliday overrides the base calendar for one date. IsWorkday true
// turns the date into a working day (shifted workday), false marks it a
// holiday.
type CustomHoliday struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	IsWorkday   bool   `json:"is_workday"`
}

// Setting is a single key/value configuration row. The only well-known key
// is "target_percentage".
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SettingTargetPercentage is the settings key holding the monthly WIO target.
const SettingTargetPercentage = "target_percentage"

// DefaultTargetPercentage seeds the settings table on first run.
const DefaultTargetPercentage = "40"
