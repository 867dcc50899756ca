package models

// DayStatus defines the possible status values for a tracked day.
type DayStatus string

const (
	StatusWIO    DayStatus = "WIO"
	StatusRemote DayStatus = "remote"
)

// IsValid reports whether s is one of the recognised day statuses.
func (s DayStatus) IsValid() bool {
	return s == StatusWIO || s == StatusRemote
}

// DayType classifies a calendar day.
type DayType string

const (
	DayWorkday DayType = "workday"
	DayWeekend DayType = "weekend"
	DayHoliday DayType = "holiday"
)

// HolidaySource tells where a holiday entry came from.
type HolidaySource string

const (
	HolidayCustom HolidaySource = "custom"
	HolidayLegal  HolidaySource = "legal"
)
