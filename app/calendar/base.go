package calendar

// Base statutory-holiday calendar. Each entry maps a date to its holiday
// description; shiftedWorkdays lists weekend dates that are working days
// under the official schedule. Years missing from the table fall back to the
// plain weekday rule.

var legalHolidays = map[string]string{
	// 2023
	"2023-01-01": "元旦",
	"2023-01-02": "元旦",
	"2023-01-21": "春节",
	"2023-01-22": "春节",
	"2023-01-23": "春节",
	"2023-01-24": "春节",
	"2023-01-25": "春节",
	"2023-01-26": "春节",
	"2023-01-27": "春节",
	"2023-04-05": "清明节",
	"2023-04-29": "劳动节",
	"2023-04-30": "劳动节",
	"2023-05-01": "劳动节",
	"2023-05-02": "劳动节",
	"2023-05-03": "劳动节",
	"2023-06-22": "端午节",
	"2023-06-23": "端午节",
	"2023-06-24": "端午节",
	"2023-09-29": "中秋节",
	"2023-09-30": "国庆节",
	"2023-10-01": "国庆节",
	"2023-10-02": "国庆节",
	"2023-10-03": "国庆节",
	"2023-10-04": "国庆节",
	"2023-10-05": "国庆节",
	"2023-10-06": "国庆节",

	// 2024
	"2024-01-01": "元旦",
	"2024-02-10": "春节",
	"2024-02-11": "春节",
	"2024-02-12": "春节",
	"2024-02-13": "春节",
	"2024-02-14": "春节",
	"2024-02-15": "春节",
	"2024-02-16": "春节",
	"2024-02-17": "春节",
	"2024-04-04": "清明节",
	"2024-04-05": "清明节",
	"2024-04-06": "清明节",
	"2024-05-01": "劳动节",
	"2024-05-02": "劳动节",
	"2024-05-03": "劳动节",
	"2024-05-04": "劳动节",
	"2024-05-05": "劳动节",
	"2024-06-10": "端午节",
	"2024-09-15": "中秋节",
	"2024-09-16": "中秋节",
	"2024-09-17": "中秋节",
	"2024-10-01": "国庆节",
	"2024-10-02": "国庆节",
	"2024-10-03": "国庆节",
	"2024-10-04": "国庆节",
	"2024-10-05": "国庆节",
	"2024-10-06": "国庆节",
	"2024-10-07": "国庆节",

	// 2025
	"2025-01-01": "元旦",
	"2025-01-28": "春节",
	"2025-01-29": "春节",
	"2025-01-30": "春节",
	"2025-01-31": "春节",
	"2025-02-01": "春节",
	"2025-02-02": "春节",
	"2025-02-03": "春节",
	"2025-02-04": "春节",
	"2025-04-04": "清明节",
	"2025-04-05": "清明节",
	"2025-04-06": "清明节",
	"2025-05-01": "劳动节",
	"2025-05-02": "劳动节",
	"2025-05-03": "劳动节",
	"2025-05-04": "劳动节",
	"2025-05-05": "劳动节",
	"2025-05-31": "端午节",
	"2025-06-01": "端午节",
	"2025-06-02": "端午节",
	"2025-10-01": "国庆节",
	"2025-10-02": "国庆节",
	"2025-10-03": "国庆节",
	"2025-10-04": "国庆节",
	"2025-10-05": "国庆节",
	"2025-10-06": "中秋节",
	"2025-10-07": "国庆节",
	"2025-10-08": "国庆节",
}

var shiftedWorkdays = map[string]string{
	// 2023
	"2023-01-28": "春节调休",
	"2023-01-29": "春节调休",
	"2023-04-23": "劳动节调休",
	"2023-05-06": "劳动节调休",
	"2023-06-25": "端午节调休",
	"2023-10-07": "国庆节调休",
	"2023-10-08": "国庆节调休",

	// 2024
	"2024-02-04": "春节调休",
	"2024-02-18": "春节调休",
	"2024-04-07": "清明节调休",
	"2024-04-28": "劳动节调休",
	"2024-05-11": "劳动节调休",
	"2024-09-14": "中秋节调休",
	"2024-09-29": "国庆节调休",
	"2024-10-12": "国庆节调休",

	// 2025
	"2025-01-26": "春节调休",
	"2025-02-08": "春节调休",
	"2025-04-27": "劳动节调休",
	"2025-09-28": "国庆节调休",
	"2025-10-11": "国庆节调休",
}

// LegalHoliday reports whether the base calendar marks the date a statutory
// holiday, and its description.
func LegalHoliday(date string) (string, bool) {
	desc, ok := legalHolidays[date]
	return desc, ok
}

// ShiftedWorkday reports whether the base calendar marks the date a working
// weekend, and its description.
func ShiftedWorkday(date string) (string, bool) {
	desc, ok := shiftedWorkdays[date]
	return desc, ok
}
