package database

import (
	"database/sql"
	"fmt"

	"github.com/ShawnMa123/wio-calculator/app/models"
)

// UpsertCustomHoliday saves a holiday override, replacing any previous
// override for the same date.
func UpsertCustomHoliday(db *sql.DB, holiday *models.CustomHoliday) error {
	query := `INSERT INTO custom_holidays (date, description, is_workday)
			  VALUES (?, ?, ?)
			  ON CONFLICT (date)
			  DO UPDATE SET description = excluded.description, is_workday = excluded.is_workday`

	_, err := db.Exec(query, holiday.Date, holiday.Description, holiday.IsWorkday)
	return err
}

// GetCustomHoliday returns the override for one date, or sql.ErrNoRows.
func GetCustomHoliday(db *sql.DB, date string) (*models.CustomHoliday, error) {
	holiday := &models.CustomHoliday{}
	query := `SELECT date, description, is_workday FROM custom_holidays WHERE date = ?`

	err := db.QueryRow(query, date).Scan(&holiday.Date, &holiday.Description, &holiday.IsWorkday)
	if err != nil {
		return nil, err
	}
	return holiday, nil
}

// GetCustomHolidaysByYear returns all overrides for a year, keyed by date.
func GetCustomHolidaysByYear(db *sql.DB, year int) (map[string]*models.CustomHoliday, error) {
	query := `SELECT date, description, is_workday FROM custom_holidays WHERE date LIKE ? ORDER BY date`

	rows, err := db.Query(query, fmt.Sprintf("%04d-%%", year))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make(map[string]*models.CustomHoliday)
	for rows.Next() {
		holiday := &models.CustomHoliday{}
		if err := rows.Scan(&holiday.Date, &holiday.Description, &holiday.IsWorkday); err != nil {
			return nil, err
		}
		holidays[holiday.Date] = holiday
	}
	return holidays, rows.Err()
}

// GetAllCustomHolidays returns every override ordered by date.
func GetAllCustomHolidays(db *sql.DB) ([]*models.CustomHoliday, error) {
	rows, err := db.Query(`SELECT date, description, is_workday FROM custom_holidays ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []*models.CustomHoliday
	for rows.Next() {
		holiday := &models.CustomHoliday{}
		if err := rows.Scan(&holiday.Date, &holiday.Description, &holiday.IsWorkday); err != nil {
			return nil, err
		}
		holidays = append(holidays, holiday)
	}
	return holidays, rows.Err()
}

// DeleteCustomHoliday removes the override for a date.
func DeleteCustomHoliday(db *sql.DB, date string) error {
	_, err := db.Exec(`DELETE FROM custom_holidays WHERE date = ?`, date)
	return err
}
