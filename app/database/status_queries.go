package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ShawnMa123/wio-calculator/app/models"
)

// UpsertDailyStatus saves the status record for a date, replacing any
// previous record for the same date.
func UpsertDailyStatus(db *sql.DB, status *models.DailyStatus) error {
	if status.WorkHours == 0 {
		status.WorkHours = models.DefaultWorkHours
	}

	query := `INSERT INTO daily_status (date, status, work_hours, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)
			  ON CONFLICT (date)
			  DO UPDATE SET status = excluded.status, work_hours = excluded.work_hours, updated_at = excluded.updated_at`

	now := time.Now().UTC()
	_, err := db.Exec(query, status.Date, status.Status, status.WorkHours, now, now)
	return err
}

// GetDailyStatus returns the record for one date, or sql.ErrNoRows.
func GetDailyStatus(db *sql.DB, date string) (*models.DailyStatus, error) {
	record := &models.DailyStatus{}
	query := `SELECT date, status, work_hours, created_at, updated_at FROM daily_status WHERE date = ?`

	err := db.QueryRow(query, date).Scan(
		&record.Date, &record.Status, &record.WorkHours, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetDailyStatusByMonth returns all records whose date falls in year/month,
// keyed by date string.
func GetDailyStatusByMonth(db *sql.DB, year int, month time.Month) (map[string]*models.DailyStatus, error) {
	query := `SELECT date, status, work_hours, created_at, updated_at
			  FROM daily_status WHERE date LIKE ? ORDER BY date`

	rows, err := db.Query(query, fmt.Sprintf("%04d-%02d-%%", year, month))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[string]*models.DailyStatus)
	for rows.Next() {
		record := &models.DailyStatus{}
		if err := rows.Scan(&record.Date, &record.Status, &record.WorkHours, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, err
		}
		records[record.Date] = record
	}
	return records, rows.Err()
}

// GetAllDailyStatus returns every status record ordered by date.
func GetAllDailyStatus(db *sql.DB) ([]*models.DailyStatus, error) {
	rows, err := db.Query(`SELECT date, status, work_hours, created_at, updated_at FROM daily_status ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.DailyStatus
	for rows.Next() {
		record := &models.DailyStatus{}
		if err := rows.Scan(&record.Date, &record.Status, &record.WorkHours, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// DeleteDailyStatus removes the record for a date. Deleting a date with no
// record is not an error.
func DeleteDailyStatus(db *sql.DB, date string) error {
	_, err := db.Exec(`DELETE FROM daily_status WHERE date = ?`, date)
	return err
}
