package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ShawnMa123/wio-calculator/app/models"
)

// SnapshotVersion identifies the export format. Bump when the shape changes.
const SnapshotVersion = 1

// Snapshot is the full portable state of the tracker: every status record,
// holiday override and setting. User accounts are not part of a snapshot.
type Snapshot struct {
	Version        int                     `json:"version"`
	ID             string                  `json:"id"`
	ExportedAt     time.Time               `json:"exported_at"`
	DailyStatus    []*models.DailyStatus   `json:"daily_status"`
	CustomHolidays []*models.CustomHoliday `json:"custom_holidays"`
	Settings       map[string]string       `json:"settings"`
}

// ExportSnapshot collects the whole database into a Snapshot.
func ExportSnapshot(db *sql.DB) (*Snapshot, error) {
	statuses, err := GetAllDailyStatus(db)
	if err != nil {
		return nil, err
	}
	holidays, err := GetAllCustomHolidays(db)
	if err != nil {
		return nil, err
	}
	settings, err := GetAllSettings(db)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Version:        SnapshotVersion,
		ID:             uuid.New().String(),
		ExportedAt:     time.Now().UTC(),
		DailyStatus:    statuses,
		CustomHolidays: holidays,
		Settings:       settings,
	}, nil
}

// ImportSnapshot restores a snapshot inside a single transaction. With
// replace=true the existing status, holiday and settings rows are wiped
// first; otherwise snapshot rows are merged over existing ones date by date.
func ImportSnapshot(db *sql.DB, snapshot *Snapshot, replace bool) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if replace {
		for _, table := range []string{"daily_status", "custom_holidays", "settings"} {
			if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
				return err
			}
		}
	}

	now := time.Now().UTC()
	for _, record := range snapshot.DailyStatus {
		hours := record.WorkHours
		if hours == 0 {
			hours = models.DefaultWorkHours
		}
		_, err := tx.Exec(
			`INSERT INTO daily_status (date, status, work_hours, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (date)
			 DO UPDATE SET status = excluded.status, work_hours = excluded.work_hours, updated_at = excluded.updated_at`,
			record.Date, record.Status, hours, now, now,
		)
		if err != nil {
			return err
		}
	}

	for _, holiday := range snapshot.CustomHolidays {
		_, err := tx.Exec(
			`INSERT INTO custom_holidays (date, description, is_workday)
			 VALUES (?, ?, ?)
			 ON CONFLICT (date)
			 DO UPDATE SET description = excluded.description, is_workday = excluded.is_workday`,
			holiday.Date, holiday.Description, holiday.IsWorkday,
		)
		if err != nil {
			return err
		}
	}

	for key, value := range snapshot.Settings {
		_, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
			key, value,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
