package database

import (
	"database/sql"
	"log"

	"github.com/ShawnMa123/wio-calculator/app/models"
)

// RunMigrations creates the schema and seeds the default rows. Safe to run
// on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS daily_status (
			date TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			work_hours REAL NOT NULL DEFAULT 1.0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS custom_holidays (
			date TEXT PRIMARY KEY,
			description TEXT,
			is_workday BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT 1,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	if err := addWorkHoursColumn(db); err != nil {
		return err
	}

	if err := seedDefaultSettings(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// addWorkHoursColumn upgrades databases created before partial-day hours
// were tracked.
func addWorkHoursColumn(db *sql.DB) error {
	rows, err := db.Query(`PRAGMA table_info(daily_status)`)
	if err != nil {
		return err
	}
	defer rows.Close()

	hasColumn := false
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return err
		}
		if name == "work_hours" {
			hasColumn = true
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if !hasColumn {
		if _, err := db.Exec(`ALTER TABLE daily_status ADD COLUMN work_hours REAL NOT NULL DEFAULT 1.0`); err != nil {
			log.Printf("Failed to add work_hours column: %v", err)
			return err
		}
		log.Println("Added work_hours column to daily_status")
	}
	return nil
}

func seedDefaultSettings(db *sql.DB) error {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, models.SettingTargetPercentage).Scan(&value)
	if err == sql.ErrNoRows {
		_, err = db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)`,
			models.SettingTargetPercentage, models.DefaultTargetPercentage)
	}
	return err
}
