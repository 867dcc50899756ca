package database

import (
	"database/sql"
	"strconv"

	"github.com/ShawnMa123/wio-calculator/app/models"
)

// GetAllSettings returns every settings row as a key/value map.
func GetAllSettings(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

// GetSetting returns the value for one key, or sql.ErrNoRows.
func GetSetting(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	return value, err
}

// UpsertSetting saves a key/value pair, replacing any previous value.
func UpsertSetting(db *sql.DB, key, value string) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
			  ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	_, err := db.Exec(query, key, value)
	return err
}

// GetTargetPercentage reads the WIO target, falling back to the default when
// the row is missing or unparseable.
func GetTargetPercentage(db *sql.DB) float64 {
	value, err := GetSetting(db, models.SettingTargetPercentage)
	if err != nil {
		value = models.DefaultTargetPercentage
	}
	target, err := strconv.ParseFloat(value, 64)
	if err != nil {
		target, _ = strconv.ParseFloat(models.DefaultTargetPercentage, 64)
	}
	return target
}
