package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ShawnMa123/wio-calculator/app/models"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(bytes), err
}

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password, display_name, is_active, created_at, updated_at
			  FROM users WHERE username = ? AND is_active = 1`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.DisplayName,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password, display_name, is_active, created_at, updated_at
			  FROM users WHERE id = ? AND is_active = 1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Password, &user.DisplayName,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE users SET password = ?, updated_at = ? WHERE id = ?`
	_, err := db.Exec(query, hashedPassword, time.Now().UTC(), userID)
	return err
}

// EnsureUser creates the account if it does not exist yet. The password is
// only applied on first creation; an existing account keeps its password.
func EnsureUser(db *sql.DB, username, password, displayName string) error {
	var id string
	err := db.QueryRow(`SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(
		`INSERT INTO users (id, username, password, display_name, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 1, ?, ?)`,
		uuid.New().String(), username, hashed, displayName, now, now,
	)
	return err
}

// ResetUserPassword sets a new password for the named account, creating the
// account when missing. Used by the add_user tool.
func ResetUserPassword(db *sql.DB, username, password string) error {
	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}

	res, err := db.Exec(`UPDATE users SET password = ?, updated_at = ? WHERE username = ?`,
		hashed, time.Now().UTC(), username)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return EnsureUser(db, username, password, username)
	}
	return nil
}
