package database

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShawnMa123/wio-calculator/app/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// :memory: databases are per-connection
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(db))
	return db
}

func TestMigrationsIdempotent(t *testing.T) {
	db := testDB(t)
	require.NoError(t, RunMigrations(db))

	value, err := GetSetting(db, models.SettingTargetPercentage)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTargetPercentage, value)
}

func TestDailyStatusUpsert(t *testing.T) {
	db := testDB(t)

	record := &models.DailyStatus{Date: "2025-03-03", Status: models.StatusRemote}
	require.NoError(t, UpsertDailyStatus(db, record))
	assert.Equal(t, models.DefaultWorkHours, record.WorkHours)

	loaded, err := GetDailyStatus(db, "2025-03-03")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRemote, loaded.Status)
	assert.Equal(t, 1.0, loaded.WorkHours)

	// Second upsert replaces, never duplicates.
	record.Status = models.StatusWIO
	record.WorkHours = 0.5
	require.NoError(t, UpsertDailyStatus(db, record))

	loaded, err = GetDailyStatus(db, "2025-03-03")
	require.NoError(t, err)
	assert.Equal(t, models.StatusWIO, loaded.Status)
	assert.Equal(t, 0.5, loaded.WorkHours)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM daily_status`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestDailyStatusByMonth(t *testing.T) {
	db := testDB(t)

	for _, date := range []string{"2025-03-03", "2025-03-28", "2025-04-01"} {
		require.NoError(t, UpsertDailyStatus(db, &models.DailyStatus{
			Date: date, Status: models.StatusWIO, WorkHours: 1,
		}))
	}

	records, err := GetDailyStatusByMonth(db, 2025, time.March)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Contains(t, records, "2025-03-03")
	assert.Contains(t, records, "2025-03-28")
	assert.NotContains(t, records, "2025-04-01")
}

func TestDailyStatusDelete(t *testing.T) {
	db := testDB(t)

	require.NoError(t, UpsertDailyStatus(db, &models.DailyStatus{
		Date: "2025-03-03", Status: models.StatusRemote, WorkHours: 1,
	}))
	require.NoError(t, DeleteDailyStatus(db, "2025-03-03"))

	_, err := GetDailyStatus(db, "2025-03-03")
	assert.Equal(t, sql.ErrNoRows, err)

	// Deleting an absent date is fine.
	assert.NoError(t, DeleteDailyStatus(db, "2025-03-04"))
}

func TestCustomHolidayCRUD(t *testing.T) {
	db := testDB(t)

	holiday := &models.CustomHoliday{Date: "2025-12-24", Description: "Christmas Eve", IsWorkday: false}
	require.NoError(t, UpsertCustomHoliday(db, holiday))

	loaded, err := GetCustomHoliday(db, "2025-12-24")
	require.NoError(t, err)
	assert.Equal(t, "Christmas Eve", loaded.Description)
	assert.False(t, loaded.IsWorkday)

	holiday.IsWorkday = true
	holiday.Description = "on call"
	require.NoError(t, UpsertCustomHoliday(db, holiday))

	byYear, err := GetCustomHolidaysByYear(db, 2025)
	require.NoError(t, err)
	require.Len(t, byYear, 1)
	assert.True(t, byYear["2025-12-24"].IsWorkday)

	other, err := GetCustomHolidaysByYear(db, 2024)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, DeleteCustomHoliday(db, "2025-12-24"))
	_, err = GetCustomHoliday(db, "2025-12-24")
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestSettings(t *testing.T) {
	db := testDB(t)

	require.NoError(t, UpsertSetting(db, models.SettingTargetPercentage, "60"))
	require.NoError(t, UpsertSetting(db, "theme", "dark"))

	all, err := GetAllSettings(db)
	require.NoError(t, err)
	assert.Equal(t, "60", all[models.SettingTargetPercentage])
	assert.Equal(t, "dark", all["theme"])

	assert.Equal(t, 60.0, GetTargetPercentage(db))

	// Unparseable value falls back to the default.
	require.NoError(t, UpsertSetting(db, models.SettingTargetPercentage, "lots"))
	assert.Equal(t, 40.0, GetTargetPercentage(db))
}

func TestUserSeedAndPassword(t *testing.T) {
	db := testDB(t)

	require.NoError(t, EnsureUser(db, "admin", "secret", "Admin"))
	// Second call keeps the existing password.
	require.NoError(t, EnsureUser(db, "admin", "other", "Admin"))

	user, err := GetUserByUsername(db, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.Password) // stored hashed
	assert.Equal(t, "Admin", user.DisplayName)

	byID, err := GetUserByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, byID.Username)

	require.NoError(t, ResetUserPassword(db, "admin", "rotated"))
	rotated, err := GetUserByUsername(db, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, user.Password, rotated.Password)

	// Resetting an unknown account creates it.
	require.NoError(t, ResetUserPassword(db, "backup", "pw"))
	_, err = GetUserByUsername(db, "backup")
	assert.NoError(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := testDB(t)

	require.NoError(t, UpsertDailyStatus(src, &models.DailyStatus{Date: "2025-03-03", Status: models.StatusRemote, WorkHours: 1}))
	require.NoError(t, UpsertDailyStatus(src, &models.DailyStatus{Date: "2025-03-04", Status: models.StatusWIO, WorkHours: 0.5}))
	require.NoError(t, UpsertCustomHoliday(src, &models.CustomHoliday{Date: "2025-12-24", Description: "Christmas Eve"}))
	require.NoError(t, UpsertSetting(src, models.SettingTargetPercentage, "55"))

	snapshot, err := ExportSnapshot(src)
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snapshot.Version)
	assert.NotEmpty(t, snapshot.ID)
	assert.Len(t, snapshot.DailyStatus, 2)
	assert.Len(t, snapshot.CustomHolidays, 1)
	assert.Equal(t, "55", snapshot.Settings[models.SettingTargetPercentage])

	dst := testDB(t)
	require.NoError(t, ImportSnapshot(dst, snapshot, false))

	loaded, err := GetDailyStatus(dst, "2025-03-04")
	require.NoError(t, err)
	assert.Equal(t, 0.5, loaded.WorkHours)
	assert.Equal(t, 55.0, GetTargetPercentage(dst))
}

func TestSnapshotImportReplace(t *testing.T) {
	db := testDB(t)

	require.NoError(t, UpsertDailyStatus(db, &models.DailyStatus{Date: "2025-01-06", Status: models.StatusWIO, WorkHours: 1}))
	require.NoError(t, UpsertCustomHoliday(db, &models.CustomHoliday{Date: "2025-01-07", Description: "old"}))

	snapshot := &Snapshot{
		Version:     SnapshotVersion,
		DailyStatus: []*models.DailyStatus{{Date: "2025-02-03", Status: models.StatusRemote}},
		Settings:    map[string]string{models.SettingTargetPercentage: "70"},
	}
	require.NoError(t, ImportSnapshot(db, snapshot, true))

	_, err := GetDailyStatus(db, "2025-01-06")
	assert.Equal(t, sql.ErrNoRows, err)
	_, err = GetCustomHoliday(db, "2025-01-07")
	assert.Equal(t, sql.ErrNoRows, err)

	// Missing hours in a snapshot default to a full day.
	loaded, err := GetDailyStatus(db, "2025-02-03")
	require.NoError(t, err)
	assert.Equal(t, 1.0, loaded.WorkHours)
	assert.Equal(t, 70.0, GetTargetPercentage(db))
}

func TestSnapshotImportMerge(t *testing.T) {
	db := testDB(t)

	require.NoError(t, UpsertDailyStatus(db, &models.DailyStatus{Date: "2025-01-06", Status: models.StatusWIO, WorkHours: 1}))

	snapshot := &Snapshot{
		Version:     SnapshotVersion,
		DailyStatus: []*models.DailyStatus{{Date: "2025-01-06", Status: models.StatusRemote, WorkHours: 1}},
	}
	require.NoError(t, ImportSnapshot(db, snapshot, false))

	loaded, err := GetDailyStatus(db, "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRemote, loaded.Status)
}
