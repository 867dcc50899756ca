package holidays

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShawnMa123/wio-calculator/app/config"
	"github.com/ShawnMa123/wio-calculator/app/database"
	"github.com/ShawnMa123/wio-calculator/app/routes/auth"
)

func testApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	config.AppConfig = &config.Config{DB: db, JWTSecret: "test-secret"}

	app := fiber.New()
	SetupHolidaysRoutes(app)

	token, err := auth.GenerateJWT("user-1", "admin", "Admin")
	require.NoError(t, err)
	return app, token
}

func request(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestHolidaysRequireAuth(t *testing.T) {
	app, _ := testApp(t)

	resp, _ := request(t, app, "GET", "/api/holidays?year=2025", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestHolidaysMergeLegalAndCustom(t *testing.T) {
	app, token := testApp(t)

	// Add a custom holiday plus an override of a legal holiday.
	resp, _ := request(t, app, "POST", "/api/holidays", token, map[string]interface{}{
		"date": "2025-12-24", "description": "Christmas Eve",
	})
	require.Equal(t, 200, resp.StatusCode)
	resp, _ = request(t, app, "POST", "/api/holidays", token, map[string]interface{}{
		"date": "2025-05-05", "description": "release day", "is_workday": true,
	})
	require.Equal(t, 200, resp.StatusCode)

	resp, raw := request(t, app, "GET", "/api/holidays?year=2025", token, nil)
	require.Equal(t, 200, resp.StatusCode)

	var entries []HolidayEntry
	require.NoError(t, json.Unmarshal(raw, &entries))

	byDate := make(map[string]HolidayEntry)
	for _, entry := range entries {
		byDate[entry.Date] = entry
	}

	// Custom entries are present with their flag.
	assert.Equal(t, "custom", byDate["2025-12-24"].Type)
	assert.True(t, byDate["2025-05-05"].IsWorkday)
	assert.Equal(t, "custom", byDate["2025-05-05"].Type)

	// Weekday legal holidays are listed; weekend ones are not.
	assert.Equal(t, "legal", byDate["2025-01-01"].Type) // Wednesday
	_, hasWeekend := byDate["2025-05-03"]               // Saturday
	assert.False(t, hasWeekend)

	// Sorted by date.
	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Date, entries[i].Date)
	}
}

func TestHolidayValidationAndDelete(t *testing.T) {
	app, token := testApp(t)

	resp, _ := request(t, app, "POST", "/api/holidays", token, map[string]interface{}{
		"date": "24/12/2025", "description": "bad format",
	})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = request(t, app, "POST", "/api/holidays", token, map[string]interface{}{
		"date": "2025-12-24", "description": "Christmas Eve",
	})
	require.Equal(t, 200, resp.StatusCode)

	resp, _ = request(t, app, "DELETE", "/api/holidays?date=2025-12-24", token, nil)
	require.Equal(t, 200, resp.StatusCode)

	_, err := database.GetCustomHoliday(config.GetDB(), "2025-12-24")
	assert.Equal(t, sql.ErrNoRows, err)

	resp, _ = request(t, app, "DELETE", "/api/holidays?date=nope", token, nil)
	assert.Equal(t, 400, resp.StatusCode)
}
