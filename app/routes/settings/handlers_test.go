package settings

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
	SetupSettingsRoutes(app)

	token, err := auth.GenerateJWT("user-1", "admin", "Admin")
	require.NoError(t, err)
	return app, token
}

func request(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (*http.Response, map[string]interface{}) {
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

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestGetSettingsDefaults(t *testing.T) {
	app, token := testApp(t)

	resp, body := request(t, app, "GET", "/api/settings", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "40", body["target_percentage"])
}

func TestUpdateSettings(t *testing.T) {
	app, token := testApp(t)

	// Numeric values are stored as strings, the original wire shape.
	resp, _ := request(t, app, "POST", "/api/settings", token, map[string]interface{}{
		"target_percentage": 60,
		"theme":             "dark",
	})
	require.Equal(t, 200, resp.StatusCode)

	_, body := request(t, app, "GET", "/api/settings", token, nil)
	assert.Equal(t, "60", body["target_percentage"])
	assert.Equal(t, "dark", body["theme"])
}

func TestUpdateSettingsValidation(t *testing.T) {
	app, token := testApp(t)

	resp, _ := request(t, app, "POST", "/api/settings", token, map[string]interface{}{
		"target_percentage": "150",
	})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = request(t, app, "POST", "/api/settings", token, map[string]interface{}{
		"target_percentage": "not-a-number",
	})
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = request(t, app, "POST", "/api/settings", token, map[string]interface{}{})
	assert.Equal(t, 400, resp.StatusCode)

	// Failed update leaves the previous value intact.
	_, body := request(t, app, "GET", "/api/settings", token, nil)
	assert.Equal(t, "40", body["target_percentage"])
}
