package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portal/backend/config"
	"portal/backend/content"
	"portal/backend/routes"
	"portal/backend/store"
	"portal/backend/utils"
)

type testEnv struct {
	App     *fiber.App
	Store   store.Store
	Catalog *content.Catalog
	Cfg     *config.Config
}

// newTestEnv wires the full route tree against an in-memory SQLite database
// named after the test, so tests stay isolated from each other.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))

	catalog, err := content.Load()
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:           "testsecret",
		AllowedEmailDomains: []string{"finitestate.io"},
		AdminEmails:         []string{"admin@finitestate.io"},
	}

	env := &testEnv{
		App:     fiber.New(),
		Store:   store.NewGormStore(db),
		Catalog: catalog,
		Cfg:     cfg,
	}
	routes.SetupRoutes(env.App, env.Store, env.Catalog, env.Cfg)
	return env
}

func (e *testEnv) token(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateToken(email, e.Cfg)
	require.NoError(t, err)
	return token
}

// doRequest runs one request through the app and decodes the JSON body.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonData)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

// responseData unwraps the data object of the success envelope.
func responseData(t *testing.T, result map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := result["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", result)
	return data
}
