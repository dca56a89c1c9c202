package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fixtrack/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "fixtrack-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", 30*time.Minute)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, path string, token string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return request
}

func decodeJSONBody(t *testing.T, body io.Reader, target any) {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, body, &payload)
	return payload["error"]
}

// registerTestUser registers through the public endpoint; the first caller in
// a fresh database becomes the admin.
func registerTestUser(t *testing.T, app *fiber.App, email string, password string, name string) map[string]any {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":    email,
		"password": password,
		"name":     name,
	}), -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, response.StatusCode)
	}

	user := map[string]any{}
	decodeJSONBody(t, response.Body, &user)
	return user
}

func loginTestUser(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	}), -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", email, response.StatusCode)
	}

	payload := map[string]string{}
	decodeJSONBody(t, response.Body, &payload)
	if payload["token_type"] != "bearer" {
		t.Fatalf("expected bearer token type, got %q", payload["token_type"])
	}
	if payload["access_token"] == "" {
		t.Fatal("expected a non-empty access token")
	}
	return payload["access_token"]
}

// registerAndLogin is the common fixture: one admin (first user) plus however
// many regular users the test needs.
func registerAndLogin(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	registerTestUser(t, app, email, password, "Test User")
	return loginTestUser(t, app, email, password)
}

func createAssetViaAPI(t *testing.T, app *fiber.App, token string, name string, assetType string) uint {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/assets", token, fiber.Map{
		"name": name,
		"type": assetType,
	}), -1)
	if err != nil {
		t.Fatalf("create asset request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create asset %s: expected 201, got %d", name, response.StatusCode)
	}

	asset := map[string]any{}
	decodeJSONBody(t, response.Body, &asset)
	id, ok := asset["id"].(float64)
	if !ok {
		t.Fatalf("asset id missing in %v", asset)
	}
	return uint(id)
}

func createRepairViaAPI(t *testing.T, app *fiber.App, token string, propertyID uint, date string) uint {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/repairs", token, fiber.Map{
		"property_id":  propertyID,
		"date":         date,
		"description":  "Routine maintenance",
		"performed_by": "Service Co",
	}), -1)
	if err != nil {
		t.Fatalf("create repair request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create repair: expected 201, got %d", response.StatusCode)
	}

	repair := map[string]any{}
	decodeJSONBody(t, response.Body, &repair)
	id, ok := repair["id"].(float64)
	if !ok {
		t.Fatalf("repair id missing in %v", repair)
	}
	return uint(id)
}
