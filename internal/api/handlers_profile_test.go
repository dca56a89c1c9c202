package api

import (
	"net/http"
	"testing"
)

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "profile@example.com", "secret123")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/profile", token, nil), -1)
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	profile := map[string]any{}
	decodeJSONBody(t, response.Body, &profile)
	response.Body.Close()
	if profile["email"] != "profile@example.com" {
		t.Fatalf("unexpected profile %v", profile)
	}

	response, err = app.Test(jsonRequest(t, http.MethodPut, "/api/profile", token, map[string]string{
		"name": "Renamed User",
	}), -1)
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	updated := map[string]any{}
	decodeJSONBody(t, response.Body, &updated)
	if updated["name"] != "Renamed User" {
		t.Fatalf("name not updated: %v", updated)
	}
}

func TestProfileEmailConflict(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestUser(t, app, "holder@example.com", "secret123", "Holder")
	token := registerAndLogin(t, app, "mover@example.com", "secret123")

	response, err := app.Test(jsonRequest(t, http.MethodPut, "/api/profile", token, map[string]string{
		"email": "holder@example.com",
	}), -1)
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", response.StatusCode)
	}
}

func TestProfileEmailChangeInvalidatesOldToken(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "old@example.com", "secret123")

	response, err := app.Test(jsonRequest(t, http.MethodPut, "/api/profile", token, map[string]string{
		"email": "new@example.com",
	}), -1)
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	// The token subject is the old email, which no longer resolves.
	response, err = app.Test(jsonRequest(t, http.MethodGet, "/api/profile", token, nil), -1)
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("stale token expected 401, got %d", response.StatusCode)
	}
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "password@example.com", "secret123")

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/profile/change-password", token, map[string]string{
		"current_password": "wrongpass",
		"new_password":     "newsecret",
	}), -1)
	if err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("wrong current password: expected 400, got %d", response.StatusCode)
	}
	if message := readAPIError(t, response.Body); message != "current password is incorrect" {
		t.Fatalf("unexpected error message %q", message)
	}
	response.Body.Close()

	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/profile/change-password", token, map[string]string{
		"current_password": "secret123",
		"new_password":     "newsecret",
	}), -1)
	if err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	loginTestUser(t, app, "password@example.com", "newsecret")
}

func TestSettingsLazyDefaultsAndValidation(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "settings@example.com", "secret123")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/profile/settings", token, nil), -1)
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}
	settings := map[string]any{}
	decodeJSONBody(t, response.Body, &settings)
	response.Body.Close()
	if settings["currency"] != "USD" || settings["language"] != "en" ||
		settings["date_format"] != "DD.MM.YYYY" || settings["theme"] != "dark" {
		t.Fatalf("unexpected defaults %v", settings)
	}

	response, err = app.Test(jsonRequest(t, http.MethodPut, "/api/profile/settings", token, map[string]string{
		"currency": "EUR",
		"theme":    "light",
	}), -1)
	if err != nil {
		t.Fatalf("update settings failed: %v", err)
	}
	decodeJSONBody(t, response.Body, &settings)
	response.Body.Close()
	if settings["currency"] != "EUR" || settings["theme"] != "light" || settings["language"] != "en" {
		t.Fatalf("partial update mismatch: %v", settings)
	}

	response, err = app.Test(jsonRequest(t, http.MethodPut, "/api/profile/settings", token, map[string]string{
		"currency": "DOGE",
	}), -1)
	if err != nil {
		t.Fatalf("update settings failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid currency: expected 400, got %d", response.StatusCode)
	}
}
