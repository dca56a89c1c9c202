package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/fixtrack/internal/db"
	"github.com/terraincognita07/fixtrack/internal/models"
)

func TestLoadOrCreateReturnsDefaultsOnFirstAccess(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	user := createTestUser(t, database, "settings@example.com", models.RoleUser)
	service := NewSettingsService(db.NewSettingsRepository(database))

	settings, err := service.LoadOrCreate(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if settings.Currency != models.DefaultCurrency || settings.Theme != models.DefaultTheme {
		t.Fatalf("unexpected defaults: %+v", settings)
	}

	again, err := service.LoadOrCreate(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != settings.ID {
		t.Fatal("second access created a duplicate settings row")
	}
}

func TestSaveUpdatesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	user := createTestUser(t, database, "partial@example.com", models.RoleUser)
	service := NewSettingsService(db.NewSettingsRepository(database))

	currency := "EUR"
	updated, err := service.Save(user.ID, SettingsUpdate{Currency: &currency})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Currency != "EUR" {
		t.Fatalf("currency not updated: %q", updated.Currency)
	}
	if updated.Theme != models.DefaultTheme {
		t.Fatalf("theme changed unexpectedly: %q", updated.Theme)
	}
}

func TestSaveRejectsUnsupportedValues(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	user := createTestUser(t, database, "invalid@example.com", models.RoleUser)
	service := NewSettingsService(db.NewSettingsRepository(database))

	bad := "DOGE"
	if _, err := service.Save(user.ID, SettingsUpdate{Currency: &bad}); !errors.Is(err, ErrSettingsInvalid) {
		t.Fatalf("expected ErrSettingsInvalid for currency, got %v", err)
	}

	badTheme := "solarized"
	if _, err := service.Save(user.ID, SettingsUpdate{Theme: &badTheme}); !errors.Is(err, ErrSettingsInvalid) {
		t.Fatalf("expected ErrSettingsInvalid for theme, got %v", err)
	}

	badFormat := "MM-DD-YYYY"
	if _, err := service.Save(user.ID, SettingsUpdate{DateFormat: &badFormat}); !errors.Is(err, ErrSettingsInvalid) {
		t.Fatalf("expected ErrSettingsInvalid for date format, got %v", err)
	}
}
