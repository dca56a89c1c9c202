package services

import (
	"path/filepath"
	"testing"

	"github.com/terraincognita07/fixtrack/internal/db"
	"github.com/terraincognita07/fixtrack/internal/models"
	"golang.org/x/text/encoding/charmap"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "services_test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string, role string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestAsset(t *testing.T, database *gorm.DB, name string, ownerID uint) models.Asset {
	t.Helper()

	asset := models.Asset{Name: name, Type: "equipment", OwnerID: &ownerID}
	if err := database.Create(&asset).Error; err != nil {
		t.Fatalf("create test asset: %v", err)
	}
	return asset
}

func encodeWindows1251(t *testing.T, text string) []byte {
	t.Helper()

	encoded, err := charmap.Windows1251.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encode windows-1251: %v", err)
	}
	return encoded
}
