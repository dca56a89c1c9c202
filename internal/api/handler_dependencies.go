package api

import (
	"time"

	"github.com/terraincognita07/fixtrack/internal/db"
	"github.com/terraincognita07/fixtrack/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, tokenTTL time.Duration) *Handler {
	if tokenTTL <= 0 {
		tokenTTL = defaultAccessTokenTTL
	}
	handler := &Handler{
		db:        database,
		secretKey: []byte(secret),
		tokenTTL:  tokenTTL,
	}
	handler.ensureDependencies()
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.settingsService == nil {
		handler.settingsService = services.NewSettingsService(handler.repositories.Settings)
	}
	if handler.importService == nil {
		handler.importService = services.NewImportService(handler.db)
	}
}
