package db

import (
	"github.com/terraincognita07/fixtrack/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) FindByUserID(userID uint) (models.UserSettings, error) {
	var settings models.UserSettings
	if err := repo.database.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}

func (repo *SettingsRepository) Create(settings *models.UserSettings) error {
	return repo.database.Create(settings).Error
}

func (repo *SettingsRepository) UpdateByUserID(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.UserSettings{}).Where("user_id = ?", userID).Updates(updates).Error
}
