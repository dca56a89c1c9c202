package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/fixtrack/internal/db"
	"github.com/terraincognita07/fixtrack/internal/models"
	"gorm.io/gorm"
)

var (
	allowedCurrencies  = []string{"USD", "EUR", "RUB", "GBP", "JPY"}
	allowedLanguages   = []string{"en", "ru", "de", "fr", "es"}
	allowedDateFormats = []string{"DD.MM.YYYY", "MM/DD/YYYY", "YYYY-MM-DD"}
	allowedThemes      = []string{"dark", "light"}
)

// SettingsUpdate carries the optional per-field changes; nil fields keep the
// stored value.
type SettingsUpdate struct {
	Currency   *string
	Language   *string
	DateFormat *string
	Theme      *string
}

type SettingsService struct {
	settings *db.SettingsRepository
}

func NewSettingsService(settings *db.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// LoadOrCreate returns the user's settings row, creating it with defaults on
// first access.
func (service *SettingsService) LoadOrCreate(userID uint) (models.UserSettings, error) {
	settings, err := service.settings.FindByUserID(userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserSettings{}, err
	}

	settings = models.UserSettings{
		UserID:     userID,
		Currency:   models.DefaultCurrency,
		Language:   models.DefaultLanguage,
		DateFormat: models.DefaultDateFormat,
		Theme:      models.DefaultTheme,
	}
	if err := service.settings.Create(&settings); err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}

func (service *SettingsService) Save(userID uint, update SettingsUpdate) (models.UserSettings, error) {
	if _, err := service.LoadOrCreate(userID); err != nil {
		return models.UserSettings{}, err
	}

	updates := map[string]any{}
	if update.Currency != nil {
		if err := validateChoice("currency", *update.Currency, allowedCurrencies); err != nil {
			return models.UserSettings{}, err
		}
		updates["currency"] = *update.Currency
	}
	if update.Language != nil {
		if err := validateChoice("language", *update.Language, allowedLanguages); err != nil {
			return models.UserSettings{}, err
		}
		updates["language"] = *update.Language
	}
	if update.DateFormat != nil {
		if err := validateChoice("date format", *update.DateFormat, allowedDateFormats); err != nil {
			return models.UserSettings{}, err
		}
		updates["date_format"] = *update.DateFormat
	}
	if update.Theme != nil {
		if err := validateChoice("theme", *update.Theme, allowedThemes); err != nil {
			return models.UserSettings{}, err
		}
		updates["theme"] = *update.Theme
	}

	if len(updates) > 0 {
		if err := service.settings.UpdateByUserID(userID, updates); err != nil {
			return models.UserSettings{}, err
		}
	}
	return service.settings.FindByUserID(userID)
}

// ErrSettingsInvalid wraps every rejected settings value so handlers can map
// the whole family to one status code.
var ErrSettingsInvalid = errors.New("invalid settings value")

func validateChoice(field string, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported %s %q", ErrSettingsInvalid, field, value)
}
