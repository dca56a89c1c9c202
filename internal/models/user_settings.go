package models

import "time"

const (
	DefaultCurrency   = "USD"
	DefaultLanguage   = "en"
	DefaultDateFormat = "DD.MM.YYYY"
	DefaultTheme      = "dark"
)

type UserSettings struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"uniqueIndex;not null"`
	Currency   string    `gorm:"not null;default:USD"`
	Language   string    `gorm:"not null;default:en"`
	DateFormat string    `gorm:"not null;default:DD.MM.YYYY"`
	Theme      string    `gorm:"not null;default:dark"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
