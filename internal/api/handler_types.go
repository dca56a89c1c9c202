package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/fixtrack/internal/db"
	"github.com/terraincognita07/fixtrack/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	secretKey       []byte
	tokenTTL        time.Duration
	repositories    *db.Repositories
	authService     *services.AuthService
	settingsService *services.SettingsService
	importService   *services.ImportService
}

const defaultAccessTokenTTL = 30 * time.Minute

const contextUserKey = "currentUser"

type accessClaims struct {
	jwt.RegisteredClaims
}

type registerInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type assetCreateInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type assetUpdateInput struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

type repairCreateInput struct {
	PropertyID  uint    `json:"property_id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	PerformedBy string  `json:"performed_by"`
	Notes       string  `json:"notes"`
	CostCents   *int64  `json:"cost_cents"`
	Status      *string `json:"status"`
}

type repairUpdateInput struct {
	PropertyID  *uint   `json:"property_id"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	PerformedBy *string `json:"performed_by"`
	Notes       string  `json:"notes"`
	CostCents   *int64  `json:"cost_cents"`
	Status      *string `json:"status"`
}

type profileUpdateInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type settingsInput struct {
	Currency   *string `json:"currency"`
	Language   *string `json:"language"`
	DateFormat *string `json:"date_format"`
	Theme      *string `json:"theme"`
}
