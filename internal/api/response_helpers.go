package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fixtrack/internal/models"
)

const jsonDateLayout = "2006-01-02"

func userJSON(user models.User) fiber.Map {
	return fiber.Map{
		"id":         user.ID,
		"email":      user.Email,
		"name":       user.Name,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	}
}

func assetJSON(asset models.Asset) fiber.Map {
	return fiber.Map{
		"id":         asset.ID,
		"name":       asset.Name,
		"type":       asset.Type,
		"owner_id":   asset.OwnerID,
		"created_at": asset.CreatedAt,
		"updated_at": asset.UpdatedAt,
	}
}

func assetListJSON(assets []models.Asset) []fiber.Map {
	payload := make([]fiber.Map, 0, len(assets))
	for _, asset := range assets {
		payload = append(payload, assetJSON(asset))
	}
	return payload
}

func repairJSON(repair models.Repair) fiber.Map {
	return fiber.Map{
		"id":            repair.ID,
		"property_id":   repair.PropertyID,
		"date":          repair.Date.Format(jsonDateLayout),
		"description":   repair.Description,
		"performed_by":  repair.PerformedBy,
		"notes":         repair.Notes,
		"cost_cents":    repair.CostCents,
		"status":        repair.Status,
		"created_by_id": repair.CreatedByID,
		"created_at":    repair.CreatedAt,
		"updated_at":    repair.UpdatedAt,
	}
}

func repairListJSON(repairs []models.Repair) []fiber.Map {
	payload := make([]fiber.Map, 0, len(repairs))
	for _, repair := range repairs {
		payload = append(payload, repairJSON(repair))
	}
	return payload
}

func settingsJSON(settings models.UserSettings) fiber.Map {
	return fiber.Map{
		"currency":    settings.Currency,
		"language":    settings.Language,
		"date_format": settings.DateFormat,
		"theme":       settings.Theme,
	}
}
