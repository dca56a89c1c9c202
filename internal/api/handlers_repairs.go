package api

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fixtrack/internal/db"
	"github.com/terraincognita07/fixtrack/internal/models"
	"github.com/terraincognita07/fixtrack/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) ListRepairs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	propertyID, err := parseOptionalUintQuery(c, "property_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "property_id must be a number")
	}
	year, err := parseOptionalIntQuery(c, "year")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "year must be a number")
	}
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && !models.ValidRepairStatus(status) {
		return apiError(c, fiber.StatusBadRequest, "status must be PLANNED or COMPLETED")
	}

	sortBy := c.Query("sort_by", "date")
	if sortBy != "date" && sortBy != "asset" {
		return apiError(c, fiber.StatusBadRequest, "sort_by must be date or asset")
	}
	sortOrder := c.Query("sort_order", "desc")
	if !strings.EqualFold(sortOrder, "asc") && !strings.EqualFold(sortOrder, "desc") {
		return apiError(c, fiber.StatusBadRequest, "sort_order must be asc or desc")
	}

	scope := services.ScopeFor(user, nil)
	filter := db.RepairListFilter{PropertyID: propertyID, Status: status, Year: year}
	repairs, err := handler.repositories.Repairs.ListFiltered(scope.Owner, filter, sortBy, sortOrder)
	if err != nil {
		log.Printf("list repairs: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to list repairs")
	}
	return c.JSON(repairListJSON(repairs))
}

func (handler *Handler) CreateRepair(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	var input repairCreateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	description := strings.TrimSpace(input.Description)
	performedBy := strings.TrimSpace(input.PerformedBy)
	if input.PropertyID == 0 || strings.TrimSpace(input.Date) == "" || description == "" || performedBy == "" {
		return apiError(c, fiber.StatusBadRequest, "property_id, date, description and performed_by are required")
	}

	date, err := services.ParseFlexibleDate(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	costCents := int64(0)
	if input.CostCents != nil {
		if *input.CostCents < 0 {
			return apiError(c, fiber.StatusBadRequest, "cost_cents cannot be negative")
		}
		costCents = *input.CostCents
	}

	status := models.RepairStatusCompleted
	if input.Status != nil && strings.TrimSpace(*input.Status) != "" {
		status = strings.ToUpper(strings.TrimSpace(*input.Status))
		if !models.ValidRepairStatus(status) {
			return apiError(c, fiber.StatusBadRequest, "status must be PLANNED or COMPLETED")
		}
	}

	// The parent asset must resolve inside the caller's scope; outside rows
	// 404 exactly like missing ones.
	scope := services.ScopeFor(user, nil)
	if _, err := handler.repositories.Assets.FindScoped(input.PropertyID, scope.Owner); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "asset not found")
		}
		log.Printf("create repair: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create repair")
	}

	creatorID := user.ID
	repair := models.Repair{
		PropertyID:  input.PropertyID,
		Date:        date,
		Description: description,
		PerformedBy: performedBy,
		Notes:       input.Notes,
		CostCents:   costCents,
		Status:      status,
		CreatedByID: &creatorID,
	}
	if err := handler.repositories.Repairs.Create(&repair); err != nil {
		log.Printf("create repair: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create repair")
	}
	return c.Status(fiber.StatusCreated).JSON(repairJSON(repair))
}

func (handler *Handler) GetRepair(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}
	repairID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "repair not found")
	}

	scope := services.ScopeFor(user, nil)
	repair, err := handler.repositories.Repairs.FindScoped(repairID, scope.Owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "repair not found")
		}
		log.Printf("get repair: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch repair")
	}
	return c.JSON(repairJSON(repair))
}

func (handler *Handler) UpdateRepair(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}
	repairID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "repair not found")
	}

	scope := services.ScopeFor(user, nil)
	repair, err := handler.repositories.Repairs.FindScoped(repairID, scope.Owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "repair not found")
		}
		log.Printf("update repair: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update repair")
	}

	var input repairUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	// Notes are always overwritten with the request value, even when the
	// field was omitted. Historical behavior callers rely on to blank notes.
	updates := map[string]any{"notes": input.Notes}

	if input.PropertyID != nil {
		if _, err := handler.repositories.Assets.FindScoped(*input.PropertyID, scope.Owner); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apiError(c, fiber.StatusNotFound, "asset not found")
			}
			log.Printf("update repair: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "failed to update repair")
		}
		updates["property_id"] = *input.PropertyID
	}
	if input.Date != nil {
		date, err := time.Parse(jsonDateLayout, strings.TrimSpace(*input.Date))
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		updates["date"] = date
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return apiError(c, fiber.StatusBadRequest, "description cannot be empty")
		}
		updates["description"] = description
	}
	if input.PerformedBy != nil {
		performedBy := strings.TrimSpace(*input.PerformedBy)
		if performedBy == "" {
			return apiError(c, fiber.StatusBadRequest, "performed_by cannot be empty")
		}
		updates["performed_by"] = performedBy
	}
	if input.CostCents != nil {
		if *input.CostCents < 0 {
			return apiError(c, fiber.StatusBadRequest, "cost_cents cannot be negative")
		}
		updates["cost_cents"] = *input.CostCents
	}
	if input.Status != nil {
		status := strings.ToUpper(strings.TrimSpace(*input.Status))
		if !models.ValidRepairStatus(status) {
			return apiError(c, fiber.StatusBadRequest, "status must be PLANNED or COMPLETED")
		}
		updates["status"] = status
	}

	if err := handler.repositories.Repairs.UpdateByID(repair.ID, updates); err != nil {
		log.Printf("update repair: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update repair")
	}

	updated, err := handler.repositories.Repairs.FindByID(repair.ID)
	if err != nil {
		log.Printf("update repair: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update repair")
	}
	return c.JSON(repairJSON(updated))
}

func (handler *Handler) DeleteRepair(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}
	repairID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "repair not found")
	}

	scope := services.ScopeFor(user, nil)
	repair, err := handler.repositories.Repairs.FindScoped(repairID, scope.Owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "repair not found")
		}
		log.Printf("delete repair: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to delete repair")
	}

	if err := handler.repositories.Repairs.DeleteByID(repair.ID); err != nil {
		log.Printf("delete repair: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to delete repair")
	}
	return c.JSON(fiber.Map{"ok": true})
}
