package api

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fixtrack/internal/db"
	"github.com/terraincognita07/fixtrack/internal/models"
	"github.com/terraincognita07/fixtrack/internal/services"
)

func (handler *Handler) ExportAssets(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	requestedOwner, err := parseOptionalUintQuery(c, "owner_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "owner_id must be a number")
	}
	scope := services.ScopeFor(user, requestedOwner)

	rows, err := handler.repositories.Assets.ListForExport(scope.Owner, c.Query("type"))
	if err != nil {
		log.Printf("export assets: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to export assets")
	}

	workbook, err := buildExportWorkbook("Assets", assetExportHeaders, assetExportCells(rows))
	if err != nil {
		log.Printf("export assets: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to export assets")
	}

	setExportAttachmentHeaders(c, buildExportFilename("assets", time.Now()))
	return c.Send(workbook.Bytes())
}

func (handler *Handler) ExportRepairs(c *fiber.Ctx) error {
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

	scope := services.ScopeFor(user, nil)
	filter := db.RepairListFilter{PropertyID: propertyID, Status: status, Year: year}
	rows, err := handler.repositories.Repairs.ListForExport(scope.Owner, filter)
	if err != nil {
		log.Printf("export repairs: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to export repairs")
	}

	workbook, err := buildExportWorkbook("Repairs", repairExportHeaders, repairExportCells(rows))
	if err != nil {
		log.Printf("export repairs: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to export repairs")
	}

	setExportAttachmentHeaders(c, buildExportFilename("repairs", time.Now()))
	return c.Send(workbook.Bytes())
}
