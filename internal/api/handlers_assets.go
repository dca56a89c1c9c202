package api

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fixtrack/internal/models"
	"github.com/terraincognita07/fixtrack/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) ListAssets(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	requestedOwner, err := parseOptionalUintQuery(c, "owner_id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "owner_id must be a number")
	}
	scope := services.ScopeFor(user, requestedOwner)

	assets, err := handler.repositories.Assets.ListFiltered(scope.Owner, c.Query("type"), c.Query("search"))
	if err != nil {
		log.Printf("list assets: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to list assets")
	}
	return c.JSON(assetListJSON(assets))
}

func (handler *Handler) CreateAsset(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	var input assetCreateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(input.Name)
	assetType := strings.TrimSpace(input.Type)
	if name == "" || assetType == "" {
		return apiError(c, fiber.StatusBadRequest, "name and type are required")
	}

	ownerID := user.ID
	asset := models.Asset{Name: name, Type: assetType, OwnerID: &ownerID}
	if err := handler.repositories.Assets.Create(&asset); err != nil {
		log.Printf("create asset: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create asset")
	}
	return c.Status(fiber.StatusCreated).JSON(assetJSON(asset))
}

func (handler *Handler) GetAsset(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}
	assetID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "asset not found")
	}

	scope := services.ScopeFor(user, nil)
	asset, err := handler.repositories.Assets.FindScoped(assetID, scope.Owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "asset not found")
		}
		log.Printf("get asset: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch asset")
	}
	return c.JSON(assetJSON(asset))
}

func (handler *Handler) UpdateAsset(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}
	assetID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "asset not found")
	}

	scope := services.ScopeFor(user, nil)
	asset, err := handler.repositories.Assets.FindScoped(assetID, scope.Owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "asset not found")
		}
		log.Printf("update asset: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update asset")
	}

	var input assetUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return apiError(c, fiber.StatusBadRequest, "name cannot be empty")
		}
		updates["name"] = name
	}
	if input.Type != nil {
		assetType := strings.TrimSpace(*input.Type)
		if assetType == "" {
			return apiError(c, fiber.StatusBadRequest, "type cannot be empty")
		}
		updates["type"] = assetType
	}

	if len(updates) > 0 {
		if err := handler.repositories.Assets.UpdateByID(asset.ID, updates); err != nil {
			log.Printf("update asset: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "failed to update asset")
		}
	}

	updated, err := handler.repositories.Assets.FindScoped(asset.ID, scope.Owner)
	if err != nil {
		log.Printf("update asset: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update asset")
	}
	return c.JSON(assetJSON(updated))
}

func (handler *Handler) DeleteAsset(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}
	assetID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "asset not found")
	}

	scope := services.ScopeFor(user, nil)
	asset, err := handler.repositories.Assets.FindScoped(assetID, scope.Owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "asset not found")
		}
		log.Printf("delete asset: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to delete asset")
	}

	if err := handler.repositories.Assets.DeleteByID(asset.ID); err != nil {
		log.Printf("delete asset: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to delete asset")
	}
	return c.JSON(fiber.Map{"ok": true})
}
