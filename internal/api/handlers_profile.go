package api

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fixtrack/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}
	return c.JSON(userJSON(user))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	var input profileUpdateInput
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
	if input.Email != nil {
		email := services.NormalizeAuthEmail(*input.Email)
		if email == "" {
			return apiError(c, fiber.StatusBadRequest, "invalid email address")
		}
		taken, err := handler.repositories.Users.ExistsOtherWithEmail(user.ID, email)
		if err != nil {
			log.Printf("update profile: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
		}
		if taken {
			return apiError(c, fiber.StatusConflict, "email already registered")
		}
		updates["email"] = email
	}

	if len(updates) > 0 {
		if err := handler.repositories.Users.UpdateByID(user.ID, updates); err != nil {
			log.Printf("update profile: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
		}
	}

	updated, err := handler.repositories.Users.FindByID(user.ID)
	if err != nil {
		log.Printf("update profile: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
	return c.JSON(userJSON(updated))
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if len(input.NewPassword) < services.MinPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 6 characters")
	}
	if !handler.authService.VerifyPassword(user, input.CurrentPassword) {
		return apiError(c, fiber.StatusBadRequest, "current password is incorrect")
	}

	if err := handler.authService.ChangePassword(user.ID, input.NewPassword); err != nil {
		if errors.Is(err, services.ErrAuthPasswordTooWeak) {
			return apiError(c, fiber.StatusBadRequest, "password must be at least 6 characters")
		}
		log.Printf("change password: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to change password")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	settings, err := handler.settingsService.LoadOrCreate(user.ID)
	if err != nil {
		log.Printf("get settings: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	return c.JSON(settingsJSON(settings))
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	var input settingsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	settings, err := handler.settingsService.Save(user.ID, services.SettingsUpdate{
		Currency:   input.Currency,
		Language:   input.Language,
		DateFormat: input.DateFormat,
		Theme:      input.Theme,
	})
	if err != nil {
		if errors.Is(err, services.ErrSettingsInvalid) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("update settings: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to update settings")
	}
	return c.JSON(settingsJSON(settings))
}
