package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fixtrack/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Register(input.Email, input.Password, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already registered")
		case errors.Is(err, services.ErrAuthEmailInvalid), errors.Is(err, services.ErrAuthPasswordTooWeak):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			log.Printf("register: %v", err)
			return apiError(c, fiber.StatusInternalServerError, "failed to register user")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(userJSON(user))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "incorrect email or password")
		}
		log.Printf("login: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	token, err := handler.buildAccessToken(user)
	if err != nil {
		log.Printf("sign access token: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (handler *Handler) CurrentUserInfo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}
	return c.JSON(userJSON(user))
}
