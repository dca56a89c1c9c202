package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.repositories.Users.ListAll()
	if err != nil {
		log.Printf("list users: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}

	payload := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		payload = append(payload, userJSON(user))
	}
	return c.JSON(payload)
}
