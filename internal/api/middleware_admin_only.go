package api

import "github.com/gofiber/fiber/v2"

// AdminOnly layers on top of AuthRequired: the 401 for a bad credential
// always wins over the 403 for a valid but under-privileged one.
func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}
	if !user.IsAdmin() {
		return apiError(c, fiber.StatusForbidden, "not enough permissions")
	}
	return c.Next()
}
