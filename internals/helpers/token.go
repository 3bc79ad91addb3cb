// internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken returns the authenticated user's id from Locals
// (set by the auth middleware).
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing user identity")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user identity")
	}
	return id, nil
}

// GetClientIDFromToken returns the active client (tenant) id from Locals.
func GetClientIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("client_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing client scope")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid client scope")
	}
	return id, nil
}

// GetRoleFromToken returns the client-scoped role, or "" when absent.
func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}
