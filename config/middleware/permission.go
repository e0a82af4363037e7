package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"employee-management-system/models"
	"employee-management-system/pkg/rbac"
)

// RequirePermission consults the rbac gate for the caller's role. It must
// run after AuthMiddleware.
func RequirePermission(gate *rbac.Gate, resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*models.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Not authenticated or session data is corrupt"})
		}

		allowed, err := gate.Allowed(claims.Role, resource, action)
		if err != nil {
			log.Printf("rbac enforce failed: role=%s resource=%s action=%s err=%v", claims.Role, resource, action, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to evaluate permissions"})
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Access denied"})
		}

		return c.Next()
	}
}
