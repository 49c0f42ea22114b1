package middleware

import (
	"strings"

	"warehouse-app/models"
	"warehouse-app/services"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the bearer token and stores its claims in
// Locals under userID, username and role.
func AuthMiddleware(auth *services.AuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// Ambil header Authorization
		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Missing Authorization header",
			})
		}

		// Ambil token dari "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid Authorization header format",
			})
		}

		claims, err := auth.ParseToken(tokenParts[1])
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized: Invalid token",
				"error":   err.Error(),
			})
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("username", claims.Username)
		ctx.Locals("role", claims.Role)

		return ctx.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role models.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		current, _ := ctx.Locals("role").(models.Role)
		if current != role {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Forbidden: You do not have permission",
			})
		}
		return ctx.Next()
	}
}
