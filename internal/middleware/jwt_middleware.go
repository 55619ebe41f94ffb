package middleware

import (
	"log"
	"strings"

	"resto/internal/models"
	"resto/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that checks for a valid bearer token
// and stores the account identity in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		c.Locals("account_type", claims["account_type"])

		return c.Next()
	}
}

// RestaurantOwnerOnly rejects requests whose token does not belong to a
// restaurant-owner account. It must run after AuthRequired.
func RestaurantOwnerOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountType, _ := c.Locals("account_type").(string)
		if accountType != models.AccountTypeRestaurant {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Restaurant owner account required",
			})
		}
		return c.Next()
	}
}

// AccountID extracts the authenticated account ID placed by AuthRequired.
func AccountID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
