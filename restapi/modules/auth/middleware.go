package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth middleware validates the JWT from the auth cookie or the
// Authorization header and blocks anonymous callers.
func RequireAuth(c *fiber.Ctx) error {
	token := c.Cookies("auth_token")
	if token == "" {
		header := c.Get(fiber.HeaderAuthorization)
		if after, ok := strings.CutPrefix(header, "Bearer "); ok {
			token = after
		}
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired session",
		})
	}

	// Store caller identity in context
	c.Locals("account", claims.Account)

	return c.Next()
}

// CallerAccount returns the authenticated account for the request, or
// empty when RequireAuth did not run.
func CallerAccount(c *fiber.Ctx) string {
	account, _ := c.Locals("account").(string)
	return account
}
