// Package auth provides authentication handlers for Fiber.
package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/roman-popenov/base-final-project/governance"
)

// TokenRequest is the body of POST /auth/token.
type TokenRequest struct {
	Account string `json:"account"`
}

// IssueToken authenticates an account against the identity gate and
// sets the auth cookie. There are no passwords: holding a valid
// verification credential is the login.
func IssueToken(gate governance.IdentityGate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req TokenRequest
		if err := c.BodyParser(&req); err != nil || req.Account == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		verified, err := gate.IsVerified(c.Context(), req.Account)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Verifier unavailable"})
		}
		if !verified {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": governance.ErrNotVerified.Error(),
				"code":  governance.ErrorCode(governance.ErrNotVerified),
			})
		}

		token, err := GenerateJWT(req.Account)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
		}

		SetAuthCookie(c, token)

		return c.JSON(fiber.Map{
			"token":   token,
			"account": req.Account,
		})
	}
}

// Logout clears the auth cookie.
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     "auth_token",
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})
		return c.JSON(fiber.Map{"message": "Logged out"})
	}
}

// Me returns the authenticated account.
func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"account": CallerAccount(c)})
	}
}

// SetAuthCookie applies the consistent auth cookie configuration.
func SetAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
