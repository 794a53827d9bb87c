package middleware

import (
	"portal/backend/config"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// EmailLocal is the fiber locals key the authenticated email is stored under.
const EmailLocal = "email"

// AuthMiddleware resolves the requesting user's email from the token and makes
// it available to handlers. There is no ambient current-user anywhere else;
// handlers read the email from locals and pass it down explicitly.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := utils.ExtractEmailFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(EmailLocal, email)
		return c.Next()
	}
}

// AdminMiddleware restricts a route to the configured admin emails.
func AdminMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := utils.ExtractEmailFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		for _, admin := range cfg.AdminEmails {
			if admin == email {
				c.Locals(EmailLocal, email)
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden - Admin access required",
		})
	}
}
