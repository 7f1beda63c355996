package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tamrah/internal/logging"
	"tamrah/internal/models"
	"tamrah/internal/services"
)

// AdminKeyHeader carries the admin API key.
const AdminKeyHeader = "X-Admin-Key"

const adminIdentityKey = "admin_identity"

// AdminRequired is a Fiber middleware that rejects requests without valid
// admin credentials. It runs one authentication check per request and
// stores the identity in the request locals.
func AdminRequired(auth services.Authenticator, sessionCookie string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creds := models.Credentials{
			SessionToken: c.Cookies(sessionCookie),
			BearerToken:  bearerToken(c.Get(fiber.HeaderAuthorization)),
			APIKey:       c.Get(AdminKeyHeader),
		}

		id, err := auth.Authenticate(c.UserContext(), creds)
		if err != nil {
			logging.Info().
				Err(err).
				Str("path", c.Path()).
				Str("ip", c.IP()).
				Msg("Admin request rejected")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals(adminIdentityKey, id)
		return c.Next()
	}
}

// CurrentAdmin returns the identity stored by AdminRequired, or nil.
func CurrentAdmin(c *fiber.Ctx) *models.AdminIdentity {
	id, _ := c.Locals(adminIdentityKey).(*models.AdminIdentity)
	return id
}

// bearerToken extracts the token from "Bearer <token>".
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
