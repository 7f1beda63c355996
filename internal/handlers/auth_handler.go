package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"tamrah/internal/logging"
	"tamrah/internal/middleware"
	"tamrah/internal/models"
	"tamrah/internal/services"
)

const sessionCookieMaxAge = 60 * 24 * time.Hour

// AuthHandler proxies the login handoff to the external users service.
type AuthHandler struct {
	authService *services.AuthService
	cookieName  string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
	}
}

// RegisterRoutes registers the public handoff routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/oauth/google/redirect_url", h.HandleRedirectURL)
	router.Post("/sessions", h.HandleCreateSession)
	router.Get("/logout", h.HandleLogout)
}

// RegisterAdminRoutes registers the routes that need an authenticated admin.
// gate runs before the handler.
func (h *AuthHandler) RegisterAdminRoutes(router fiber.Router, gate fiber.Handler) {
	router.Get("/users/me", gate, h.HandleMe)
}

// HandleRedirectURL returns the Google login URL.
func (h *AuthHandler) HandleRedirectURL(c *fiber.Ctx) error {
	redirectURL, err := h.authService.OAuthRedirectURL(c.UserContext(), "google")
	if err != nil {
		logging.Error().Err(err).Msg("Error fetching OAuth redirect URL")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to get redirect URL",
		})
	}
	return c.JSON(fiber.Map{"redirectUrl": redirectURL})
}

type createSessionRequest struct {
	Code string `json:"code"`
}

// HandleCreateSession exchanges an OAuth code and sets the session cookie.
func (h *AuthHandler) HandleCreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}

	token, err := h.authService.CreateSession(c.UserContext(), req.Code)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No authorization code provided",
			})
		}
		logging.Warn().Err(err).Msg("Session exchange failed")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	c.Cookie(h.sessionCookie(token, int(sessionCookieMaxAge.Seconds())))
	return c.JSON(fiber.Map{"success": true})
}

// HandleMe returns the identity the admin gate stored for this request.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	id := middleware.CurrentAdmin(c)
	if id == nil {
		return respondError(c, models.ErrUnauthorized, "Unauthorized")
	}
	return c.JSON(id)
}

// HandleLogout revokes the remote session and clears the cookie. It
// always succeeds locally.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	h.authService.Logout(c.UserContext(), c.Cookies(h.cookieName))
	expired := h.sessionCookie("", 0)
	expired.Expires = time.Unix(0, 0)
	c.Cookie(expired)
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	}
}
