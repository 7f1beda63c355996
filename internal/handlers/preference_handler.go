package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tamrah/internal/models"
	"tamrah/internal/services"
)

// ClientIDCookie identifies an anonymous visitor for stored preferences.
const ClientIDCookie = "tamrah_client_id"

// PreferenceHandler handles the visitor preference endpoints.
type PreferenceHandler struct {
	service   *services.PreferenceService
	cookieTTL time.Duration
}

// NewPreferenceHandler creates a new PreferenceHandler. The client id
// cookie lives as long as the stored preferences.
func NewPreferenceHandler(service *services.PreferenceService, cookieTTL time.Duration) *PreferenceHandler {
	return &PreferenceHandler{
		service:   service,
		cookieTTL: cookieTTL,
	}
}

// RegisterRoutes registers the preference routes.
func (h *PreferenceHandler) RegisterRoutes(router fiber.Router) {
	prefRoutes := router.Group("/preferences")
	prefRoutes.Get("/language", h.HandleGetLanguage)
	prefRoutes.Put("/language", h.HandleSetLanguage)
}

// HandleGetLanguage returns the visitor's language, defaulting to English.
func (h *PreferenceHandler) HandleGetLanguage(c *fiber.Ctx) error {
	lang, err := h.service.GetLanguage(c.UserContext(), c.Cookies(ClientIDCookie))
	if err != nil {
		return respondError(c, err, "Failed to read preference")
	}
	return c.JSON(fiber.Map{
		"language": lang,
		"dir":      lang.Direction(),
	})
}

// HandleSetLanguage stores the visitor's language, issuing a client id
// cookie on first write.
func (h *PreferenceHandler) HandleSetLanguage(c *fiber.Ctx) error {
	var pref models.LanguagePreference
	if err := c.BodyParser(&pref); err != nil {
		return respondBadBody(c, err)
	}

	clientID := c.Cookies(ClientIDCookie)
	if _, err := uuid.Parse(clientID); err != nil {
		clientID = uuid.NewString()
	}

	lang, err := h.service.SetLanguage(c.UserContext(), clientID, pref)
	if err != nil {
		return respondError(c, err, "Failed to store preference")
	}

	cookie := &fiber.Cookie{
		Name:     ClientIDCookie,
		Value:    clientID,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if h.cookieTTL > 0 {
		cookie.MaxAge = int(h.cookieTTL.Seconds())
	}
	c.Cookie(cookie)

	return c.JSON(fiber.Map{
		"language": lang,
		"dir":      lang.Direction(),
	})
}
