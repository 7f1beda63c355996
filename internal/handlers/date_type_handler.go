package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tamrah/internal/models"
	"tamrah/internal/services"
)

// DateTypeHandler handles HTTP requests for the date catalog.
type DateTypeHandler struct {
	service     *services.DateTypeService
	preferences *services.PreferenceService
}

// NewDateTypeHandler creates a new DateTypeHandler.
func NewDateTypeHandler(service *services.DateTypeService, preferences *services.PreferenceService) *DateTypeHandler {
	return &DateTypeHandler{
		service:     service,
		preferences: preferences,
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *DateTypeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/date-types", h.HandleGetDateTypes)
	router.Get("/date-types/:id", h.HandleGetDateTypeByID)
	router.Get("/catalog", h.HandleGetCatalog)
}

// RegisterAdminRoutes registers the catalog mutation routes. router must
// already be behind the admin gate.
func (h *DateTypeHandler) RegisterAdminRoutes(router fiber.Router) {
	dateTypeRoutes := router.Group("/date-types")
	dateTypeRoutes.Post("/", h.HandleCreateDateType)
	dateTypeRoutes.Put("/:id", h.HandleUpdateDateType)
	dateTypeRoutes.Patch("/:id", h.HandlePatchDateType)
	dateTypeRoutes.Delete("/:id", h.HandleDeleteDateType)
}

// HandleGetDateTypes lists the catalog, premium first then sweetest first.
func (h *DateTypeHandler) HandleGetDateTypes(c *fiber.Ctx) error {
	dateTypes, err := h.service.GetAllDateTypes(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to fetch date types")
	}
	return c.JSON(dateTypes)
}

// HandleGetDateTypeByID returns one record or 404.
func (h *DateTypeHandler) HandleGetDateTypeByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch date type")
	}
	dt, err := h.service.GetDateTypeByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Date type")
	}
	return c.JSON(dt)
}

// HandleGetCatalog returns the catalog in one language, chosen by ?lang=,
// then the client's stored preference, then English.
func (h *DateTypeHandler) HandleGetCatalog(c *fiber.Ctx) error {
	lang, err := h.preferences.ResolveLanguage(c.UserContext(), c.Query("lang"), c.Cookies(ClientIDCookie))
	if err != nil {
		return respondError(c, err, "Failed to resolve language")
	}
	views, err := h.service.GetLocalizedCatalog(c.UserContext(), lang)
	if err != nil {
		return respondError(c, err, "Failed to fetch catalog")
	}
	c.Set(fiber.HeaderContentLanguage, string(lang))
	return c.JSON(fiber.Map{
		"language":   lang,
		"dir":        lang.Direction(),
		"date_types": views,
	})
}

// HandleCreateDateType creates a record from a full DateTypeInput.
func (h *DateTypeHandler) HandleCreateDateType(c *fiber.Ctx) error {
	var in models.DateTypeInput
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c, err)
	}
	dt, err := h.service.CreateDateType(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "Failed to create date type")
	}
	return c.Status(fiber.StatusCreated).JSON(dt)
}

// HandleUpdateDateType fully replaces a record.
func (h *DateTypeHandler) HandleUpdateDateType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to update date type")
	}
	var in models.DateTypeInput
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c, err)
	}
	dt, err := h.service.UpdateDateType(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err, "Failed to update date type")
	}
	return c.JSON(dt)
}

// HandlePatchDateType applies a partial update.
func (h *DateTypeHandler) HandlePatchDateType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to update date type")
	}
	var patch models.DateTypePatch
	if err := c.BodyParser(&patch); err != nil {
		return respondBadBody(c, err)
	}
	dt, err := h.service.PatchDateType(c.UserContext(), id, patch)
	if err != nil {
		return respondError(c, err, "Failed to update date type")
	}
	return c.JSON(dt)
}

// HandleDeleteDateType deletes a record. Unknown ids also succeed.
func (h *DateTypeHandler) HandleDeleteDateType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err, "Failed to delete date type")
	}
	if err := h.service.DeleteDateType(c.UserContext(), id); err != nil {
		return respondError(c, err, "Failed to delete date type")
	}
	return c.JSON(fiber.Map{"success": true})
}
