package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tamrah/internal/logging"
	"tamrah/internal/models"
)

// respondError maps a service error onto the HTTP error taxonomy. Storage
// failures are checked before validation because a StorageError may wrap
// a record that failed validation on read.
func respondError(c *fiber.Ctx, err error, msg string) error {
	var storageErr *models.StorageError
	var validationErr *models.ValidationError

	switch {
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": msg + ": not found",
		})
	case errors.Is(err, models.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	case errors.As(err, &storageErr):
		logging.Error().Err(err).Str("path", c.Path()).Msg(msg)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": msg,
		})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"errors": validationErr.Fields,
		})
	default:
		logging.Error().Err(err).Str("path", c.Path()).Msg(msg)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": msg,
		})
	}
}

// respondBadBody reports a request body that could not be parsed.
func respondBadBody(c *fiber.Ctx, err error) error {
	logging.Debug().Err(err).Str("path", c.Path()).Msg("Error parsing request body")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
	})
}

// parseID reads the :id route parameter as a positive integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("id", "must be a positive integer")
	}
	return uint(id), nil
}
