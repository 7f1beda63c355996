package handlers

import (
	"fmt"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"tamrah/internal/models"
	"tamrah/internal/services"
)

// ImageHandler handles image uploads and serves stored files.
type ImageHandler struct {
	service  *services.ImageService
	maxBytes int64
}

// NewImageHandler creates a new ImageHandler. Uploads larger than maxBytes
// are rejected.
func NewImageHandler(service *services.ImageService, maxBytes int64) *ImageHandler {
	return &ImageHandler{
		service:  service,
		maxBytes: maxBytes,
	}
}

// RegisterRoutes registers the public file route.
func (h *ImageHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/files/*", h.HandleGetFile)
}

// RegisterAdminRoutes registers the upload route behind the admin gate.
func (h *ImageHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/upload-image", h.HandleUploadImage)
}

// HandleUploadImage stores the multipart "image" part under a generated key.
func (h *ImageHandler) HandleUploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return respondError(c, models.NewValidationError("image", "no file provided"), "Failed to upload image")
	}
	if h.maxBytes > 0 && file.Size > h.maxBytes {
		return respondError(c, models.NewValidationError("image", fmt.Sprintf("must be at most %d bytes", h.maxBytes)), "Failed to upload image")
	}

	f, err := file.Open()
	if err != nil {
		return respondError(c, models.NewStorageError("open upload", err), "Failed to upload image")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, models.NewStorageError("read upload", err), "Failed to upload image")
	}

	res, err := h.service.UploadImage(
		c.UserContext(),
		c.FormValue("category"),
		file.Filename,
		file.Header.Get(fiber.HeaderContentType),
		data,
	)
	if err != nil {
		return respondError(c, err, "Failed to upload image")
	}
	return c.JSON(res)
}

// HandleGetFile streams a stored blob by its exact key.
func (h *ImageHandler) HandleGetFile(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return respondError(c, models.NewValidationError("key", "is not a valid escaped path"), "File")
	}

	blob, err := h.service.GetImage(c.UserContext(), key)
	if err != nil {
		return respondError(c, err, "File")
	}

	if match := c.Get(fiber.HeaderIfNoneMatch); match != "" && match == blob.ETag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderContentType, blob.ContentType)
	c.Set(fiber.HeaderETag, blob.ETag)
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.Send(blob.Data)
}
