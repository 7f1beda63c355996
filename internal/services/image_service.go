package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"tamrah/internal/logging"
	"tamrah/internal/metrics"
	"tamrah/internal/models"
	"tamrah/internal/repositories"
)

const (
	// DefaultImageCategory is used when an upload names no category.
	DefaultImageCategory = "dates"
	// FilesPathPrefix is the public route stored blobs are served from.
	FilesPathPrefix = "/api/files/"

	maxKeyAttempts = 3
)

// ImageService stores uploaded images in the blob store and serves them back.
type ImageService struct {
	blobs repositories.BlobRepository
	now   func() time.Time
}

// NewImageService creates a new ImageService.
func NewImageService(blobs repositories.BlobRepository) *ImageService {
	return &ImageService{
		blobs: blobs,
		now:   time.Now,
	}
}

// BlobKey returns the storage key for an upload: {category}/{unix_ms}-{filename}.
func BlobKey(category string, at time.Time, filename string) string {
	return fmt.Sprintf("%s/%d-%s", category, at.UnixMilli(), filename)
}

// UploadImage stores data under a fresh key and returns the key with the
// URL it is served from. When the key is already taken, a random component
// is added rather than overwriting the existing object.
func (s *ImageService) UploadImage(ctx context.Context, category, filename, contentType string, data []byte) (*models.UploadResult, error) {
	if len(data) == 0 {
		return nil, models.NewValidationError("image", "is required")
	}
	contentType = resolveContentType(contentType, data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, models.NewValidationError("image", fmt.Sprintf("content type %q is not an image", contentType))
	}

	category = cleanCategory(category)
	filename = cleanFilename(filename)
	sum := sha256.Sum256(data)
	blob := &models.Blob{
		Key:         BlobKey(category, s.now(), filename),
		ContentType: contentType,
		ETag:        `"` + hex.EncodeToString(sum[:]) + `"`,
		Data:        data,
	}

	for attempt := 1; ; attempt++ {
		err := s.blobs.PutIfAbsent(ctx, blob)
		if err == nil {
			break
		}
		if !errors.Is(err, models.ErrConflict) || attempt == maxKeyAttempts {
			return nil, err
		}
		logging.Debug().Str("key", blob.Key).Msg("Blob key taken, retrying with random component")
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		blob.Key = fmt.Sprintf("%s/%d-%s-%s", category, s.now().UnixMilli(), suffix, filename)
	}

	metrics.BlobUploadBytes.Add(float64(len(data)))
	return &models.UploadResult{
		ImageURL: FilesPathPrefix + url.PathEscape(blob.Key),
		Key:      blob.Key,
	}, nil
}

// GetImage returns the blob stored under key.
func (s *ImageService) GetImage(ctx context.Context, key string) (*models.Blob, error) {
	if key == "" {
		return nil, fmt.Errorf("empty key: %w", models.ErrNotFound)
	}
	return s.blobs.Get(ctx, key)
}

func resolveContentType(declared string, data []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
			return mediaType
		}
	}
	detected, _, _ := mime.ParseMediaType(mimetype.Detect(data).String())
	return detected
}

func cleanCategory(category string) string {
	category = strings.Trim(strings.TrimSpace(category), "/")
	if category == "" {
		return DefaultImageCategory
	}
	return category
}

func cleanFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload"
	}
	return name
}
