package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arzan03/aircnc-server/internal/models"
	"github.com/google/uuid"
)

// ObjectStore is where uploaded images end up.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
}

type imageService struct {
	store ObjectStore
	newID func() string
}

// NewImageService returns an ImageService writing to store.
func NewImageService(store ObjectStore) ImageService {
	return &imageService{
		store: store,
		newID: uuid.NewString,
	}
}

// Upload stores an image under a fresh random key that keeps the extension
// of filename.
func (s *imageService) Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (models.Image, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return models.Image{}, fmt.Errorf("%w: unsupported content type %q", ErrInvalidImage, contentType)
	}
	if size <= 0 {
		return models.Image{}, fmt.Errorf("%w: empty file", ErrInvalidImage)
	}

	key := s.newID() + strings.ToLower(filepath.Ext(filename))
	url, err := s.store.Put(ctx, key, contentType, r, size)
	if err != nil {
		return models.Image{}, fmt.Errorf("failed to store image: %w", err)
	}

	return models.Image{Key: key, URL: url}, nil
}
