package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/arzan03/aircnc-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	key         string
	contentType string
	body        string
	err         error
}

func (f *fakeObjectStore) Put(_ context.Context, key, contentType string, r io.Reader, _ int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.key, f.contentType, f.body = key, contentType, string(b)
	return "http://images.local/room-images/" + key, nil
}

func TestImageService_Upload(t *testing.T) {
	store := &fakeObjectStore{}
	svc := &imageService{store: store, newID: func() string { return "fixed-id" }}

	img, err := svc.Upload(context.Background(), "Cabin.JPG", "image/jpeg", strings.NewReader("jpeg-bytes"), 10)
	require.NoError(t, err)

	assert.Equal(t, models.Image{
		Key: "fixed-id.jpg",
		URL: "http://images.local/room-images/fixed-id.jpg",
	}, img)
	assert.Equal(t, "fixed-id.jpg", store.key)
	assert.Equal(t, "image/jpeg", store.contentType)
	assert.Equal(t, "jpeg-bytes", store.body)
}

func TestImageService_Upload_GeneratesUniqueKeys(t *testing.T) {
	svc := NewImageService(&fakeObjectStore{})

	a, err := svc.Upload(context.Background(), "a.png", "image/png", strings.NewReader("a"), 1)
	require.NoError(t, err)
	b, err := svc.Upload(context.Background(), "a.png", "image/png", strings.NewReader("a"), 1)
	require.NoError(t, err)

	assert.NotEqual(t, a.Key, b.Key)
	assert.True(t, strings.HasSuffix(a.Key, ".png"))
}

func TestImageService_Upload_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
	}{
		{"not an image", "application/pdf", 10},
		{"missing content type", "", 10},
		{"empty file", "image/png", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeObjectStore{}
			svc := NewImageService(store)

			_, err := svc.Upload(context.Background(), "x.png", tt.contentType, strings.NewReader(""), tt.size)
			assert.ErrorIs(t, err, ErrInvalidImage)
			assert.Empty(t, store.key)
		})
	}
}

func TestImageService_Upload_StoreFailure(t *testing.T) {
	storeErr := errors.New("bucket unavailable")
	svc := NewImageService(&fakeObjectStore{err: storeErr})

	_, err := svc.Upload(context.Background(), "x.png", "image/png", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidImage)
}
