package services

import (
	"context"
	"io"

	"github.com/arzan03/aircnc-server/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// UserService stores user profiles keyed by email.
type UserService interface {
	// Upsert merges user into the document with the given email, creating it
	// when absent.
	Upsert(ctx context.Context, email string, user models.Document) (models.UpdateResult, error)
	// GetByEmail returns nil and no error when the user does not exist.
	GetByEmail(ctx context.Context, email string) (models.Document, error)
}

// RoomService stores room listings.
type RoomService interface {
	Create(ctx context.Context, room models.Document) (models.InsertResult, error)
	// GetByID returns nil and no error when the room does not exist.
	GetByID(ctx context.Context, id string) (models.Document, error)
	ListByHost(ctx context.Context, email string) ([]models.Document, error)
	List(ctx context.Context) ([]models.Document, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
	SetBooked(ctx context.Context, id string, booked bool) (models.UpdateResult, error)
}

// BookingService stores bookings.
type BookingService interface {
	Create(ctx context.Context, booking models.Document) (models.InsertResult, error)
	ListByGuest(ctx context.Context, email string) ([]models.Document, error)
	ListByHost(ctx context.Context, email string) ([]models.Document, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	IssueToken(payload map[string]any) (string, error)
	ParseToken(token string) (jwt.MapClaims, error)
}

// ImageService uploads listing images.
type ImageService interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (models.Image, error)
}
