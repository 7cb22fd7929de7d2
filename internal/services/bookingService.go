package services

import (
	"context"
	"fmt"

	"github.com/arzan03/aircnc-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type bookingService struct {
	bookings *mongo.Collection
}

// NewBookingService returns a BookingService backed by the bookings collection.
func NewBookingService(bookings *mongo.Collection) BookingService {
	return &bookingService{bookings: bookings}
}

func (s *bookingService) Create(ctx context.Context, booking models.Document) (models.InsertResult, error) {
	res, err := s.bookings.InsertOne(ctx, withoutID(booking))
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("failed to save booking: %w", err)
	}
	return insertResult(res), nil
}

func (s *bookingService) ListByGuest(ctx context.Context, email string) ([]models.Document, error) {
	bookings, err := findAll(ctx, s.bookings, bson.M{models.FieldGuestEmail: email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest bookings: %w", err)
	}
	return bookings, nil
}

// ListByHost matches the plain string host as well as an embedded host
// document.
func (s *bookingService) ListByHost(ctx context.Context, email string) ([]models.Document, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{models.FieldHost: email},
		bson.M{models.FieldHostEmail: email},
	}}

	bookings, err := findAll(ctx, s.bookings, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch host bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := s.bookings.DeleteOne(ctx, byID(objID))
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete booking: %w", err)
	}
	return deleteResult(res), nil
}
