package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arzan03/aircnc-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type roomService struct {
	rooms *mongo.Collection
}

// NewRoomService returns a RoomService backed by the rooms collection.
func NewRoomService(rooms *mongo.Collection) RoomService {
	return &roomService{rooms: rooms}
}

func (s *roomService) Create(ctx context.Context, room models.Document) (models.InsertResult, error) {
	res, err := s.rooms.InsertOne(ctx, withoutID(room))
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("failed to save room: %w", err)
	}
	return insertResult(res), nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (models.Document, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var room models.Document
	err = s.rooms.FindOne(ctx, byID(objID)).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	return room, nil
}

// ListByHost returns the rooms whose embedded host email equals email.
func (s *roomService) ListByHost(ctx context.Context, email string) ([]models.Document, error) {
	rooms, err := findAll(ctx, s.rooms, bson.M{models.FieldHostEmail: email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch host rooms: %w", err)
	}
	return rooms, nil
}

func (s *roomService) List(ctx context.Context) ([]models.Document, error) {
	rooms, err := findAll(ctx, s.rooms, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	return rooms, nil
}

func (s *roomService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := s.rooms.DeleteOne(ctx, byID(objID))
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete room: %w", err)
	}
	return deleteResult(res), nil
}

// SetBooked sets the booked flag of a room. Bookings never change it on
// their own; callers update both.
func (s *roomService) SetBooked(ctx context.Context, id string, booked bool) (models.UpdateResult, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	res, err := s.rooms.UpdateOne(ctx, byID(objID), bson.M{"$set": bson.M{models.FieldBooked: booked}})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to update room status: %w", err)
	}
	return updateResult(res), nil
}
