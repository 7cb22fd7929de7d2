package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arzan03/aircnc-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userService struct {
	users *mongo.Collection
}

// NewUserService returns a UserService backed by the users collection.
func NewUserService(users *mongo.Collection) UserService {
	return &userService{users: users}
}

// Upsert $sets the fields of user on the document matching email. Fields not
// present in user keep their stored values. The stored email always equals
// the key, whatever the body says.
func (s *userService) Upsert(ctx context.Context, email string, user models.Document) (models.UpdateResult, error) {
	set := withoutID(user)
	set[models.FieldEmail] = email

	res, err := s.users.UpdateOne(ctx,
		bson.M{models.FieldEmail: email},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to upsert user: %w", err)
	}
	return updateResult(res), nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (models.Document, error) {
	var user models.Document
	err := s.users.FindOne(ctx, bson.M{models.FieldEmail: email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
