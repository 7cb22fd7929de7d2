package services

import (
	"context"
	"fmt"

	"github.com/arzan03/aircnc-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// The driver only returns results for acknowledged writes, so every result
// built here is acknowledged.

func insertResult(res *mongo.InsertOneResult) models.InsertResult {
	return models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateResult(res *mongo.UpdateResult) models.UpdateResult {
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func deleteResult(res *mongo.DeleteResult) models.DeleteResult {
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

func parseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %w", ErrInvalidID, id, err)
	}
	return objID, nil
}

// withoutID copies doc without a client supplied _id, leaving id assignment
// to the storage layer.
func withoutID(doc models.Document) models.Document {
	out := make(models.Document, len(doc))
	for k, v := range doc {
		if k == models.FieldID {
			continue
		}
		out[k] = v
	}
	return out
}

func findAll(ctx context.Context, coll *mongo.Collection, filter any) ([]models.Document, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []models.Document{}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func byID(id primitive.ObjectID) bson.M {
	return bson.M{models.FieldID: id}
}
