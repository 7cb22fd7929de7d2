package db

import (
	"context"
	"fmt"

	"github.com/arzan03/aircnc-server/internal/config"
	"github.com/arzan03/aircnc-server/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections groups the collections the API reads and writes.
type Collections struct {
	Users    *mongo.Collection
	Rooms    *mongo.Collection
	Bookings *mongo.Collection
}

// NewCollections returns the collection handles of database d.
func NewCollections(d *mongo.Database) Collections {
	return Collections{
		Users:    d.Collection(models.UsersCollection),
		Rooms:    d.Collection(models.RoomsCollection),
		Bookings: d.Collection(models.BookingsCollection),
	}
}

// ClientOptions builds the driver options for cfg.
func ClientOptions(cfg config.Mongo) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetAppName("aircnc").
		// nested documents decode as bson.M so they serialize as JSON objects
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	if cfg.User != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.User,
			Password: cfg.Password,
		})
	}

	return opts
}

// ConnectMongoDB opens the client and pings the deployment. The returned
// client is meant to live for the whole process.
func ConnectMongoDB(ctx context.Context, cfg config.Mongo) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, ClientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("mongodb connection failed: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	return client, nil
}
