package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/asthait/studentms/internal/config"
	"github.com/asthait/studentms/internal/pkg/helpers"
)

// Collection names
const (
	StudentCollection = "students"
	TeacherCollection = "teachers"
)

// MongoDB database connection structure
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects to MongoDB using the configured connection string
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	timeout := helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database.Name),
	}, nil
}

// EnsureIndexes creates the unique indexes the API relies on: email and the
// immutable identifier field of each collection. Index names match the field
// names so duplicate key errors can be mapped back to the offending field.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	studentIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email"),
		},
		{
			Keys:    bson.D{{Key: "registrationId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("registrationId"),
		},
	}
	if _, err := db.Database.Collection(StudentCollection).Indexes().CreateMany(ctx, studentIndexes); err != nil {
		return fmt.Errorf("failed to create student indexes: %w", err)
	}

	teacherIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email"),
		},
		{
			Keys:    bson.D{{Key: "teacherId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("teacherId"),
		},
	}
	if _, err := db.Database.Collection(TeacherCollection).Indexes().CreateMany(ctx, teacherIndexes); err != nil {
		return fmt.Errorf("failed to create teacher indexes: %w", err)
	}

	return nil
}

// Close disconnects the client
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}
