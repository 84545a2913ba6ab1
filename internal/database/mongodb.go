package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the portfolio API.
const (
	PortfolioCollection = "portfolio_data"
	ProjectsCollection  = "projects"
	SkillsCollection    = "skills"
	ContactCollection   = "contact_submissions"
	AudioCollection     = "audio_interactions"
)

// Connect creates a client for uri. The driver connects lazily, so an
// unreachable server is only reported by Ping. Caller should call client.Disconnect(ctx).
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		// nested documents decode as maps so they render as JSON objects
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	return client, nil
}

// Ping checks that the primary is reachable within timeout.
func Ping(ctx context.Context, client *mongo.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes the API relies on. Creating an
// existing index is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	active := mongo.IndexModel{Keys: bson.D{{Key: "active", Value: 1}, {Key: "updated_at", Value: -1}}}
	for _, name := range []string{PortfolioCollection, SkillsCollection, ProjectsCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, active); err != nil {
			return fmt.Errorf("create index on %s: %w", name, err)
		}
	}
	if _, err := db.Collection(ContactCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("create index on %s: %w", ContactCollection, err)
	}
	if _, err := db.Collection(ContactCollection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "submitted_at", Value: -1}}}); err != nil {
		return fmt.Errorf("create index on %s: %w", ContactCollection, err)
	}
	if _, err := db.Collection(AudioCollection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}); err != nil {
		return fmt.Errorf("create index on %s: %w", AudioCollection, err)
	}
	return nil
}
