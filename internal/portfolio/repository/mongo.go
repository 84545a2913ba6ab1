package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdallen/portfolio/backend/internal/database"
	"github.com/pdallen/portfolio/backend/internal/portfolio"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoRepo implements Store on top of a MongoDB database. The underlying
// client is shared by all requests and pools its own connections.
type MongoRepo struct {
	db *mongo.Database
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{db: db}
}

var activeFilter = bson.M{"active": true}

func (m *MongoRepo) ActivePortfolio(ctx context.Context) (portfolio.Document, error) {
	return m.findActive(ctx, database.PortfolioCollection)
}

func (m *MongoRepo) ActiveSkills(ctx context.Context) (portfolio.Document, error) {
	return m.findActive(ctx, database.SkillsCollection)
}

func (m *MongoRepo) findActive(ctx context.Context, collection string) (portfolio.Document, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}, {Key: "_id", Value: -1}})
	var d portfolio.Document
	err := m.db.Collection(collection).FindOne(ctx, activeFilter, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find active %s: %w", collection, err)
	}
	return d, nil
}

// ActiveProjects returns active projects in natural order.
func (m *MongoRepo) ActiveProjects(ctx context.Context) ([]portfolio.Document, error) {
	cur, err := m.db.Collection(database.ProjectsCollection).Find(ctx, activeFilter, options.Find().SetLimit(ProjectLimit))
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	defer cur.Close(ctx)
	out := []portfolio.Document{}
	for cur.Next(ctx) {
		var d portfolio.Document
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		out = append(out, d)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) InsertContactSubmission(ctx context.Context, s *portfolio.ContactSubmission) error {
	if _, err := m.db.Collection(database.ContactCollection).InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

func (m *MongoRepo) InsertAudioInteraction(ctx context.Context, a *portfolio.AudioInteraction) error {
	if _, err := m.db.Collection(database.AudioCollection).InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert audio interaction: %w", err)
	}
	return nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, readpref.Primary())
}
