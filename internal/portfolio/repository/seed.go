package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pdallen/portfolio/backend/internal/database"
	"github.com/pdallen/portfolio/backend/internal/portfolio"
	"go.mongodb.org/mongo-driver/bson"
)

// Seed describes the content written by MongoRepo.Seed.
type Seed struct {
	Portfolio portfolio.Document
	Skills    portfolio.Document
	Projects  []portfolio.Project
	// Deactivate clears the active flag on existing documents first, so the
	// new singletons are the only active ones.
	Deactivate bool
	Now        time.Time
}

// Seed writes active portfolio, skills and project documents.
func (m *MongoRepo) Seed(ctx context.Context, s Seed) error {
	if s.Now.IsZero() {
		s.Now = time.Now().UTC()
	}
	if s.Deactivate {
		for _, name := range []string{database.PortfolioCollection, database.SkillsCollection, database.ProjectsCollection} {
			if _, err := m.db.Collection(name).UpdateMany(ctx, activeFilter, bson.M{"$set": bson.M{"active": false, "updated_at": s.Now}}); err != nil {
				return fmt.Errorf("deactivate %s: %w", name, err)
			}
		}
	}
	if s.Portfolio != nil {
		if _, err := m.db.Collection(database.PortfolioCollection).InsertOne(ctx, activeCopy(s.Portfolio, s.Now)); err != nil {
			return fmt.Errorf("seed portfolio: %w", err)
		}
	}
	if s.Skills != nil {
		if _, err := m.db.Collection(database.SkillsCollection).InsertOne(ctx, activeCopy(s.Skills, s.Now)); err != nil {
			return fmt.Errorf("seed skills: %w", err)
		}
	}
	if len(s.Projects) > 0 {
		active := true
		docs := make([]interface{}, 0, len(s.Projects))
		for _, p := range s.Projects {
			p.Active = &active
			docs = append(docs, p)
		}
		if _, err := m.db.Collection(database.ProjectsCollection).InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
	}
	return nil
}

func activeCopy(d portfolio.Document, now time.Time) portfolio.Document {
	out := make(portfolio.Document, len(d)+2)
	for k, v := range d {
		out[k] = v
	}
	out["active"] = true
	out["updated_at"] = now
	return out
}
