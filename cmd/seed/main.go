package main

import (
	"context"
	"flag"
	"os"

	"github.com/pdallen/portfolio/backend/internal/config"
	"github.com/pdallen/portfolio/backend/internal/database"
	"github.com/pdallen/portfolio/backend/internal/portfolio"
	"github.com/pdallen/portfolio/backend/internal/portfolio/repository"
	"github.com/pdallen/portfolio/backend/pkg/logger"
)

// seed writes the built-in portfolio, skills and project content to the
// store as active documents so it can be edited in the database afterwards.
func main() {
	deactivate := flag.Bool("deactivate", true, "mark currently active documents inactive before inserting")
	withProjects := flag.Bool("projects", true, "also insert the default projects")
	flag.Parse()

	logger.Init(os.Getenv("LOG_LEVEL"))
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("failed to create MongoDB client: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	if err := database.Ping(ctx, client, cfg.MongoDB.Timeout); err != nil {
		logger.Fatalf("cannot reach MongoDB: %v", err)
	}

	db := client.Database(cfg.MongoDB.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Warnf("failed to ensure indexes: %v", err)
	}

	s := repository.Seed{
		Portfolio:  portfolio.DefaultPortfolioData(),
		Skills:     portfolio.DefaultSkillsData(),
		Deactivate: *deactivate,
	}
	if *withProjects {
		s.Projects = portfolio.DefaultProjects()
	}
	if err := repository.NewMongoRepo(db).Seed(ctx, s); err != nil {
		logger.Fatalf("seed failed: %v", err)
	}
	logger.Infof("seeded %s: portfolio, skills and %d projects", cfg.MongoDB.Database, len(s.Projects))
}
