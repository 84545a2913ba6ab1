package repository

import (
	"context"
	"errors"

	"github.com/pdallen/portfolio/backend/internal/portfolio"
)

var (
	// ErrNotFound is returned when a collection holds no active document.
	ErrNotFound = errors.New("no active document")
)

// ProjectLimit caps the number of projects returned by ActiveProjects.
const ProjectLimit = 100

// Store is the document store as seen by the portfolio service.
//
// When several singleton documents are flagged active, ActivePortfolio and
// ActiveSkills return the one with the latest updated_at; documents without
// updated_at rank by insertion order, newest first.
type Store interface {
	ActivePortfolio(ctx context.Context) (portfolio.Document, error)
	ActiveSkills(ctx context.Context) (portfolio.Document, error)
	ActiveProjects(ctx context.Context) ([]portfolio.Document, error)
	InsertContactSubmission(ctx context.Context, s *portfolio.ContactSubmission) error
	InsertAudioInteraction(ctx context.Context, a *portfolio.AudioInteraction) error
	Ping(ctx context.Context) error
}
