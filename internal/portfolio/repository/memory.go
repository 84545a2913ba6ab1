package repository

import (
	"context"
	"sync"
	"time"

	"github.com/pdallen/portfolio/backend/internal/portfolio"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory Store used by tests and for running the API
// without a database. SetError makes every operation fail, which simulates
// a store outage.
type MemoryRepo struct {
	mu        sync.RWMutex
	portfolio []portfolio.Document
	skills    []portfolio.Document
	projects  []portfolio.Document
	contacts  []portfolio.ContactSubmission
	audio     []portfolio.AudioInteraction
	err       error
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// SetError makes all subsequent calls return err; nil restores normal behaviour.
func (m *MemoryRepo) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// AddPortfolio, AddSkills and AddProject store a document as-is, assigning
// an _id the way the real store does.
func (m *MemoryRepo) AddPortfolio(d portfolio.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.portfolio = append(m.portfolio, withID(d))
}

func (m *MemoryRepo) AddSkills(d portfolio.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skills = append(m.skills, withID(d))
}

func (m *MemoryRepo) AddProject(d portfolio.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects = append(m.projects, withID(d))
}

// ContactSubmissions returns a snapshot of stored submissions.
func (m *MemoryRepo) ContactSubmissions() []portfolio.ContactSubmission {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]portfolio.ContactSubmission(nil), m.contacts...)
}

// AudioInteractions returns a snapshot of stored interaction events.
func (m *MemoryRepo) AudioInteractions() []portfolio.AudioInteraction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]portfolio.AudioInteraction(nil), m.audio...)
}

func (m *MemoryRepo) ActivePortfolio(ctx context.Context) (portfolio.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return pickActive(m.portfolio)
}

func (m *MemoryRepo) ActiveSkills(ctx context.Context) (portfolio.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return pickActive(m.skills)
}

func (m *MemoryRepo) ActiveProjects(ctx context.Context) ([]portfolio.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []portfolio.Document{}
	for _, d := range m.projects {
		if len(out) == ProjectLimit {
			break
		}
		if isActive(d) {
			out = append(out, copyDoc(d))
		}
	}
	return out, nil
}

func (m *MemoryRepo) InsertContactSubmission(ctx context.Context, s *portfolio.ContactSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.contacts = append(m.contacts, *s)
	return nil
}

func (m *MemoryRepo) InsertAudioInteraction(ctx context.Context, a *portfolio.AudioInteraction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.audio = append(m.audio, *a)
	return nil
}

func (m *MemoryRepo) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

// pickActive applies the singleton rule: latest updated_at wins, later
// insertion breaks ties.
func pickActive(docs []portfolio.Document) (portfolio.Document, error) {
	var best portfolio.Document
	var bestAt time.Time
	for _, d := range docs {
		if !isActive(d) {
			continue
		}
		at := updatedAt(d)
		if best == nil || !at.Before(bestAt) {
			best, bestAt = d, at
		}
	}
	if best == nil {
		return nil, ErrNotFound
	}
	return copyDoc(best), nil
}

func isActive(d portfolio.Document) bool {
	v, ok := d["active"].(bool)
	return ok && v
}

func updatedAt(d portfolio.Document) time.Time {
	switch v := d["updated_at"].(type) {
	case time.Time:
		return v
	case primitive.DateTime:
		return v.Time()
	}
	return time.Time{}
}

func withID(d portfolio.Document) portfolio.Document {
	out := copyDoc(d)
	if _, ok := out["_id"]; !ok {
		out["_id"] = primitive.NewObjectID()
	}
	return out
}

// copyDoc copies the top level so callers can drop fields without touching
// the stored document.
func copyDoc(d portfolio.Document) portfolio.Document {
	out := make(portfolio.Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
