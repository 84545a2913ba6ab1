package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pdallen/portfolio/backend/internal/portfolio"
	"github.com/pdallen/portfolio/backend/internal/portfolio/repository"
	"github.com/pdallen/portfolio/backend/pkg/logger"
	"github.com/pdallen/portfolio/backend/pkg/metrics"
)

var (
	ErrProjectsUnavailable = errors.New("failed to fetch projects")
	ErrContactNotSaved     = errors.New("failed to submit contact form")
	ErrInteractionNotSaved = errors.New("failed to log interaction")
)

// Service defines the portfolio operations used by the handler layer.
//
// PortfolioData and Skills never fail: store errors and missing documents
// are masked with built-in content. Projects and SubmitContact surface store
// failures. LogAudioInteraction reports failures but callers are expected to
// treat them as best-effort.
type Service interface {
	PortfolioData(ctx context.Context) portfolio.Document
	Skills(ctx context.Context) portfolio.Document
	Projects(ctx context.Context) ([]portfolio.Document, error)
	SubmitContact(ctx context.Context, req portfolio.ContactRequest) (*portfolio.ContactSubmission, error)
	LogAudioInteraction(ctx context.Context, req portfolio.AudioInteractionRequest, clientIP string) error
}

// Option customises a PortfolioService.
type Option func(*PortfolioService)

// WithClock replaces the wall clock used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *PortfolioService) { s.now = now }
}

// WithIDGenerator replaces the record identifier generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *PortfolioService) { s.newID = newID }
}

// PortfolioService implements Service on top of a repository.Store.
type PortfolioService struct {
	store repository.Store
	now   func() time.Time
	newID func() string
}

func New(store repository.Store, opts ...Option) *PortfolioService {
	s := &PortfolioService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *PortfolioService) PortfolioData(ctx context.Context) portfolio.Document {
	d, err := s.store.ActivePortfolio(ctx)
	if err != nil {
		s.fallback("portfolio", err)
		return portfolio.DefaultPortfolioData()
	}
	delete(d, "_id")
	return d
}

func (s *PortfolioService) Skills(ctx context.Context) portfolio.Document {
	d, err := s.store.ActiveSkills(ctx)
	if err != nil {
		s.fallback("skills", err)
		return portfolio.DefaultSkillsData()
	}
	delete(d, "_id")
	return d
}

func (s *PortfolioService) fallback(section string, err error) {
	if !errors.Is(err, repository.ErrNotFound) {
		logger.Errorf("Error fetching %s data: %v", section, err)
		metrics.StoreErrors.WithLabelValues(section).Inc()
	}
	metrics.FallbackServed.WithLabelValues(section).Inc()
}

func (s *PortfolioService) Projects(ctx context.Context) ([]portfolio.Document, error) {
	list, err := s.store.ActiveProjects(ctx)
	if err != nil {
		logger.Errorf("Error fetching projects: %v", err)
		metrics.StoreErrors.WithLabelValues("projects").Inc()
		return nil, ErrProjectsUnavailable
	}
	if list == nil {
		list = []portfolio.Document{}
	}
	for _, d := range list {
		delete(d, "_id")
	}
	return list, nil
}

func (s *PortfolioService) SubmitContact(ctx context.Context, req portfolio.ContactRequest) (*portfolio.ContactSubmission, error) {
	sub := &portfolio.ContactSubmission{
		ID:          s.newID(),
		Name:        deref(req.Name),
		Email:       req.Email,
		Message:     deref(req.Message),
		ProjectType: req.ProjectType,
		SubmittedAt: s.now(),
		Status:      portfolio.StatusNew,
	}
	if err := s.store.InsertContactSubmission(ctx, sub); err != nil {
		logger.Errorf("Error submitting contact form: %v", err)
		metrics.StoreErrors.WithLabelValues("contact").Inc()
		metrics.ContactSubmissions.WithLabelValues("failed").Inc()
		return nil, ErrContactNotSaved
	}
	logger.Infof("Contact form submitted by %s", sub.Email)
	metrics.ContactSubmissions.WithLabelValues("stored").Inc()
	return sub, nil
}

func (s *PortfolioService) LogAudioInteraction(ctx context.Context, req portfolio.AudioInteractionRequest, clientIP string) error {
	var ts float64
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}
	ev := &portfolio.AudioInteraction{
		ID:        s.newID(),
		Action:    deref(req.Action),
		Excerpt:   deref(req.Excerpt),
		Timestamp: ts,
		CreatedAt: s.now(),
	}
	if clientIP != "" {
		ev.IPAddress = &clientIP
	}
	if err := s.store.InsertAudioInteraction(ctx, ev); err != nil {
		logger.Errorf("Error logging audio interaction: %v", err)
		metrics.StoreErrors.WithLabelValues("audio").Inc()
		metrics.AudioInteractions.WithLabelValues("failed").Inc()
		return ErrInteractionNotSaved
	}
	metrics.AudioInteractions.WithLabelValues("stored").Inc()
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
