package service

import (
	"context"
	"time"

	"reelvault/internal/models"
	"reelvault/internal/observability"
	"reelvault/internal/repository"
	"reelvault/internal/validation"

	"github.com/google/uuid"
)

// AnalyticsService records engagement events and serves the dashboard
// aggregate.
type AnalyticsService struct {
	repo        repository.AnalyticsRepository
	contentRepo repository.ContentRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(repo repository.AnalyticsRepository, contentRepo repository.ContentRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo, contentRepo: contentRepo}
}

// Record validates and persists one immutable event. The timestamp is always
// server-assigned, and a session id is generated when the client sent none.
// A view event against a known content id also bumps that entry's
// server-managed view counter.
func (s *AnalyticsService) Record(ctx context.Context, in *validation.AnalyticsInsert) (*models.AnalyticsEvent, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	event := in.Model()
	event.Timestamp = time.Now().UTC()
	if event.SessionID == "" {
		event.SessionID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	observability.AnalyticsEvents.WithLabelValues(string(event.EventType)).Inc()

	if event.EventType == models.EventTypeView && event.ContentID != nil {
		if err := s.contentRepo.IncrementViews(ctx, *event.ContentID); err != nil {
			return nil, err
		}
	}

	return event, nil
}

// Aggregate returns the dashboard summary.
func (s *AnalyticsService) Aggregate(ctx context.Context) (*models.AnalyticsSummary, error) {
	return s.repo.Aggregate(ctx)
}
