package repository

import (
	"context"

	"reelvault/internal/models"
	"reelvault/internal/observability"

	"gorm.io/gorm"
)

const (
	popularContentLimit = 10
	recentViewsLimit    = 50
)

// AnalyticsRepository defines the interface for engagement event data
// operations. Events are append-only.
type AnalyticsRepository interface {
	Create(ctx context.Context, event *models.AnalyticsEvent) error
	Aggregate(ctx context.Context) (*models.AnalyticsSummary, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	defer observability.TrackQuery("create", "analytics")()

	return r.db.WithContext(ctx).Create(event).Error
}

// Aggregate computes the dashboard summary: total view events, total catalog
// entries, the ten most-viewed entries and the fifty most recent view events.
func (r *analyticsRepository) Aggregate(ctx context.Context) (*models.AnalyticsSummary, error) {
	defer observability.TrackQuery("aggregate", "analytics")()

	summary := &models.AnalyticsSummary{
		PopularContent: []*models.Content{},
		RecentViews:    []*models.AnalyticsEvent{},
	}

	if err := r.db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Where("event_type = ?", models.EventTypeView).
		Count(&summary.TotalViews).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Content{}).
		Count(&summary.TotalContent).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Order("views DESC").
		Limit(popularContentLimit).
		Find(&summary.PopularContent).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("event_type = ?", models.EventTypeView).
		Order("timestamp DESC").
		Limit(recentViewsLimit).
		Find(&summary.RecentViews).Error; err != nil {
		return nil, err
	}

	return summary, nil
}
