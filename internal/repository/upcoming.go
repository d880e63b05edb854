package repository

import (
	"context"
	"errors"

	"reelvault/internal/cache"
	"reelvault/internal/models"
	"reelvault/internal/observability"

	"gorm.io/gorm"
)

// UpcomingRepository defines the interface for upcoming-content data operations.
type UpcomingRepository interface {
	List(ctx context.Context) ([]*models.UpcomingContent, error)
	GetByID(ctx context.Context, id uint) (*models.UpcomingContent, error)
	Create(ctx context.Context, upcoming *models.UpcomingContent) error
	Update(ctx context.Context, upcoming *models.UpcomingContent) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type upcomingRepository struct {
	db *gorm.DB
}

// NewUpcomingRepository creates a new upcoming-content repository.
func NewUpcomingRepository(db *gorm.DB) UpcomingRepository {
	return &upcomingRepository{db: db}
}

func (r *upcomingRepository) List(ctx context.Context) ([]*models.UpcomingContent, error) {
	defer observability.TrackQuery("list", "upcoming_content")()

	var entries []*models.UpcomingContent
	err := cache.Aside(ctx, cache.UpcomingListKey, &entries, cache.ReadTTL, func() error {
		// Listing order is the explicit display-ordering key, not recency.
		return r.db.WithContext(ctx).
			Order("display_order ASC").
			Find(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *upcomingRepository) GetByID(ctx context.Context, id uint) (*models.UpcomingContent, error) {
	defer observability.TrackQuery("get", "upcoming_content")()

	var entry models.UpcomingContent
	err := r.db.WithContext(ctx).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *upcomingRepository) Create(ctx context.Context, upcoming *models.UpcomingContent) error {
	defer observability.TrackQuery("create", "upcoming_content")()

	if err := r.db.WithContext(ctx).Create(upcoming).Error; err != nil {
		return err
	}
	cache.InvalidateUpcoming(ctx)
	return nil
}

func (r *upcomingRepository) Update(ctx context.Context, upcoming *models.UpcomingContent) error {
	defer observability.TrackQuery("update", "upcoming_content")()

	if err := r.db.WithContext(ctx).Save(upcoming).Error; err != nil {
		return err
	}
	cache.InvalidateUpcoming(ctx)
	return nil
}

func (r *upcomingRepository) Delete(ctx context.Context, id uint) (bool, error) {
	defer observability.TrackQuery("delete", "upcoming_content")()

	result := r.db.WithContext(ctx).Delete(&models.UpcomingContent{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.InvalidateUpcoming(ctx)
	return true, nil
}
