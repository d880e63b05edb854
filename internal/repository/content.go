// Package repository provides data access layer implementations for the
// application. Repositories are the only components that speak to the store.
// "Not found" is a value here, never an error: lookups return (nil, nil) and
// deletes return false when no row matches.
package repository

import (
	"context"
	"errors"

	"reelvault/internal/cache"
	"reelvault/internal/models"
	"reelvault/internal/observability"

	"gorm.io/gorm"
)

// ContentRepository defines the interface for catalog entry data operations.
type ContentRepository interface {
	List(ctx context.Context) ([]*models.Content, error)
	ListPublished(ctx context.Context) ([]*models.Content, error)
	GetByID(ctx context.Context, id uint) (*models.Content, error)
	Create(ctx context.Context, content *models.Content) error
	Update(ctx context.Context, content *models.Content) error
	Delete(ctx context.Context, id uint) (bool, error)
	IncrementViews(ctx context.Context, id uint) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) List(ctx context.Context) ([]*models.Content, error) {
	defer observability.TrackQuery("list", "content")()

	var entries []*models.Content
	err := cache.Aside(ctx, cache.ContentListKey, &entries, cache.ReadTTL, func() error {
		return r.db.WithContext(ctx).
			Order("created_at DESC").
			Find(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *contentRepository) ListPublished(ctx context.Context) ([]*models.Content, error) {
	defer observability.TrackQuery("list_published", "content")()

	var entries []*models.Content
	err := cache.Aside(ctx, cache.ContentPublishedKey, &entries, cache.ReadTTL, func() error {
		return r.db.WithContext(ctx).
			Where("status = ?", models.ContentStatusPublished).
			Order("created_at DESC").
			Find(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id uint) (*models.Content, error) {
	defer observability.TrackQuery("get", "content")()

	var entry models.Content
	err := cache.Aside(ctx, cache.ContentKey(id), &entry, cache.ReadTTL, func() error {
		return r.db.WithContext(ctx).First(&entry, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	defer observability.TrackQuery("create", "content")()

	if err := r.db.WithContext(ctx).Create(content).Error; err != nil {
		return err
	}
	cache.InvalidateContentLists(ctx)
	return nil
}

func (r *contentRepository) Update(ctx context.Context, content *models.Content) error {
	defer observability.TrackQuery("update", "content")()

	// Save writes every column and refreshes updated_at, even when the caller
	// changed nothing.
	if err := r.db.WithContext(ctx).Save(content).Error; err != nil {
		return err
	}
	cache.InvalidateContent(ctx, content.ID)
	return nil
}

func (r *contentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	defer observability.TrackQuery("delete", "content")()

	result := r.db.WithContext(ctx).Delete(&models.Content{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.InvalidateContent(ctx, id)
	return true, nil
}

func (r *contentRepository) IncrementViews(ctx context.Context, id uint) error {
	defer observability.TrackQuery("increment_views", "content")()

	err := r.db.WithContext(ctx).
		Model(&models.Content{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return err
	}
	cache.InvalidateContent(ctx, id)
	return nil
}
