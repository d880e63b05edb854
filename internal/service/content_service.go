// Package service orchestrates validation and data access for the catalog
// API. Services return (nil, nil) untouched when the repository reports an
// absence; handlers translate that into a 404.
package service

import (
	"context"

	"reelvault/internal/models"
	"reelvault/internal/repository"
	"reelvault/internal/validation"
)

// ContentService handles catalog entry operations.
type ContentService struct {
	repo repository.ContentRepository
}

// NewContentService creates a new content service.
func NewContentService(repo repository.ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

// List returns all catalog entries, newest first.
func (s *ContentService) List(ctx context.Context) ([]*models.Content, error) {
	return s.repo.List(ctx)
}

// ListPublished returns published entries only, newest first.
func (s *ContentService) ListPublished(ctx context.Context) ([]*models.Content, error) {
	return s.repo.ListPublished(ctx)
}

// Get returns one entry, or (nil, nil) when the id matches nothing.
func (s *ContentService) Get(ctx context.Context, id uint) (*models.Content, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the insert payload and persists a new entry, returning the
// stored record with its server-assigned fields.
func (s *ContentService) Create(ctx context.Context, in *validation.ContentInsert) (*models.Content, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	entry := in.Model()
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update applies a partial update. Only supplied fields change; the
// last-modified timestamp refreshes even for an empty patch. Returns
// (nil, nil) when the id matches nothing.
func (s *ContentService) Update(ctx context.Context, id uint, patch *validation.ContentPatch) (*models.Content, error) {
	if fields := patch.Validate(); len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	patch.Apply(entry)
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete removes one entry, reporting false when the id matched nothing.
func (s *ContentService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}
