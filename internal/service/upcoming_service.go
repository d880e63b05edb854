package service

import (
	"context"

	"reelvault/internal/models"
	"reelvault/internal/repository"
	"reelvault/internal/validation"
)

// UpcomingService handles upcoming-content operations.
type UpcomingService struct {
	repo repository.UpcomingRepository
}

// NewUpcomingService creates a new upcoming-content service.
func NewUpcomingService(repo repository.UpcomingRepository) *UpcomingService {
	return &UpcomingService{repo: repo}
}

// List returns all announcements ordered by their display-ordering key.
func (s *UpcomingService) List(ctx context.Context) ([]*models.UpcomingContent, error) {
	return s.repo.List(ctx)
}

// Get returns one announcement, or (nil, nil) when the id matches nothing.
func (s *UpcomingService) Get(ctx context.Context, id uint) (*models.UpcomingContent, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the insert payload (coercing the release date string) and
// persists a new announcement.
func (s *UpcomingService) Create(ctx context.Context, in *validation.UpcomingInsert) (*models.UpcomingContent, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	entry := in.Model()
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update applies a partial update. Returns (nil, nil) when the id matches
// nothing.
func (s *UpcomingService) Update(ctx context.Context, id uint, patch *validation.UpcomingPatch) (*models.UpcomingContent, error) {
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

// Delete removes one announcement, reporting false when the id matched nothing.
func (s *UpcomingService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}
