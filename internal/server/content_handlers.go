package server

import (
	"reelvault/internal/models"
	"reelvault/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetContentList handles GET /api/content.
func (s *Server) GetContentList(c *fiber.Ctx) error {
	entries, err := s.contentSvc.List(c.Context())
	if err != nil {
		return respondOperationError(c, err, "fetch content")
	}
	return c.JSON(entries)
}

// GetPublishedContent handles GET /api/content/published.
func (s *Server) GetPublishedContent(c *fiber.Ctx) error {
	entries, err := s.contentSvc.ListPublished(c.Context())
	if err != nil {
		return respondOperationError(c, err, "fetch published content")
	}
	return c.JSON(entries)
}

// GetContent handles GET /api/content/:id.
func (s *Server) GetContent(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	entry, err := s.contentSvc.Get(c.Context(), id)
	if err != nil {
		return respondOperationError(c, err, "fetch content")
	}
	if entry == nil {
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("Content"))
	}
	return c.JSON(entry)
}

// CreateContent handles POST /api/content.
func (s *Server) CreateContent(c *fiber.Ctx) error {
	var in validation.ContentInsert
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.contentSvc.Create(c.Context(), &in)
	if err != nil {
		return respondOperationError(c, err, "create content")
	}
	return c.JSON(entry)
}

// UpdateContent handles PUT /api/content/:id.
func (s *Server) UpdateContent(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var patch validation.ContentPatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.contentSvc.Update(c.Context(), id, &patch)
	if err != nil {
		return respondOperationError(c, err, "update content")
	}
	if entry == nil {
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("Content"))
	}
	return c.JSON(entry)
}

// DeleteContent handles DELETE /api/content/:id.
func (s *Server) DeleteContent(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	removed, err := s.contentSvc.Delete(c.Context(), id)
	if err != nil {
		return respondOperationError(c, err, "delete content")
	}
	if !removed {
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("Content"))
	}
	return c.JSON(fiber.Map{"success": true})
}
