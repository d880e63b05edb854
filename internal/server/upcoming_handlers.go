package server

import (
	"reelvault/internal/models"
	"reelvault/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetUpcomingList handles GET /api/upcoming-content.
func (s *Server) GetUpcomingList(c *fiber.Ctx) error {
	entries, err := s.upcomingSvc.List(c.Context())
	if err != nil {
		return respondOperationError(c, err, "fetch upcoming content")
	}
	return c.JSON(entries)
}

// GetUpcoming handles GET /api/upcoming-content/:id.
func (s *Server) GetUpcoming(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	entry, err := s.upcomingSvc.Get(c.Context(), id)
	if err != nil {
		return respondOperationError(c, err, "fetch upcoming content")
	}
	if entry == nil {
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("Upcoming content"))
	}
	return c.JSON(entry)
}

// CreateUpcoming handles POST /api/upcoming-content.
func (s *Server) CreateUpcoming(c *fiber.Ctx) error {
	var in validation.UpcomingInsert
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.upcomingSvc.Create(c.Context(), &in)
	if err != nil {
		return respondOperationError(c, err, "create upcoming content")
	}
	return c.JSON(entry)
}

// UpdateUpcoming handles PUT /api/upcoming-content/:id.
func (s *Server) UpdateUpcoming(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var patch validation.UpcomingPatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.upcomingSvc.Update(c.Context(), id, &patch)
	if err != nil {
		return respondOperationError(c, err, "update upcoming content")
	}
	if entry == nil {
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("Upcoming content"))
	}
	return c.JSON(entry)
}

// DeleteUpcoming handles DELETE /api/upcoming-content/:id.
func (s *Server) DeleteUpcoming(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	removed, err := s.upcomingSvc.Delete(c.Context(), id)
	if err != nil {
		return respondOperationError(c, err, "delete upcoming content")
	}
	if !removed {
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("Upcoming content"))
	}
	return c.JSON(fiber.Map{"success": true})
}
