package server

import (
	"reelvault/internal/models"
	"reelvault/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// RecordAnalyticsEvent handles POST /api/analytics.
func (s *Server) RecordAnalyticsEvent(c *fiber.Ctx) error {
	var in validation.AnalyticsInsert
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, err := s.analyticsSvc.Record(c.Context(), &in)
	if err != nil {
		return respondOperationError(c, err, "record analytics event")
	}
	return c.JSON(event)
}

// GetAnalytics handles GET /api/analytics. This is the one aggregate read in
// the API.
func (s *Server) GetAnalytics(c *fiber.Ctx) error {
	summary, err := s.analyticsSvc.Aggregate(c.Context())
	if err != nil {
		return respondOperationError(c, err, "fetch analytics")
	}
	return c.JSON(summary)
}
