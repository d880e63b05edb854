package server

import (
	"errors"
	"log/slog"

	"reelvault/internal/middleware"
	"reelvault/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts the :id route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondOperationError maps a service failure onto the wire: validation
// errors become a 400 with field detail, everything else an opaque 500
// carrying only the operation name. The cause is logged, never serialized.
func respondOperationError(c *fiber.Ctx, err error, operation string) error {
	if models.IsValidation(err) {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	middleware.Logger.ErrorContext(c.UserContext(), "operation failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		&models.AppError{Code: "INTERNAL_ERROR", Message: "Failed to " + operation})
}
