package serverutils

import (
	"agri-assistant-be/internal/pkg/apperror"
	"agri-assistant-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts classified errors into the wire format:
// `{"error": "..."}` with the status implied by the error kind. Anything
// unclassified is logged and genericized to a 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := statusForKind(apperror.KindOf(err))
		if status == fiber.StatusInternalServerError {
			log.Error("http", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(status).JSON(fiber.Map{
			"error": apperror.PublicMessage(err),
		})
	}
}

func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return fiber.StatusBadRequest
	case apperror.KindAuth:
		return fiber.StatusUnauthorized
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	default:
		// Upstream failures are deliberately reported as plain server errors
		return fiber.StatusInternalServerError
	}
}
