package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return NewValidationError("invalid request: %v", err)
	}
	return nil
}

func SuccessResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"message": message,
		"data":    data,
	}
}

// ErrorHandlerMiddleware converts typed service errors into the JSON error
// envelope. Messages from internal failures are not echoed verbatim to
// avoid leaking provider details.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Message})
		}

		var ue *UpstreamError
		if errors.As(err, &ue) {
			return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": ue.Service + " is currently unavailable"})
		}

		var ee *ExtractionError
		if errors.As(err, &ee) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read the uploaded document"})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
