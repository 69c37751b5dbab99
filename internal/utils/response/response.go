package response

import (
	"github.com/gofiber/fiber/v2"

	apperrors "moniepaddy/internal/errors"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

// Error writes a failure response carrying a short message plus a structured
// error field. Callers must pass client-safe strings only.
func Error(c *fiber.Ctx, status int, message, detail string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   detail,
	})
}

// Domain writes a failure response whose error detail comes from the domain
// error taxonomy, keeping internals off the wire.
func Domain(c *fiber.Ctx, status int, message string, derr *apperrors.DomainError) error {
	return Error(c, status, message, derr.Message)
}

func BadRequest(c *fiber.Ctx, message, detail string) error {
	return Error(c, fiber.StatusBadRequest, message, detail)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Domain(c, fiber.StatusInternalServerError, message, apperrors.ErrInternal)
}

func Unauthorized(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusUnauthorized, "No token provided", detail)
}
