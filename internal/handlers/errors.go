package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/corems/corems-backend/internal/dto"
	"github.com/corems/corems-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto the HTTP error envelope. Unexpected
// errors are logged and surface as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var code int
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidTransition):
		code = fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrUnauthorized):
		code = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		code = fiber.StatusForbidden
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrComplaintNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrCategoryExists):
		code = fiber.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		code = fiber.StatusServiceUnavailable
	default:
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error: true, Message: err.Error(),
	})
}
