package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"artmarket/internal/pkg/errs"
)

// envelope is the uniform response shape. Data is present on successful reads,
// Message on failures.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// respondError maps core errors to stable HTTP statuses: not-found to 404,
// forbidden to 403, invalid state and malformed input to 400, everything else
// to 500 with a generic message. Clients rely on this mapping for retry logic,
// so new error kinds must be added here deliberately.
func respondError(ctx echo.Context, logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, envelope{Success: false, Message: err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, envelope{Success: false, Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
	default:
		logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, envelope{
			Success: false,
			Message: "internal error",
		})
	}
}
