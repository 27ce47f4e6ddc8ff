package http

import (
	"errors"
	"net/http"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps an error returned by a handler to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvariantViolation), errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		message = http.StatusText(http.StatusInternalServerError)
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
