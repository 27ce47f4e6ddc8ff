package http

import (
	"context"
	"time"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const headerRequestID = "X-Request-ID"

// NewEcho builds the echo instance serving s, with request logging and
// OpenAPI request validation in front of every route.
func NewEcho(ctx context.Context, s *Server) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(s.requestLogger)
	e.Use(validator)
	s.RegisterRoutes(e)

	return e, nil
}

// requestLogger tags the request with an id and logs its outcome.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Response().Header().Set(headerRequestID, requestID)
		c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), requestID)))

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		s.logger.Info("request handled",
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}
