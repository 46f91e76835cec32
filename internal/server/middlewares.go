package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/provreg/provreg/internal/config"
)

// CallerMiddleware lifts the already-authenticated caller identity out of
// the X-Caller-Id header into the downstream context. Verifying that the
// header is trustworthy (gateway signature checks, tokens) is the hosting
// environment's concern, not the registry's.
func (s *Server) CallerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(config.HEADER_KEY_X_CALLER_ID)
		if raw == "" {
			return c.JSON(401, map[string]string{
				"error": "X-Caller-Id header is required",
			})
		}

		caller, err := uuid.Parse(raw)
		if err != nil || caller == uuid.Nil {
			return c.JSON(401, map[string]string{
				"error":   "invalid caller id",
				"message": raw,
			})
		}

		ctx := context.WithValue(c.Request().Context(), config.CTX_KEY_CALLER_ID, caller)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
