package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Middleware logs one summary line per request and stores a logger carrying
// the request id in the request context. It expects echo's RequestID
// middleware to run first.
func Middleware(l zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			reqLogger := l.With().Str("request_id", rid).Logger()
			req := c.Request()
			c.SetRequest(req.WithContext(reqLogger.WithContext(req.Context())))

			if err := next(c); err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = req.URL.Path
			}
			status := c.Response().Status

			evt := reqLogger.Info()
			if status >= 500 {
				evt = reqLogger.Error()
			}
			evt.
				Str("method", req.Method).
				Str("path", path).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Msg("request")
			return nil
		}
	}
}
