package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/payd/web/internal/core/domain"
	"github.com/payd/web/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler renders every error as {"error": "<message>"}. Domain
// errors get fixed status codes; anything unknown is logged and hidden behind
// a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, logger.FromContext(c.Request().Context(), log), c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Warn().
				Err(he.Internal).
				Int("status", he.Code).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, http.StatusText(http.StatusNotFound)
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, "no session"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid session token"
	case errors.Is(err, domain.ErrRolesUnavailable):
		return http.StatusBadGateway, "failed to fetch roles"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
