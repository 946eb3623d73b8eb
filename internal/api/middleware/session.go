package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/payd/web/internal/api/metrics"
	"github.com/payd/web/internal/core/domain"
	"github.com/payd/web/internal/core/ports"
)

// UserKey is the echo context key holding the decoded *domain.UserClaims.
const UserKey = "user"

// SessionConfig names the session cookie and where to send visitors without one.
type SessionConfig struct {
	CookieName string
	LoginPath  string
}

// RequireSession runs the app layout loader for every protected navigation.
// A missing cookie or an undecodable token both redirect to the login page.
func RequireSession(cfg SessionConfig, pages ports.PageService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			if ck, err := c.Cookie(cfg.CookieName); err == nil {
				token = ck.Value
			}

			data, err := pages.LoadAppLayout(c.Request().Context(), token)
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, domain.ErrNoSession) {
					reason = "missing_cookie"
				}
				metrics.GuardRejectionsTotal.WithLabelValues("session", reason).Inc()
				return c.Redirect(http.StatusFound, cfg.LoginPath)
			}

			c.Set(UserKey, data.User)
			return next(c)
		}
	}
}
