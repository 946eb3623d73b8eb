package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/payd/web/internal/api/metrics"
	"github.com/payd/web/internal/core/domain"
	"github.com/payd/web/internal/core/ports"
)

// RequireAdmin answers not-found to anyone who is not an administrator, so
// admin pages are indistinguishable from missing ones. It must run after
// RequireSession.
func RequireAdmin(pages ports.PageService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserKey).(*domain.UserClaims)
			if err := pages.LoadAdminLayout(user); err != nil {
				metrics.GuardRejectionsTotal.WithLabelValues("admin", "not_admin").Inc()
				return err
			}
			return next(c)
		}
	}
}
