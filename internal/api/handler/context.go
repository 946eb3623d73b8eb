package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/payd/web/internal/api/middleware"
	"github.com/payd/web/internal/core/domain"
	"github.com/payd/web/internal/pkg/session"
)

// currentUser returns the claims placed by RequireSession, or nil.
func currentUser(c echo.Context) *domain.UserClaims {
	user, _ := c.Get(middleware.UserKey).(*domain.UserClaims)
	return user
}

// upstreamCtx carries the browser's cookies to the API along with the request
// context, so calls are made on behalf of the signed-in user.
func upstreamCtx(c echo.Context) context.Context {
	return session.WithCookies(c.Request().Context(), c.Cookies())
}
