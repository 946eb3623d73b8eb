package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// relay copies an upstream API response to the browser: status, body, content
// type and any Set-Cookie headers (the session cookie is set and expired this way).
func relay(c echo.Context, resp *http.Response) error {
	defer resp.Body.Close()

	for _, sc := range resp.Header.Values(echo.HeaderSetCookie) {
		c.Response().Header().Add(echo.HeaderSetCookie, sc)
	}

	contentType := resp.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEApplicationJSON
	}
	return c.Stream(resp.StatusCode, contentType, resp.Body)
}

func upstreamUnavailable(err error) error {
	return echo.NewHTTPError(http.StatusBadGateway, "upstream unavailable").SetInternal(err)
}
