// Package session carries the browser's cookies from an inbound request to the
// outbound API calls made on its behalf.
package session

import (
	"context"
	"net/http"
)

type cookiesKey struct{}

// WithCookies attaches the browser's cookies to ctx so every call made with it
// carries the session upstream.
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, cookiesKey{}, cookies)
}

// Cookies returns the cookies attached by WithCookies, or nil.
func Cookies(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(cookiesKey{}).([]*http.Cookie)
	return cookies
}
