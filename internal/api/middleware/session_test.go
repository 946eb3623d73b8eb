package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/payd/web/internal/core/domain"
	"github.com/payd/web/internal/core/service"
)

var testSession = SessionConfig{CookieName: "token", LoginPath: "/login"}

func newPages() (*service.PageService, *service.IdentityStore) {
	store := service.NewIdentityStore()
	return service.NewPageService(nil, service.NewTokenDecoder(), store, zerolog.Nop()), store
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":         "alice@example.com",
		"employee_id":   "4",
		"employee_name": "Alice",
		"primary_role":  2,
		"role":          role,
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestRequireSession_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, "employee")})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	pages, store := newPages()
	called := false
	handler := RequireSession(testSession, pages)(func(c echo.Context) error {
		called = true
		user, ok := c.Get(UserKey).(*domain.UserClaims)
		if !ok || user.Email != "alice@example.com" || user.PrimaryRole != 2 {
			t.Fatalf("user not set: %+v", c.Get(UserKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := store.Get(); got == nil || got.EmployeeName != "Alice" {
		t.Fatalf("identity store not updated: %+v", got)
	}
}

func TestRequireSession_MissingCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	pages, _ := newPages()
	handler := RequireSession(testSession, pages)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireSession_UndecodableToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	pages, store := newPages()
	handler := RequireSession(testSession, pages)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
	if store.Get() != nil {
		t.Fatalf("identity store must stay empty")
	}
}

func TestRequireSession_CustomCookieName(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, "admin")})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	pages, _ := newPages()
	cfg := SessionConfig{CookieName: "payd_session", LoginPath: "/signin"}
	handler := RequireSession(cfg, pages)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	_ = handler(c)
	if rec.Header().Get(echo.HeaderLocation) != "/signin" {
		t.Fatalf("expected redirect to /signin, got %q", rec.Header().Get(echo.HeaderLocation))
	}
}
