package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/payd/web/docs"
	"github.com/payd/web/internal/api/handler"
	"github.com/payd/web/internal/api/middleware"
	"github.com/payd/web/internal/core/ports"
	"github.com/payd/web/internal/infrastructure/http/handlers"
	"github.com/payd/web/pkg/logger"
)

// Deps is everything the gateway needs to serve pages and actions.
type Deps struct {
	Session middleware.SessionConfig
	API     ports.APIClient
	Pages   ports.PageService
	// Upstream is pinged by the readiness probe.
	Upstream handlers.Pinger
	Log      zerolog.Logger
	// Registry receives the HTTP server metrics. Nil means the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "payd_web",
		Registerer: registerer,
	}))
	e.Use(logger.Middleware(d.Log))

	requireSession := middleware.RequireSession(d.Session, d.Pages)
	requireAdmin := middleware.RequireAdmin(d.Pages)

	pages := handler.NewPageHandler(d.Pages)
	actions := handler.NewActionHandler(d.API, d.Pages, d.Log)

	// --- Public pages and actions ---
	e.GET("/login", pages.Login)
	e.POST("/login", actions.Login)
	e.POST("/logout", actions.Logout)
	e.GET("/activate/:slug", pages.ActivatePage)
	e.POST("/activate", actions.Activate)

	// --- Authenticated area ---
	e.GET("/", pages.AppLayout, requireSession)

	admin := e.Group("/admin", requireSession, requireAdmin)
	admin.GET("", pages.AdminLayout)
	admin.GET("/register", pages.RegisterPage)
	admin.POST("/register", actions.RegisterUser)
	admin.POST("/schedules", actions.CreateSchedule)

	// --- Operational ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(map[string]handlers.Pinger{
		"api": d.Upstream,
	}).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
