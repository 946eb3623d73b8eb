package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/payd/web/internal/api"
	"github.com/payd/web/internal/api/middleware"
	"github.com/payd/web/internal/core/domain"
	"github.com/payd/web/internal/core/service"
	"github.com/payd/web/internal/infrastructure/apiclient"
	"github.com/payd/web/internal/pkg/config"
	"github.com/payd/web/pkg/logger"
)

// @title        Payd Web Gateway
// @version      1.0
// @description  Page data and form actions for the employee scheduling web app.
// @BasePath     /
func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "payd-web",
	})

	client := apiclient.New(cfg.API.BaseURL, apiclient.WithLogger(log))

	store := service.NewIdentityStore()
	unsubscribe := store.Subscribe(func(u *domain.UserClaims) {
		if u == nil {
			log.Debug().Msg("identity cleared")
			return
		}
		log.Debug().Str("email", u.Email).Str("role", u.Role).Msg("identity updated")
	})
	defer unsubscribe()

	pages := service.NewPageService(client, service.NewTokenDecoder(), store, log)

	e := api.NewRouter(api.Deps{
		Session: middleware.SessionConfig{
			CookieName: cfg.Session.CookieName,
			LoginPath:  cfg.Session.LoginPath,
		},
		API:      client,
		Pages:    pages,
		Upstream: client,
		Log:      log,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Str("api", cfg.API.BaseURL).Msg("web gateway listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server failed")
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info().Msg("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}
