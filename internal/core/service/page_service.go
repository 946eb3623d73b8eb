package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/payd/web/internal/core/domain"
	"github.com/payd/web/internal/core/ports"
)

// PageService loads the data behind each page. Every call is evaluated once
// per navigation; nothing is cached between requests.
type PageService struct {
	api     ports.APIClient
	decoder ports.TokenDecoder
	store   ports.IdentityStore
	log     zerolog.Logger
}

func NewPageService(api ports.APIClient, decoder ports.TokenDecoder, store ports.IdentityStore, log zerolog.Logger) *PageService {
	return &PageService{api: api, decoder: decoder, store: store, log: log}
}

// LoadAppLayout decodes the session token behind every authenticated page and
// publishes the user to the identity store.
func (s *PageService) LoadAppLayout(_ context.Context, token string) (*ports.AppLayoutData, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.ErrNoSession
	}

	user, err := s.decoder.DecodeToken(token)
	if err != nil {
		s.log.Warn().Err(err).Msg("session token decode failed")
		return nil, domain.ErrInvalidToken
	}

	s.store.Set(user)
	return &ports.AppLayoutData{User: user}, nil
}

// LoadAdminLayout hides admin pages from anyone but administrators.
func (s *PageService) LoadAdminLayout(user *domain.UserClaims) error {
	if !user.IsAdmin() {
		return domain.ErrNotFound
	}
	return nil
}

// LoadRegisterPage lists the roles an admin can assign. A failed listing
// degrades to an empty list.
func (s *PageService) LoadRegisterPage(ctx context.Context) ports.RegisterPageData {
	roles, err := s.api.ListRoles(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to fetch roles")
		return ports.RegisterPageData{Roles: []domain.Role{}}
	}
	return ports.RegisterPageData{Roles: domain.FilterAssignableRoles(roles)}
}

// LoadActivatePage exposes the pending account id taken from the URL.
func (s *PageService) LoadActivatePage(slug string) ports.ActivatePageData {
	s.log.Debug().Str("slug", slug).Msg("activate page")
	return ports.ActivatePageData{ID: slug}
}

// Logout asks the API to end the session and forgets the local identity,
// whatever the API answered.
func (s *PageService) Logout(ctx context.Context) (*http.Response, error) {
	resp, err := s.api.Logout(ctx)
	s.store.Set(nil)
	return resp, err
}
