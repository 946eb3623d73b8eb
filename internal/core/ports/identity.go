package ports

import (
	"context"
	"net/http"

	"github.com/payd/web/internal/core/domain"
)

// TokenDecoder reads the claims out of a session token without verifying it.
type TokenDecoder interface {
	DecodeToken(raw string) (*domain.UserClaims, error)
}

// IdentityStore holds the last known signed-in user, or nil.
type IdentityStore interface {
	Get() *domain.UserClaims
	Set(user *domain.UserClaims)
	Subscribe(fn func(*domain.UserClaims)) (unsubscribe func())
}

// AppLayoutData is what every authenticated page receives from its layout.
type AppLayoutData struct {
	User *domain.UserClaims `json:"user"`
}

// RegisterPageData feeds the admin registration form.
type RegisterPageData struct {
	Roles []domain.Role `json:"roles"`
}

// ActivatePageData feeds the account activation form.
type ActivatePageData struct {
	ID string `json:"id"`
}

// PageService loads the data behind each page and layout.
type PageService interface {
	LoadAppLayout(ctx context.Context, token string) (*AppLayoutData, error)
	LoadAdminLayout(user *domain.UserClaims) error
	LoadRegisterPage(ctx context.Context) RegisterPageData
	LoadActivatePage(slug string) ActivatePageData
	Logout(ctx context.Context) (*http.Response, error)
}
