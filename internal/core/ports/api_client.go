package ports

import (
	"context"
	"net/http"

	"github.com/payd/web/internal/core/domain"
)

// APIClient is the set of calls the gateway makes against the scheduling API.
// Except for ListRoles, the raw response is returned and the caller inspects
// the status; the error is reserved for transport failures.
type APIClient interface {
	Login(ctx context.Context, in domain.LoginInput) (*http.Response, error)
	Logout(ctx context.Context) (*http.Response, error)
	RegisterUser(ctx context.Context, in domain.RegisterUserInput) (*http.Response, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
	ActivateAccount(ctx context.Context, in domain.ActivationInput) (*http.Response, error)
	CreateNewShiftSchedule(ctx context.Context, in domain.ShiftScheduleInput) (*http.Response, error)
}
