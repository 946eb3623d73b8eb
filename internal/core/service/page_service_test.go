package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/payd/web/internal/core/domain"
)

type stubAPIClient struct {
	listRolesFn func(ctx context.Context) ([]domain.Role, error)
	logoutFn    func(ctx context.Context) (*http.Response, error)
}

func (s *stubAPIClient) Login(context.Context, domain.LoginInput) (*http.Response, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAPIClient) Logout(ctx context.Context) (*http.Response, error) {
	return s.logoutFn(ctx)
}

func (s *stubAPIClient) RegisterUser(context.Context, domain.RegisterUserInput) (*http.Response, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAPIClient) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.listRolesFn(ctx)
}

func (s *stubAPIClient) ActivateAccount(context.Context, domain.ActivationInput) (*http.Response, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAPIClient) CreateNewShiftSchedule(context.Context, domain.ShiftScheduleInput) (*http.Response, error) {
	return nil, errors.New("not implemented")
}

func newPageService(api *stubAPIClient) (*PageService, *IdentityStore) {
	store := NewIdentityStore()
	return NewPageService(api, NewTokenDecoder(), store, zerolog.Nop()), store
}

func TestPageService_LoadAppLayout_MissingToken(t *testing.T) {
	svc, _ := newPageService(&stubAPIClient{})
	if _, err := svc.LoadAppLayout(context.Background(), ""); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestPageService_LoadAppLayout_UndecodableToken(t *testing.T) {
	svc, store := newPageService(&stubAPIClient{})
	if _, err := svc.LoadAppLayout(context.Background(), "garbage"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if store.Get() != nil {
		t.Fatalf("store must stay empty on decode failure")
	}
}

func TestPageService_LoadAppLayout_PublishesUser(t *testing.T) {
	svc, store := newPageService(&stubAPIClient{})
	token := signToken(t, jwt.MapClaims{"email": "abc@mail.com", "role": "employee", "primary_role": 3})

	data, err := svc.LoadAppLayout(context.Background(), token)
	if err != nil {
		t.Fatalf("LoadAppLayout returned error: %v", err)
	}
	if data.User == nil || data.User.Email != "abc@mail.com" || data.User.PrimaryRole != 3 {
		t.Fatalf("unexpected layout data: %+v", data.User)
	}
	if got := store.Get(); got == nil || got.Email != "abc@mail.com" {
		t.Fatalf("identity store not updated: %+v", got)
	}
}

func TestPageService_LoadAdminLayout(t *testing.T) {
	svc, _ := newPageService(&stubAPIClient{})

	if err := svc.LoadAdminLayout(nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("nil user: expected ErrNotFound, got %v", err)
	}
	if err := svc.LoadAdminLayout(&domain.UserClaims{Role: "employee"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("employee: expected ErrNotFound, got %v", err)
	}
	if err := svc.LoadAdminLayout(&domain.UserClaims{Role: "admin"}); err != nil {
		t.Fatalf("admin: unexpected error %v", err)
	}
}

func TestPageService_LoadRegisterPage(t *testing.T) {
	svc, _ := newPageService(&stubAPIClient{
		listRolesFn: func(context.Context) ([]domain.Role, error) {
			return []domain.Role{{ID: 0, RoleName: "default"}, {ID: 5, RoleName: "barista"}}, nil
		},
	})

	data := svc.LoadRegisterPage(context.Background())
	if len(data.Roles) != 1 || data.Roles[0].ID != 5 {
		t.Fatalf("unexpected roles: %+v", data.Roles)
	}
}

func TestPageService_LoadRegisterPage_FailureYieldsEmptyList(t *testing.T) {
	svc, _ := newPageService(&stubAPIClient{
		listRolesFn: func(context.Context) ([]domain.Role, error) {
			return nil, domain.ErrRolesUnavailable
		},
	})

	data := svc.LoadRegisterPage(context.Background())
	if data.Roles == nil || len(data.Roles) != 0 {
		t.Fatalf("expected empty non-nil list, got %+v", data.Roles)
	}
}

func TestPageService_LoadActivatePage(t *testing.T) {
	svc, _ := newPageService(&stubAPIClient{})
	if got := svc.LoadActivatePage("abc-123"); got.ID != "abc-123" {
		t.Fatalf("unexpected id: %s", got.ID)
	}
}

func TestPageService_Logout_ClearsStore(t *testing.T) {
	for _, apiErr := range []error{nil, errors.New("connection refused")} {
		svc, store := newPageService(&stubAPIClient{
			logoutFn: func(context.Context) (*http.Response, error) {
				if apiErr != nil {
					return nil, apiErr
				}
				return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(`{}`))}, nil
			},
		})
		store.Set(&domain.UserClaims{Email: "a@b.c"})

		resp, err := svc.Logout(context.Background())
		if !errors.Is(err, apiErr) {
			t.Fatalf("expected %v, got %v", apiErr, err)
		}
		if resp != nil {
			resp.Body.Close()
		}
		if store.Get() != nil {
			t.Fatalf("identity store must be cleared")
		}
	}
}
