package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/payd/web/internal/core/domain"
)

// --- Wire types ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email       string `json:"email"`
	RoleAdmin   bool   `json:"roleAdmin"`
	PrimaryRole *int   `json:"primaryRole,omitempty"`
}

type activateRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type scheduleRequest struct {
	RoleID    int       `json:"roleId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type roleResponse struct {
	ID       int    `json:"id"`
	RoleName string `json:"roleName"`
}

// Login posts the credentials. On success the API sets the session cookie on
// the returned response.
func (c *Client) Login(ctx context.Context, in domain.LoginInput) (*http.Response, error) {
	return c.do(ctx, "login", http.MethodPost, "/login", loginRequest{
		Username: in.Username,
		Password: in.Password,
	})
}

// Logout asks the API to expire the session cookie.
func (c *Client) Logout(ctx context.Context) (*http.Response, error) {
	return c.do(ctx, "logout", http.MethodPost, "/logout", nil)
}

// RegisterUser creates a pending account. The primary role is not sent for
// administrator registrations.
func (c *Client) RegisterUser(ctx context.Context, in domain.RegisterUserInput) (*http.Response, error) {
	body := registerRequest{
		Email:     in.Email,
		RoleAdmin: in.RoleAdmin,
	}
	if !in.RoleAdmin {
		body.PrimaryRole = in.PrimaryRole
	}
	return c.do(ctx, "register_user", http.MethodPost, "/admin/register", body)
}

// ListRoles returns the roles an admin can assign. The reserved role is
// filtered out. Any non-2xx answer is an error carrying the status text.
func (c *Client) ListRoles(ctx context.Context) ([]domain.Role, error) {
	resp, err := c.do(ctx, "list_roles", http.MethodGet, "/admin/list-role", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRolesUnavailable, statusText(resp))
	}

	var raw []roleResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("list roles: decode response: %w", err)
	}

	roles := make([]domain.Role, len(raw))
	for i, r := range raw {
		roles[i] = domain.Role{ID: r.ID, RoleName: r.RoleName}
	}
	return domain.FilterAssignableRoles(roles), nil
}

// ActivateAccount submits the chosen name and password for a pending account.
func (c *Client) ActivateAccount(ctx context.Context, in domain.ActivationInput) (*http.Response, error) {
	return c.do(ctx, "activate_account", http.MethodPost, "/activate", activateRequest{
		ID:       in.ID,
		Name:     in.Name,
		Password: in.Password,
	})
}

// CreateNewShiftSchedule creates a shift for a role between two instants.
func (c *Client) CreateNewShiftSchedule(ctx context.Context, in domain.ShiftScheduleInput) (*http.Response, error) {
	return c.do(ctx, "create_shift_schedule", http.MethodPost, "/admin/schedules", scheduleRequest{
		RoleID:    in.RoleID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	})
}
