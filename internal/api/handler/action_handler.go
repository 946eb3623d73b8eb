package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/payd/web/internal/core/domain"
	"github.com/payd/web/internal/core/ports"
)

// ActionHandler forwards form submissions to the scheduling API and relays
// the raw answer. Interpreting the upstream status is left to the browser.
type ActionHandler struct {
	api   ports.APIClient
	pages ports.PageService
	log   zerolog.Logger
}

func NewActionHandler(api ports.APIClient, pages ports.PageService, log zerolog.Logger) *ActionHandler {
	return &ActionHandler{api: api, pages: pages, log: log}
}

// bindAndValidate decodes the JSON payload into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

// Login forwards credentials; the session cookie set by the API is relayed.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /login [post]
func (h *ActionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.api.Login(upstreamCtx(c), domain.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return upstreamUnavailable(err)
	}
	return relay(c, resp)
}

// Logout ends the session upstream and forgets the local identity.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      502  {object}  errorResponse
// @Router       /logout [post]
func (h *ActionHandler) Logout(c echo.Context) error {
	resp, err := h.pages.Logout(upstreamCtx(c))
	if err != nil {
		return upstreamUnavailable(err)
	}
	return relay(c, resp)
}

// Activate submits the name and password chosen for a pending account.
//
// @Summary      Activate a pending account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      activateRequest  true  "Activation details"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /activate [post]
func (h *ActionHandler) Activate(c echo.Context) error {
	var req activateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.api.ActivateAccount(upstreamCtx(c), domain.ActivationInput{
		ID:       req.ID,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return upstreamUnavailable(err)
	}
	return relay(c, resp)
}

// RegisterUser creates a pending account. Everyone but administrators must
// pick a primary role; one sent along with roleAdmin is dropped by the client.
//
// @Summary      Register a new user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User to register"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/register [post]
func (h *ActionHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if !req.RoleAdmin && req.PrimaryRole == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "primaryRole is required when roleAdmin is false")
	}

	resp, err := h.api.RegisterUser(upstreamCtx(c), domain.RegisterUserInput{
		Email:       req.Email,
		PrimaryRole: req.PrimaryRole,
		RoleAdmin:   req.RoleAdmin,
	})
	if err != nil {
		return upstreamUnavailable(err)
	}

	h.log.Info().
		Str("email", req.Email).
		Bool("role_admin", req.RoleAdmin).
		Int("status", resp.StatusCode).
		Msg("user registration forwarded")
	return relay(c, resp)
}

// CreateSchedule creates a shift schedule for a role.
//
// @Summary      Create a shift schedule
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createScheduleRequest  true  "Schedule"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/schedules [post]
func (h *ActionHandler) CreateSchedule(c echo.Context) error {
	var req createScheduleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if !req.StartTime.Before(req.EndTime) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "startTime must be before endTime")
	}

	resp, err := h.api.CreateNewShiftSchedule(upstreamCtx(c), domain.ShiftScheduleInput{
		RoleID:    req.RoleID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return upstreamUnavailable(err)
	}
	return relay(c, resp)
}
