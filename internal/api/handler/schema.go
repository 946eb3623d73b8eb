package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Action payloads ---

type loginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type activateRequest struct {
	ID       string `json:"id"       validate:"required,uuid"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerUserRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	PrimaryRole *int   `json:"primaryRole"`
	RoleAdmin   bool   `json:"roleAdmin"`
}

type createScheduleRequest struct {
	RoleID    int       `json:"roleId"    validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime"   validate:"required"`
}

// --- Page payloads ---

// emptyPage is returned by pages whose loader yields no data.
type emptyPage struct{}
