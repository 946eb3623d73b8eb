package domain

import "time"

// LoginInput carries the credentials submitted on the login page.
type LoginInput struct {
	Username string
	Password string
}

// RegisterUserInput describes an account created by an admin.
// PrimaryRole must be nil when RoleAdmin is true.
type RegisterUserInput struct {
	Email       string
	PrimaryRole *int
	RoleAdmin   bool
}

// ShiftScheduleInput describes a new shift for a role.
type ShiftScheduleInput struct {
	RoleID    int
	StartTime time.Time
	EndTime   time.Time
}

// ActivationInput converts a pending account into an active one.
type ActivationInput struct {
	ID       string
	Name     string
	Password string
}
