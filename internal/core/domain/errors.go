package domain

import "errors"

var (
	ErrNoSession        = errors.New("no session")
	ErrInvalidToken     = errors.New("invalid session token")
	ErrNotFound         = errors.New("not found")
	ErrRolesUnavailable = errors.New("failed to fetch roles")
)
