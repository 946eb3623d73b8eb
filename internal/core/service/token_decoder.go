package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/payd/web/internal/core/domain"
)

// sessionClaims mirrors the claims the auth API puts in the session token.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email        string `json:"email"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	PrimaryRole  int    `json:"primary_role"`
	Role         string `json:"role"`
}

// TokenDecoder reads session tokens. It checks neither the signature nor the
// expiry: the API is the only party that verifies tokens.
type TokenDecoder struct {
	parser *jwt.Parser
}

func NewTokenDecoder() *TokenDecoder {
	return &TokenDecoder{parser: jwt.NewParser()}
}

// DecodeToken extracts the user claims from raw.
func (d *TokenDecoder) DecodeToken(raw string) (*domain.UserClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.ErrInvalidToken
	}

	var claims sessionClaims
	_, parts, err := d.parser.ParseUnverified(raw, &claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	// A null payload decodes without error but carries no claims.
	payload, err := d.parser.DecodeSegment(parts[1])
	if err != nil || !bytes.HasPrefix(bytes.TrimSpace(payload), []byte("{")) {
		return nil, fmt.Errorf("%w: claims are not a JSON object", domain.ErrInvalidToken)
	}

	return &domain.UserClaims{
		Email:        claims.Email,
		EmployeeID:   claims.EmployeeID,
		EmployeeName: claims.EmployeeName,
		PrimaryRole:  claims.PrimaryRole,
		Role:         claims.Role,
	}, nil
}
