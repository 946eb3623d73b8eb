package domain

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// UserClaims is the identity carried by the session token. It is decoded from
// the cookie, never verified or refreshed by the gateway.
type UserClaims struct {
	Email        string `json:"email"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	PrimaryRole  int    `json:"primary_role"`
	Role         string `json:"role"`
}

// IsAdmin reports whether the claims carry the administrator role.
func (u *UserClaims) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
