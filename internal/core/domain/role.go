package domain

// ReservedRoleID is the default role record. It is never offered to admins
// when assigning a primary role.
const ReservedRoleID = 0

// Role is a responsibility-based role record as listed by the admin API.
type Role struct {
	ID       int    `json:"id"`
	RoleName string `json:"roleName"`
}

// FilterAssignableRoles drops the reserved role, preserving order.
// The result is never nil.
func FilterAssignableRoles(roles []Role) []Role {
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		if r.ID == ReservedRoleID {
			continue
		}
		out = append(out, r)
	}
	return out
}
