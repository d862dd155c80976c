package models

// Role is the authorization role assigned to a user.
type Role string

const (
	// RoleAdmin grants access to administrative operations such as
	// deleting users or changing roles.
	RoleAdmin Role = "admin"
	// RoleUser is the default role of every registered account.
	RoleUser Role = "user"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Identity is the authenticated caller attached to a request once its bearer
// token has been validated.
type Identity struct {
	UserID int64
	Role   Role
}

// HasRole reports whether the identity's role is a member of roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if i.Role == role {
			return true
		}
	}
	return false
}

// IsAdmin is a shorthand for HasRole(RoleAdmin).
func (i Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}
