package user

// Role is a closed set. Authorization code must go through the capability
// methods below instead of comparing raw strings.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleManager, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// IsStaff reports whether the role bypasses the approval gate and may
// view or delete any stored file.
func (r Role) IsStaff() bool {
	return r == RoleManager || r == RoleAdmin
}

// CanViewStats reports whether the role may read storage-wide aggregates.
func (r Role) CanViewStats() bool {
	return r == RoleAdmin
}

// CanReviewUsers reports whether the role may approve or reject
// pending registrations.
func (r Role) CanReviewUsers() bool {
	return r == RoleManager || r == RoleAdmin
}

// CanDeleteUsers reports whether the role may remove user accounts.
func (r Role) CanDeleteUsers() bool {
	return r == RoleAdmin
}
