package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role of the hotel employee operating the front desk. Reservations carry
// the id of the user who created them, so every request is attributed.
type Role string

const (
	RoleReceptionist Role = "receptionist"
	RoleManager      Role = "manager"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleReceptionist, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
