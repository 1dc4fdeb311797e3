package types

import "fmt"

// Role represents the different staff roles in the system
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "doctor"
	RoleNurse      Role = "nurse"
	RolePharmacist Role = "pharmacist"
	RoleAccounts   Role = "accounts"
)

// AllRoles lists every role in menu order
var AllRoles = []Role{
	RoleAdmin,
	RoleDoctor,
	RoleNurse,
	RolePharmacist,
	RoleAccounts,
}

// DisplayName returns the human-readable role name
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleDoctor:
		return "Doctor"
	case RoleNurse:
		return "Nurse"
	case RolePharmacist:
		return "Pharmacist"
	case RoleAccounts:
		return "Accounts Manager"
	default:
		return "Unknown"
	}
}

// ParseRole converts a string into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RoleNurse, RolePharmacist, RoleAccounts:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}
