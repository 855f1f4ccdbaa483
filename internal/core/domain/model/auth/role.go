package auth

import (
	"deliveryapp/internal/pkg/errs"
)

// Role is the access level carried by an authenticated caller's token.
type Role int

const (
	RoleNone Role = iota
	RoleCustomer
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleNone:     "None",
		RoleCustomer: "Customer",
		RoleAdmin:    "Admin",
	}
}

// RoleFromString maps a token claim value to a Role.
// Unknown values are rejected rather than defaulted.
func RoleFromString(value string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleNone && name == value {
			return role, nil
		}
	}
	return RoleNone, errs.NewValueIsInvalidError("role")
}

func (r Role) Validate() error {
	if r == RoleCustomer || r == RoleAdmin {
		return nil
	}
	return errs.NewValueIsInvalidError("role")
}

func (r Role) String() string {
	if name, ok := getRoleStrings()[r]; ok {
		return name
	}
	return "None"
}
