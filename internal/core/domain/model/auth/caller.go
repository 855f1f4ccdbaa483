package auth

import (
	"deliveryapp/internal/core/domain/model/kernel"
)

// Caller identifies the principal behind a request. A zero Caller is
// anonymous: no user id and no role.
type Caller struct {
	userID kernel.UUID
	role   Role
}

// NewCaller creates an authenticated caller.
func NewCaller(userID kernel.UUID, role Role) (Caller, error) {
	if err := userID.Validate(); err != nil {
		return Caller{}, err
	}
	if err := role.Validate(); err != nil {
		return Caller{}, err
	}
	return Caller{userID: userID, role: role}, nil
}

// Anonymous returns the unauthenticated caller.
func Anonymous() Caller {
	return Caller{}
}

func (c Caller) UserID() kernel.UUID {
	return c.userID
}

func (c Caller) Role() Role {
	return c.role
}

func (c Caller) IsAuthenticated() bool {
	return c.role != RoleNone
}

func (c Caller) IsAdmin() bool {
	return c.role == RoleAdmin
}
