package commands

import (
	"errors"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// RegisterAccountCommand represents a sign-up request. Unrecognized role
// values fall back to Customer rather than failing; only an explicit
// "Admin" grants the admin role.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	email     string
	password  string
	fullName  string
	role      auth.Role

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a user account.
func NewRegisterAccountCommand(accountID kernel.UUID,
	email, password, fullName, role string) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := accountID.Validate(); err != nil {
		return RegisterAccountCommand{}, err
	}
	cmd.accountID = accountID
	cmd.email = email
	cmd.password = password
	cmd.fullName = fullName

	parsed, err := auth.RoleFromString(role)
	if err != nil {
		parsed = auth.RoleCustomer
	}
	cmd.role = parsed

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c RegisterAccountCommand) Email() string {
	return c.email
}

func (c RegisterAccountCommand) Password() string {
	return c.password
}

func (c RegisterAccountCommand) FullName() string {
	return c.fullName
}

func (c RegisterAccountCommand) Role() auth.Role {
	return c.role
}
