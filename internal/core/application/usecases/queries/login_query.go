package queries

import (
	"errors"
	"strings"

	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// LoginQuery carries login credentials. It sits on the query side because
// authentication reads account state without changing it.
type LoginQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login query.
func NewLoginQuery(email, password string) (LoginQuery, error) {
	query := LoginQuery{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(email) == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginQuery{}, errs.NewValueIsRequiredError("password")
	}
	query.email = strings.ToLower(strings.TrimSpace(email))
	query.password = password

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

func (q LoginQuery) Email() string {
	return q.email
}

func (q LoginQuery) Password() string {
	return q.password
}
