// Package account holds the user account aggregate: login credentials and
// the role the account's tokens will carry. Password hashes never leave
// this package in clear form.
package account

import (
	"errors"
	"strings"
	"time"

	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

type Account struct {
	id           kernel.UUID
	email        string
	passwordHash string
	fullName     string
	role         auth.Role
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewAccount creates an account with a freshly hashed password.
func NewAccount(id kernel.UUID, email, password, fullName string, role auth.Role) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setEmail(email),
		account.setFullName(fullName),
		account.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := account.setPassword(password); err != nil {
		return nil, err
	}
	account.createdAt = time.Now().UTC()

	return account, nil
}

// RestoreAccount reconstructs an Account from persistent storage. The
// password hash is taken as stored, not re-derived.
func RestoreAccount(id kernel.UUID, email, passwordHash, fullName string,
	role auth.Role, createdAt time.Time) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setEmail(email),
		account.setFullName(fullName),
		account.setRole(role),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	account.passwordHash = passwordHash
	account.createdAt = createdAt

	return account, nil
}

// VerifyPassword reports whether the candidate matches the stored hash.
func (a *Account) VerifyPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(candidate)) == nil
}

func (a *Account) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidError("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	a.passwordHash = string(hash)
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("id")
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = strings.ToLower(email)
	return nil
}

func (a *Account) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	a.fullName = fullName
	return nil
}

func (a *Account) setRole(role auth.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

// Validate checks that the Account was properly constructed.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Account) ID() kernel.UUID {
	return a.id
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) FullName() string {
	return a.fullName
}

func (a *Account) Role() auth.Role {
	return a.role
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}
