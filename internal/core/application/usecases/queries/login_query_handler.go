package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deliveryapp/internal/core/domain/model/account"
	"deliveryapp/internal/core/domain/model/auth"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginView is the authenticated profile returned on successful login.
// The transport turns it into a signed token.
type LoginView struct {
	ID       kernel.UUID
	Email    string
	FullName string
	Role     auth.Role
}

// LoginQueryHandler verifies credentials against the stored account.
// Unknown email and wrong password produce the same Unauthorized error so
// the response does not reveal which one failed.
type LoginQueryHandler struct {
	db *gorm.DB
}

// NewLoginQueryHandler creates a handler for credential verification.
func NewLoginQueryHandler(db *gorm.DB) LoginQueryHandler {
	return LoginQueryHandler{db: db}
}

// Handle executes the query.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginView, error) {
	if err := query.Validate(); err != nil {
		return LoginView{}, err
	}

	var (
		id           uuid.UUID
		email        string
		passwordHash string
		fullName     string
		role         int
		createdAt    time.Time
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT id, email, password_hash, full_name, role, created_at
		FROM accounts
		WHERE email = ?
	`, query.Email()).Row().Scan(&id, &email, &passwordHash, &fullName, &role, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoginView{}, errs.NewUnauthorizedError("invalid credentials")
		}
		return LoginView{}, err
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LoginView{}, err
	}

	aggregate, err := account.RestoreAccount(accountID, email, passwordHash, fullName, auth.Role(role), createdAt)
	if err != nil {
		return LoginView{}, err
	}

	if !aggregate.VerifyPassword(query.Password()) {
		return LoginView{}, errs.NewUnauthorizedError("invalid credentials")
	}

	return LoginView{
		ID:       aggregate.ID(),
		Email:    aggregate.Email(),
		FullName: aggregate.FullName(),
		Role:     aggregate.Role(),
	}, nil
}
